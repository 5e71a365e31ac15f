// Package jsonscan extracts flat ticket objects from a tickets document.
//
// It supports only an array of flat objects whose values are strings or
// numbers. Nested objects and arrays inside a ticket are not supported,
// and structural braces are assumed never to appear inside string values.
package jsonscan

import (
	"strings"

	"github.com/dharmasatrya/ticketreport/internal/models"
)

const ticketsKey = `"tickets"`

type ScanError string

func (e ScanError) Error() string {
	return string(e)
}

const (
	ErrTicketsFieldMissing ScanError = "tickets field not found"
	ErrTicketsArrayMissing ScanError = "tickets array not found"
)

// TicketsArray returns the text between the brackets of the tickets array.
func TicketsArray(doc string) (string, error) {
	keyIdx := strings.Index(doc, ticketsKey)
	if keyIdx < 0 {
		return "", ErrTicketsFieldMissing
	}

	start := strings.IndexByte(doc[keyIdx:], '[')
	if start < 0 {
		return "", ErrTicketsArrayMissing
	}
	start += keyIdx

	end := strings.IndexByte(doc[start:], ']')
	if end < 0 {
		return "", ErrTicketsArrayMissing
	}
	end += start

	return doc[start+1 : end], nil
}

// SplitObjects cuts s into its top-level {...} substrings by brace depth.
// Text outside any object is ignored.
func SplitObjects(s string) []string {
	var objects []string

	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 {
				objects = append(objects, s[start:i+1])
			}
		}
	}

	return objects
}

// ParseObject splits one flat object into key/value strings. Pairs without
// an unquoted colon are dropped; a repeated key keeps its last value.
func ParseObject(s string) models.RawFields {
	fields := models.RawFields{}

	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") && len(s) > 1 {
		s = s[1 : len(s)-1]
	}

	for _, pair := range splitUnquoted(s, ',') {
		idx := indexUnquoted(pair, ':')
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(pair[:idx])
		value := strings.TrimSpace(pair[idx+1:])

		key, _ = unquote(key)
		if v, ok := unquote(value); ok {
			value = unescape(v)
		}

		fields[key] = value
	}

	return fields
}

func splitUnquoted(s string, sep byte) []string {
	var parts []string

	inQuotes := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			if !escaped(s, i) {
				inQuotes = !inQuotes
			}
		case sep:
			if !inQuotes {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

func indexUnquoted(s string, sep byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			if !escaped(s, i) {
				inQuotes = !inQuotes
			}
		case sep:
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}

func escaped(s string, i int) bool {
	return i > 0 && s[i-1] == '\\'
}

func unquote(s string) (string, bool) {
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1], true
	}
	return s, false
}

// unescape resolves \" and \\ in one left-to-right pass. Any other
// backslash is kept as is.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
			sb.WriteByte(s[i+1])
			i++
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

package datetime

import (
	"strings"
	"time"
)

// Day and month accept one or two digits, as do hours. Minutes are
// always two digits.
var layouts = []string{
	"2.1.06 15:04",
	"2.1.2006 15:04",
}

// Parse combines a dd.mm.yy date and an HH:mm clock into one timestamp.
// The result carries no zone information and is expressed in UTC.
func Parse(date, clock string) (time.Time, error) {
	value := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &time.ParseError{
		Layout:  layouts[0],
		Value:   value,
		Message: ": unable to parse date and time",
	}
}

package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadFile loads the file at path as a single string. Every line is
// trimmed and the lines are joined without separators.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	content, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("could not read file: %w", err)
	}

	return content, nil
}

func Read(r io.Reader) (string, error) {
	var sb strings.Builder

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		sb.WriteString(strings.TrimSpace(line))
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return sb.String(), nil
}

package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrLineOutOfRange is returned when a line number does not exist in
// the source it is looked up in.
var ErrLineOutOfRange = errors.New("line out of range")

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// NewSourceCode splits source into lines.
func NewSourceCode(source []byte) *SourceCode {
	return &SourceCode{Lines: strings.Split(string(source), "\n")}
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewSourceCode(content), nil
}

// LineAt returns the 1-based line with surrounding whitespace removed.
func (s *SourceCode) LineAt(line int) (string, error) {
	if line < 1 || line > len(s.Lines) {
		return "", fmt.Errorf("%w: line %d, source has %d lines", ErrLineOutOfRange, line, len(s.Lines))
	}
	return strings.TrimSpace(s.Lines[line-1]), nil
}

// Package source reads shell scripts into immutable, line-indexed files.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMalformed is returned (wrapped in a *MalformedError) when a file is not
// text the checker can scan.
var ErrMalformed = errors.New("malformed input")

// MalformedError describes why a file could not be decoded.
type MalformedError struct {
	Path   string
	Line   int // 1-based line of the first offending byte
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", e.Path, e.Line, e.Reason)
}

// Is lets callers match with errors.Is(err, ErrMalformed).
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// File is a source file split into physical lines. It is never modified
// after Read returns it.
type File struct {
	Path            string
	Lines           []string // newline stripped; index 0 is line 1
	TrailingNewline bool
}

// Line returns physical line n (1-based), or "" when out of range.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.Lines) {
		return ""
	}
	return f.Lines[n-1]
}

// NumLines returns the number of physical lines.
func (f *File) NumLines() int {
	return len(f.Lines)
}

// Base returns the file name without its directory.
func (f *File) Base() string {
	return filepath.Base(f.Path)
}

// Read loads path from fsys. A byte-order mark selects the matching
// Unicode decoding (UTF-16 scripts are transcoded, a UTF-8 BOM is
// dropped); anything that is still not valid UTF-8 text afterwards is
// reported as a *MalformedError.
func Read(fsys afero.Fs, path string) (*File, error) {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return Parse(path, raw)
}

// Parse builds a File from in-memory content.
func Parse(path string, raw []byte) (*File, error) {
	data, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
	if err != nil {
		return nil, &MalformedError{Path: path, Line: 1, Reason: err.Error()}
	}

	if i := bytes.IndexByte(data, 0); i >= 0 {
		return nil, &MalformedError{Path: path, Line: lineAt(data, i), Reason: "binary content (NUL byte)"}
	}
	if !utf8.Valid(data) {
		return nil, &MalformedError{Path: path, Line: lineAt(data, firstInvalid(data)), Reason: "invalid UTF-8"}
	}

	f := &File{Path: path, TrailingNewline: true}
	if len(data) == 0 {
		return f, nil
	}

	text := string(data)
	f.TrailingNewline = strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	f.Lines = strings.Split(text, "\n")
	return f, nil
}

// lineAt returns the 1-based line containing byte offset off.
func lineAt(data []byte, off int) int {
	return bytes.Count(data[:off], []byte{'\n'}) + 1
}

func firstInvalid(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}

// Package token holds source positions shared by the scanner, the rule
// engine and the reporter.
package token

import "fmt"

// Position represents a location in a source file.
type Position struct {
	Line   int // 1-based physical line number
	Column int // 1-based column number, counted in runes
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String returns "line:col".
func (p Position) String() string {
	col := p.Column
	if col < 1 {
		col = 1
	}
	return fmt.Sprintf("%d:%d", p.Line, col)
}

// Before reports whether p sorts before q (by line, then column).
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/bashate/pkg/token"
)

// Kind classifies a LogicalLine record.
type Kind int

// Record kinds produced by the Assembler.
const (
	KindCommand     Kind = iota // code, possibly joined from several physical lines
	KindComment                 // comment-only line
	KindBlank                   // empty or whitespace-only line
	KindHeredocBody             // line strictly inside a heredoc
	KindHeredocEnd              // heredoc terminator line
	KindEOF                     // synthetic end-of-file record
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindComment:
		return "comment"
	case KindBlank:
		return "blank"
	case KindHeredocBody:
		return "heredoc-body"
	case KindHeredocEnd:
		return "heredoc-end"
	case KindEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// PhysicalLine is one line of the file as read, with the scanner's view of it.
type PhysicalLine struct {
	Number    int    // 1-based line number
	Text      string // raw text without the newline
	Code      string // Text with any inline comment and trailing blanks removed
	Continued bool   // ends with an unescaped backslash
	InQuote   bool   // starts inside a quoted string opened on an earlier line
	OpenQuote bool   // ends inside a quoted string
}

// Indent returns the leading blanks of the line.
func (p PhysicalLine) Indent() string {
	return p.Text[:len(p.Text)-len(strings.TrimLeft(p.Text, " \t"))]
}

// Trimmed returns Code without surrounding blanks.
func (p PhysicalLine) Trimmed() string {
	return strings.TrimSpace(p.Code)
}

// segment is the part of the line that contributes to the joined text:
// Code with the continuation backslash removed.
func (p PhysicalLine) segment() string {
	if !p.Continued {
		return p.Code
	}
	s := strings.TrimRight(p.Code, " \t")
	return s[:len(s)-1]
}

// LogicalLine is one record of the assembled stream.
type LogicalLine struct {
	Kind  Kind
	Text  string         // joined code; continuation markers removed
	Lines []PhysicalLine // contributing physical lines, in order

	// Heredoc is the heredoc closed by a KindHeredocEnd record, the heredoc
	// a KindHeredocBody line belongs to, or the first unterminated heredoc
	// on a KindEOF record (nil when every heredoc was closed).
	Heredoc *Heredoc

	// Prev is the trimmed code of the last non-blank, non-comment line
	// before this record, outside heredoc bodies.
	Prev string

	offsets []int // offset in Text where each Lines[i] segment starts
}

// Start returns the first physical line number, or 0 for an empty record.
func (l *LogicalLine) Start() int {
	if len(l.Lines) == 0 {
		return 0
	}
	return l.Lines[0].Number
}

// End returns the last physical line number.
func (l *LogicalLine) End() int {
	if len(l.Lines) == 0 {
		return 0
	}
	return l.Lines[len(l.Lines)-1].Number
}

// InHeredocBody reports whether the record is heredoc content.
func (l *LogicalLine) InHeredocBody() bool { return l.Kind == KindHeredocBody }

// InHeredoc reports whether the record is heredoc content or its terminator.
func (l *LogicalLine) InHeredoc() bool {
	return l.Kind == KindHeredocBody || l.Kind == KindHeredocEnd
}

// IsComment reports whether the record is a comment-only line.
func (l *LogicalLine) IsComment() bool { return l.Kind == KindComment }

// IsBlank reports whether the record is a blank line.
func (l *LogicalLine) IsBlank() bool { return l.Kind == KindBlank }

// HasContinuation reports whether the record was joined from more than one
// physical line.
func (l *LogicalLine) HasContinuation() bool { return len(l.Lines) > 1 }

// Locate maps a byte offset in Text to the physical position of that byte.
// Offsets past the end map to the end of the last line.
func (l *LogicalLine) Locate(off int) token.Position {
	if len(l.Lines) == 0 {
		return token.Position{}
	}
	i := len(l.offsets) - 1
	for i > 0 && l.offsets[i] > off {
		i--
	}
	seg := l.Lines[i].segment()
	rel := off - l.offsets[i]
	if rel < 0 {
		rel = 0
	}
	if rel > len(seg) {
		rel = len(seg)
	}
	return token.Position{
		Line:   l.Lines[i].Number,
		Column: utf8.RuneCountInString(seg[:rel]) + 1,
	}
}

// newLogicalLine joins lines into a record. Backslash-continued lines are
// concatenated directly; a line that ends inside a quote is followed by a
// newline, as the string content would be.
func newLogicalLine(kind Kind, lines []PhysicalLine, prev string) LogicalLine {
	ll := LogicalLine{Kind: kind, Lines: lines, Prev: prev, offsets: make([]int, len(lines))}
	var b strings.Builder
	for i, p := range lines {
		ll.offsets[i] = b.Len()
		b.WriteString(p.segment())
		if p.OpenQuote && !p.Continued && i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	ll.Text = b.String()
	return ll
}

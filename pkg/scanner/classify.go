package scanner

import "strings"

// Class is the classification of one physical line.
type Class int

// Line classes, in the order Classify considers them.
const (
	ClassHeredocBody  Class = iota // inside an active heredoc
	ClassHeredocEnd                // terminator of the active heredoc
	ClassContinuation              // ends with an unescaped backslash
	ClassQuoted                    // ends inside a quoted string
	ClassComment                   // comment-only, no logical line open
	ClassBlank                     // blank, no logical line open
	ClassCode                      // completes a logical line
)

// String returns the name of the class.
func (c Class) String() string {
	switch c {
	case ClassHeredocBody:
		return "heredoc-body"
	case ClassHeredocEnd:
		return "heredoc-end"
	case ClassContinuation:
		return "continuation"
	case ClassQuoted:
		return "quoted"
	case ClassComment:
		return "comment"
	case ClassBlank:
		return "blank"
	case ClassCode:
		return "code"
	default:
		return "unknown"
	}
}

// Classification is the result of classifying one line: the class, the
// scanner's view of the line and the state changes it implies.
type Classification struct {
	Class    Class
	Line     PhysicalLine
	Heredocs []Heredoc // heredoc operators opened on this line
	Quote    byte      // quote state at the end of the line
}

// Classify examines physical line n against st. It does not modify st;
// State.Apply does.
func Classify(st *State, n int, text string) Classification {
	pl := PhysicalLine{Number: n, Text: text, Code: text}

	if st.InHeredoc() {
		pl.Code = ""
		if st.Active[0].Closes(text) {
			return Classification{Class: ClassHeredocEnd, Line: pl}
		}
		return Classification{Class: ClassHeredocBody, Line: pl}
	}

	code, quote := scanCode(text, st.Quote)
	pl.Code = code
	pl.InQuote = st.Quote != 0
	pl.OpenQuote = quote != 0
	c := Classification{Line: pl, Quote: quote}

	c.Heredocs = findHeredocs(code, n)

	if quote != 0 {
		c.Class = ClassQuoted
		return c
	}
	if isContinuation(code) {
		c.Line.Continued = true
		c.Class = ClassContinuation
		return c
	}

	trimmed := strings.TrimSpace(text)
	if !st.Open() && !pl.InQuote {
		if strings.HasPrefix(trimmed, "#") {
			c.Class = ClassComment
			c.Heredocs = nil
			return c
		}
		if trimmed == "" {
			c.Class = ClassBlank
			return c
		}
	}
	c.Class = ClassCode
	return c
}

// isContinuation reports whether code ends with an odd number of
// backslashes (trailing blanks after the backslash are tolerated).
func isContinuation(code string) bool {
	s := strings.TrimRight(code, " \t")
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// scanCode walks text starting in quote state q. It returns the text with
// any inline comment and trailing blanks removed, and the quote state at
// the end of the line.
func scanCode(text string, q byte) (string, byte) {
	end := len(text)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch q {
		case '\'':
			if c == '\'' {
				q = 0
			}
		case '$':
			if c == '\\' {
				i++
			} else if c == '\'' {
				q = 0
			}
		case '"':
			if c == '\\' {
				i++
			} else if c == '"' {
				q = 0
			}
		default:
			switch c {
			case '\\':
				i++
			case '\'':
				if i > 0 && text[i-1] == '$' {
					q = '$'
				} else {
					q = '\''
				}
			case '"':
				q = '"'
			case '#':
				if i == 0 || isCommentLead(text[i-1]) {
					end = i
					i = len(text)
				}
			}
		}
	}
	return strings.TrimRight(text[:end], " \t"), q
}

func isCommentLead(c byte) bool {
	switch c {
	case ' ', '\t', ';', '&', '|', '(', ')':
		return true
	}
	return false
}

// Apply folds c into the state. It returns the completed logical line when
// c closes one, and reports whether it did.
func (s *State) Apply(c Classification) (LogicalLine, bool) {
	switch c.Class {
	case ClassHeredocEnd:
		closed := s.Active[0]
		s.Active = s.Active[1:]
		ll := newLogicalLine(KindHeredocEnd, []PhysicalLine{c.Line}, s.Lookback)
		ll.Heredoc = &closed
		return ll, true

	case ClassHeredocBody:
		owner := s.Active[0]
		ll := newLogicalLine(KindHeredocBody, []PhysicalLine{c.Line}, s.Lookback)
		ll.Heredoc = &owner
		return ll, true

	case ClassComment:
		return newLogicalLine(KindComment, []PhysicalLine{c.Line}, s.Lookback), true

	case ClassBlank:
		return newLogicalLine(KindBlank, []PhysicalLine{c.Line}, s.Lookback), true

	case ClassContinuation, ClassQuoted:
		s.Buffer = append(s.Buffer, c.Line)
		s.Pending = append(s.Pending, c.Heredocs...)
		s.Quote = c.Quote
		return LogicalLine{}, false
	}

	s.Buffer = append(s.Buffer, c.Line)
	s.Pending = append(s.Pending, c.Heredocs...)
	s.Quote = 0
	return s.flush(), true
}

// flush completes the buffered logical line and activates the heredocs it
// opened.
func (s *State) flush() LogicalLine {
	ll := newLogicalLine(KindCommand, s.Buffer, s.Lookback)
	for i := len(s.Buffer) - 1; i >= 0; i-- {
		if t := s.Buffer[i].Trimmed(); t != "" {
			s.Lookback = t
			break
		}
	}
	s.Buffer = nil
	s.Active = append(s.Active, s.Pending...)
	s.Pending = nil
	return ll
}

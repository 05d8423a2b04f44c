package scanner

import (
	"strings"
	"unicode/utf8"
)

// Heredoc is a pending or active here-document terminator.
type Heredoc struct {
	Token     string // terminator word with quoting removed
	Quoted    bool   // delimiter was quoted; body is not expanded
	StripTabs bool   // opened with <<-
	Line      int    // physical line of the << operator
	Column    int    // 1-based rune column of the << operator
}

// Operator returns the operator text as written, without quoting.
func (h Heredoc) Operator() string {
	if h.StripTabs {
		return "<<-" + h.Token
	}
	return "<<" + h.Token
}

// Closes reports whether text is the terminator line for h. The match is
// exact; with <<- leading tabs (and only tabs) are removed first.
func (h Heredoc) Closes(text string) bool {
	if h.StripTabs {
		text = strings.TrimLeft(text, "\t")
	}
	return text == h.Token
}

// findHeredocs returns every heredoc operator in code, in order.
func findHeredocs(code string, line int) []Heredoc {
	var out []Heredoc
	for i := 0; i+1 < len(code); i++ {
		if code[i] != '<' || code[i+1] != '<' {
			continue
		}
		// <<< is a here-string; skip the whole run of '<'.
		if (i > 0 && code[i-1] == '<') || (i+2 < len(code) && code[i+2] == '<') {
			continue
		}
		if inArithmetic(code[:i]) {
			i++
			continue
		}

		h, end, ok := parseHeredocOperator(code, i)
		if !ok {
			i++
			continue
		}
		h.Line = line
		h.Column = utf8.RuneCountInString(code[:i]) + 1
		out = append(out, h)
		i = end - 1
	}
	return out
}

// parseHeredocOperator parses the operator starting at code[i:] ("<<").
// It returns the heredoc and the offset just past the delimiter word.
func parseHeredocOperator(code string, i int) (Heredoc, int, bool) {
	var h Heredoc
	j := i + 2
	if j < len(code) && code[j] == '-' {
		h.StripTabs = true
		j++
	}
	for j < len(code) && (code[j] == ' ' || code[j] == '\t') {
		j++
	}
	if j >= len(code) || !startsDelimiter(code[j]) {
		return h, j, false
	}

	var word strings.Builder
	for j < len(code) {
		c := code[j]
		switch {
		case c == '\'' || c == '"':
			end := strings.IndexByte(code[j+1:], c)
			if end < 0 {
				// unbalanced quote: take the rest of the line
				word.WriteString(code[j+1:])
				j = len(code)
			} else {
				word.WriteString(code[j+1 : j+1+end])
				j += end + 2
			}
			h.Quoted = true
			continue
		case c == '\\':
			h.Quoted = true
			j++
			if j < len(code) {
				word.WriteByte(code[j])
				j++
			}
			continue
		case isWordBreak(c):
		default:
			word.WriteByte(c)
			j++
			continue
		}
		break
	}

	h.Token = word.String()
	if h.Token == "" {
		return h, j, false
	}
	return h, j, true
}

// startsDelimiter reports whether c can open a heredoc delimiter word.
// This rejects <<= and <<$VAR.
func startsDelimiter(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '\'', c == '"', c == '\\':
		return true
	}
	return false
}

func isWordBreak(c byte) bool {
	switch c {
	case ' ', '\t', ';', '&', '|', '<', '>', '(', ')':
		return true
	}
	return false
}

// inArithmetic reports whether prefix leaves an arithmetic span open:
// more "((" than "))", or more "$[" than "]".
func inArithmetic(prefix string) bool {
	if strings.Count(prefix, "((") > strings.Count(prefix, "))") {
		return true
	}
	if n := strings.Count(prefix, "$["); n > 0 && n > strings.Count(prefix, "]") {
		return true
	}
	return false
}

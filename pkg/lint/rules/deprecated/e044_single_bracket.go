package deprecated

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
)

func init() {
	SingleBracketComparison.Check = checkSingleBracketComparison
	lint.Register(SingleBracketComparison)
}

// SingleBracketComparison flags =~, < and > inside [ ... ]. In a single
// bracket test =~ is a syntax error and < and > are redirections.
var SingleBracketComparison = lint.RuleDef{
	ID:          "E044",
	Name:        "deprecated.single_bracket_comparison",
	Group:       "deprecated",
	Description: "Use [[ for non-POSIX comparisons",
	Severity:    core.SeverityError,
	Rationale: "Inside [ ] the shell sees < and > as redirections and does not " +
		"know =~ at all. [[ ]] gives them their comparison meaning.",
	BadExample:  `if [ "$a" > "$b" ]; then`,
	GoodExample: `if [[ "$a" > "$b" ]]; then`,
}

func checkSingleBracketComparison(in lint.Input, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, test := range singleBracketTests(in.Line.Text) {
		for _, w := range test {
			op := comparison(w.text)
			if op == "" {
				continue
			}
			msg := fmt.Sprintf("%s: %s", SingleBracketComparison.Description, op)
			diags = append(diags, SingleBracketComparison.At(in.Line.Locate(w.off), msg))
		}
	}
	return diags
}

// comparison returns the operator a test word starts with, or "". A word
// such as >"$b" is still a redirection.
func comparison(w string) string {
	switch {
	case w == "=~":
		return w
	case strings.HasPrefix(w, "<"), strings.HasPrefix(w, ">"):
		return w[:1]
	}
	return ""
}

type word struct {
	text string
	off  int
}

// singleBracketTests returns the words of every "[ ... ]" test command in
// text, brackets excluded. "[[" tests, array subscripts and glob classes
// are not test commands.
func singleBracketTests(text string) [][]word {
	var tests [][]word
	for i := 0; i < len(text); i++ {
		if text[i] != '[' || !opensTest(text, i) {
			continue
		}
		words, end := splitWords(text, i+1)
		if end < 0 {
			continue
		}
		tests = append(tests, words)
		i = end
	}
	return tests
}

func opensTest(text string, i int) bool {
	if i > 0 && !isCommandLead(text[i-1]) {
		return false
	}
	return i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t')
}

func isCommandLead(c byte) bool {
	switch c {
	case ' ', '\t', '\n', ';', '&', '|', '(', '!', '{':
		return true
	}
	return false
}

// splitWords splits text from start into blank-separated words up to a
// closing "]" word. Quoted blanks do not split. It returns the offset of the
// closing bracket, or -1 if the test is not closed.
func splitWords(text string, start int) ([]word, int) {
	var words []word
	var quote byte
	wstart := -1
	flush := func(end int) (closed bool) {
		if wstart < 0 {
			return false
		}
		w := word{text: text[wstart:end], off: wstart}
		wstart = -1
		if w.text == "]" {
			return true
		}
		words = append(words, w)
		return false
	}

	for i := start; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case ' ', '\t', '\n', ';', '&', '|':
			closeAt := wstart
			if flush(i) {
				return words, closeAt
			}
			if c != ' ' && c != '\t' {
				return nil, -1
			}
		case '\'', '"':
			quote = c
			if wstart < 0 {
				wstart = i
			}
		case '\\':
			if wstart < 0 {
				wstart = i
			}
			i++
		default:
			if wstart < 0 {
				wstart = i
			}
		}
	}
	closeAt := wstart
	if flush(len(text)) {
		return words, closeAt
	}
	return nil, -1
}

package structure

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/scanner"
)

// Placement values for the "placement" option of E010 and E011.
const (
	PlacementSeparate = "separate"
	PlacementSameLine = "same-line"
)

func placement(opts map[string]any) string {
	switch p := strings.ToLower(lint.GetStringOption(opts, "placement", PlacementSeparate)); p {
	case PlacementSameLine, "same_line", "same":
		return PlacementSameLine
	default:
		return PlacementSeparate
	}
}

// headerLine is one physical line that can carry a compound-command header:
// not continued and not starting inside a string.
type headerLine struct {
	line scanner.PhysicalLine
	prev string // trimmed code of the line before it
}

func headerLines(ll *scanner.LogicalLine, prev string) []headerLine {
	var out []headerLine
	for _, pl := range ll.Lines {
		if !pl.Continued && !pl.InQuote {
			out = append(out, headerLine{line: pl, prev: prev})
		}
		if t := pl.Trimmed(); t != "" {
			prev = t
		}
	}
	return out
}

// continuesList reports whether prev leaves an and/or list open, so the
// next line belongs to the same condition.
func continuesList(prev string) bool {
	return strings.HasSuffix(prev, "&&") || strings.HasSuffix(prev, "||")
}

// keywordAt returns the byte offset of a trailing keyword (";  do",
// "; then") in code, or -1.
func keywordAt(re *regexp.Regexp, code string) int {
	m := re.FindStringSubmatchIndex(code)
	if m == nil {
		return -1
	}
	return m[2]
}

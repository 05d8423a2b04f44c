package whitespace

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/scanner"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	LineLength.Check = checkLineLength
	lint.Register(LineLength)
}

// DefaultMaxLineLength is the longest line allowed when no "max_length"
// option is set.
const DefaultMaxLineLength = 79

// LineLength flags physical lines longer than max_length characters.
var LineLength = lint.RuleDef{
	ID:          "E006",
	Name:        "whitespace.line_length",
	Group:       "whitespace",
	Description: "Line too long",
	Severity:    core.SeverityWarning,
	Kinds:       []scanner.Kind{scanner.KindCommand, scanner.KindComment, scanner.KindBlank},
	ConfigKeys:  []string{"max_length"},
	Rationale: "Lines longer than 79 columns are awkward to read and review, " +
		"and often point at too many levels of indentation.",
	Fix: "Break the command with a trailing backslash, or move work into a function.",
}

func checkLineLength(in lint.Input, opts map[string]any) []lint.Diagnostic {
	limit := lint.GetIntOption(opts, "max_length", DefaultMaxLineLength)
	if limit <= 0 {
		return nil
	}
	var diags []lint.Diagnostic
	for _, pl := range in.Line.Lines {
		if utf8.RuneCountInString(strings.TrimRight(pl.Text, "\r")) <= limit {
			continue
		}
		diags = append(diags, LineLength.At(token.Position{Line: pl.Number, Column: limit + 1}, ""))
	}
	return diags
}

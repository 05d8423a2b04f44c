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
	TrailingWhitespace.Check = checkTrailingWhitespace
	lint.Register(TrailingWhitespace)
}

// TrailingWhitespace flags blanks at the end of a physical line.
var TrailingWhitespace = lint.RuleDef{
	ID:          "E001",
	Name:        "whitespace.trailing",
	Group:       "whitespace",
	Description: "Trailing Whitespace",
	Severity:    core.SeverityError,
	Kinds:       []scanner.Kind{scanner.KindCommand, scanner.KindComment, scanner.KindBlank},
	BadExample:  "echo hi   ",
	GoodExample: "echo hi",
	Fix:         "Strip trailing spaces and tabs; most editors can do this on save.",
}

func checkTrailingWhitespace(in lint.Input, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, pl := range in.Line.Lines {
		kept := strings.TrimRight(pl.Text, " \t")
		if len(kept) == len(pl.Text) {
			continue
		}
		pos := token.Position{Line: pl.Number, Column: utf8.RuneCountInString(kept) + 1}
		diags = append(diags, TrailingWhitespace.At(pos, ""))
	}
	return diags
}

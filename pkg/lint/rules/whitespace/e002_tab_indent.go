package whitespace

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	TabIndent.Check = checkTabIndent
	lint.Register(TabIndent)
}

// TabIndent flags tabs in the leading blanks of a code line.
var TabIndent = lint.RuleDef{
	ID:          "E002",
	Name:        "whitespace.tab_indent",
	Group:       "whitespace",
	Description: "Tab indents",
	Severity:    core.SeverityError,
	Rationale:   "Spaces are preferred to tabs in source files.",
	BadExample:  "if true; then\n\techo hi\nfi",
	GoodExample: "if true; then\n    echo hi\nfi",
}

func checkTabIndent(in lint.Input, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, pl := range in.Line.Lines {
		// leading blanks of a line that starts inside a string are content
		if pl.InQuote {
			continue
		}
		indent := pl.Indent()
		i := strings.IndexByte(indent, '\t')
		if i < 0 {
			continue
		}
		pos := token.Position{Line: pl.Number, Column: utf8.RuneCountInString(indent[:i]) + 1}
		diags = append(diags, TabIndent.At(pos, ""))
	}
	return diags
}

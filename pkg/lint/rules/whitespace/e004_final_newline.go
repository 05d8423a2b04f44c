package whitespace

import (
	"unicode/utf8"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	FinalNewline.Check = checkFinalNewline
	lint.Register(FinalNewline)
}

// FinalNewline flags a file whose last line has no newline.
var FinalNewline = lint.RuleDef{
	ID:          "E004",
	Name:        "whitespace.final_newline",
	Group:       "whitespace",
	Description: "File did not end with a newline",
	Severity:    core.SeverityError,
	Scope:       lint.ScopeFile,
	Rationale:   "It is conventional to have a single newline ending files.",
}

func checkFinalNewline(in lint.Input, _ map[string]any) []lint.Diagnostic {
	f := in.File
	if f.TrailingNewline || f.NumLines() == 0 {
		return nil
	}
	n := f.NumLines()
	pos := token.Position{Line: n, Column: utf8.RuneCountInString(f.Line(n)) + 1}
	return []lint.Diagnostic{FinalNewline.At(pos, "")}
}

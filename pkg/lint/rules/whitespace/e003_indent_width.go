package whitespace

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	IndentWidth.Check = checkIndentWidth
	lint.Register(IndentWidth)
}

// DefaultIndentWidth is the indent unit when no "width" option is set.
const DefaultIndentWidth = 4

// IndentWidth flags indentation that is not a multiple of the indent unit.
// Continuation lines may instead line up with the first argument of the
// command on the first line:
//
//	foobar_cmd bar baz \
//	           moo boo
var IndentWidth = lint.RuleDef{
	ID:          "E003",
	Name:        "whitespace.indent_width",
	Group:       "whitespace",
	Description: "Indent not multiple of 4",
	Severity:    core.SeverityError,
	ConfigKeys:  []string{"width", "align_arguments"},
	Rationale:   "Four spaces should be used to offset logical blocks.",
	BadExample:  "if true; then\n  echo hi\nfi",
	GoodExample: "if true; then\n    echo hi\nfi",
}

var firstArgument = regexp.MustCompile(`^([ \t]*)(\S+)(\s+)\S`)

func checkIndentWidth(in lint.Input, opts map[string]any) []lint.Diagnostic {
	width := lint.GetIntOption(opts, "width", DefaultIndentWidth)
	if width <= 0 {
		width = DefaultIndentWidth
	}
	align := lint.GetBoolOption(opts, "align_arguments", true)

	lines := in.Line.Lines
	argOffset := -1
	if m := firstArgument.FindStringSubmatch(lines[0].Text); m != nil && align {
		argOffset = len(m[1]) + len(m[2]) + len(m[3])
	}

	msg := ""
	if width != DefaultIndentWidth {
		msg = fmt.Sprintf("Indent not multiple of %d", width)
	}

	var diags []lint.Diagnostic
	for i, pl := range lines {
		if pl.InQuote {
			continue
		}
		offset := len(pl.Indent())
		if offset == 0 || offset%width == 0 {
			continue
		}
		// later lines of a join may align with the first argument
		if i > 0 && offset == argOffset {
			continue
		}
		diags = append(diags, IndentWidth.At(token.Position{Line: pl.Number, Column: 1}, msg))
	}
	return diags
}

package structure

import (
	"regexp"
	"unicode/utf8"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	ThenPlacement.Check = checkThenPlacement
	lint.Register(ThenPlacement)
}

// ThenPlacement checks where the "then" of an if/elif sits.
var ThenPlacement = lint.RuleDef{
	ID:          "E011",
	Name:        "structure.then_placement",
	Group:       "structure",
	Description: "Then keyword is on the same line as if or elif keyword",
	Severity:    core.SeverityError,
	ConfigKeys:  []string{"placement"},
	Rationale:   "Ensures consistency of if/elif statements, like E010 does for loops.",
	BadExample:  "if [ -f \"$f\" ]; then\n    cat \"$f\"\nfi",
	GoodExample: "if [ -f \"$f\" ]\nthen\n    cat \"$f\"\nfi",
	Fix:         `Set placement: same-line to require "; then" at the end of the header instead.`,
}

var (
	ifHeader     = regexp.MustCompile(`^\s*(el)?if\s`)
	ifTestHeader = regexp.MustCompile(`^\s*(el)?if \[`)
	trailingThen = regexp.MustCompile(`;\s*(then)$`)
	sharedThen   = regexp.MustCompile(`;\s*(then)(\s|;|$)`)
)

const sameLineThenMessage = "Then keyword is not on same line as if or elif keyword"

func checkThenPlacement(in lint.Input, opts map[string]any) []lint.Diagnostic {
	mode := placement(opts)

	var diags []lint.Diagnostic
	for _, h := range headerLines(in.Line, in.Prev) {
		code := h.line.Code

		switch mode {
		case PlacementSameLine:
			if !ifTestHeader.MatchString(code) || trailingThen.MatchString(code) {
				continue
			}
			diags = append(diags, ThenPlacement.At(token.Position{Line: h.line.Number, Column: 1}, sameLineThenMessage))

		default:
			// "if a &&\n   b; then" still puts then on the header
			if !ifHeader.MatchString(code) && !continuesList(h.prev) {
				continue
			}
			off := keywordAt(sharedThen, code)
			if off < 0 {
				continue
			}
			pos := token.Position{Line: h.line.Number, Column: utf8.RuneCountInString(code[:off]) + 1}
			diags = append(diags, ThenPlacement.At(pos, ""))
		}
	}
	return diags
}

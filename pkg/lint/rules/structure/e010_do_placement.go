package structure

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	DoPlacement.Check = checkDoPlacement
	lint.Register(DoPlacement)
}

// DoPlacement checks where the "do" of a for/while/until loop sits.
var DoPlacement = lint.RuleDef{
	ID:          "E010",
	Name:        "structure.do_placement",
	Group:       "structure",
	Description: `The "do" should not be on the same line as the loop header`,
	Severity:    core.SeverityError,
	ConfigKeys:  []string{"placement"},
	Rationale:   `Ensures consistency of where the "do" of a loop is written.`,
	BadExample:  "for i in 1 2 3; do\n    echo $i\ndone",
	GoodExample: "for i in 1 2 3\ndo\n    echo $i\ndone",
	Fix:         `Set placement: same-line to require "; do" at the end of the header instead.`,
}

var (
	loopHeader = regexp.MustCompile(`^\s*(for|while|until)\s`)
	// "for ((" is bash, "for (" is most likely an embedded awk loop
	awkFor     = regexp.MustCompile(`^\s*for \([^(]`)
	trailingDo = regexp.MustCompile(`;\s*(do)$`)
	sharedDo   = regexp.MustCompile(`;\s*(do)(\s|;|$)`)
)

func checkDoPlacement(in lint.Input, opts map[string]any) []lint.Diagnostic {
	mode := placement(opts)

	var diags []lint.Diagnostic
	for _, h := range headerLines(in.Line, in.Prev) {
		code := h.line.Code
		m := loopHeader.FindStringSubmatch(code)
		if m == nil || awkFor.MatchString(code) {
			continue
		}
		keyword := m[1]

		switch mode {
		case PlacementSameLine:
			if trailingDo.MatchString(code) {
				continue
			}
			msg := fmt.Sprintf(`The "do" should be on same line as %s`, keyword)
			diags = append(diags, DoPlacement.At(token.Position{Line: h.line.Number, Column: 1}, msg))

		default:
			off := keywordAt(sharedDo, code)
			if off < 0 {
				continue
			}
			msg := fmt.Sprintf(`The "do" should not be on the same line as %s`, keyword)
			pos := token.Position{Line: h.line.Number, Column: utf8.RuneCountInString(code[:off]) + 1}
			diags = append(diags, DoPlacement.At(pos, msg))
		}
	}
	return diags
}

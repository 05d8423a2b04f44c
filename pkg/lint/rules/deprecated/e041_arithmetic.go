package deprecated

import (
	"strings"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
)

func init() {
	ObsoleteArithmetic.Check = checkObsoleteArithmetic
	lint.Register(ObsoleteArithmetic)
}

// ObsoleteArithmetic flags the $[ expr ] arithmetic expansion.
var ObsoleteArithmetic = lint.RuleDef{
	ID:          "E041",
	Name:        "deprecated.arithmetic_expansion",
	Group:       "deprecated",
	Description: "Arithmetic expansion using $[ is deprecated for $((",
	Severity:    core.SeverityError,
	Rationale:   "$[ is deprecated and not explained in the Bash manual. $(( should be used for arithmetic.",
	BadExample:  "result=$[1+2]",
	GoodExample: "result=$((1+2))",
}

func checkObsoleteArithmetic(in lint.Input, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	text := in.Line.Text
	for off := 0; ; {
		i := strings.Index(text[off:], "$[")
		if i < 0 {
			return diags
		}
		diags = append(diags, ObsoleteArithmetic.At(in.Line.Locate(off+i), ""))
		off += i + 2
	}
}

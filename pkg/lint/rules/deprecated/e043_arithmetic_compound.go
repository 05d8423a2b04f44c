package deprecated

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	ArithmeticCompound.Check = checkArithmeticCompound
	lint.Register(ArithmeticCompound)
}

// ArithmeticCompound flags commands that start with ((.
var ArithmeticCompound = lint.RuleDef{
	ID:          "E043",
	Name:        "deprecated.arithmetic_compound",
	Group:       "deprecated",
	Description: "Arithmetic compound has inconsistent return semantics",
	Severity:    core.SeverityWarning,
	Rationale: `The return value of ((expr)) is 1 if "expr" evaluates to zero, ` +
		`otherwise 0. Combined with "set -e" this is confusing: ((counter++)) ` +
		`fails when counter was zero.`,
	BadExample:  "((counter++))",
	GoodExample: "counter=$((counter + 1))",
}

func checkArithmeticCompound(in lint.Input, _ map[string]any) []lint.Diagnostic {
	first := in.Line.Lines[0]
	if first.InQuote || !strings.HasPrefix(strings.TrimLeft(first.Code, " \t"), "((") {
		return nil
	}
	pos := token.Position{Line: first.Number, Column: utf8.RuneCountInString(first.Indent()) + 1}
	return []lint.Diagnostic{ArithmeticCompound.At(pos, "")}
}

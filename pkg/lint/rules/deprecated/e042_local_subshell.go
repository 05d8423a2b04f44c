package deprecated

import (
	"strings"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
)

func init() {
	LocalHidesErrors.Check = checkLocalHidesErrors
	lint.Register(LocalHidesErrors)
}

// LocalHidesErrors flags "local x=$(cmd)": local always succeeds, so a
// failing cmd goes unnoticed, even under set -e.
var LocalHidesErrors = lint.RuleDef{
	ID:          "E042",
	Name:        "deprecated.local_subshell",
	Group:       "deprecated",
	Description: "local declaration hides errors",
	Severity:    core.SeverityWarning,
	Rationale: `The return value of "local" is always 0; errors in subshells ` +
		`used for declaration are thus hidden and will not trigger "set -e".`,
	BadExample:  "local out=$(make_thing)",
	GoodExample: "local out\nout=$(make_thing)",
}

var substitutionAssignments = []string{"=$(", "=`", `="$(`, "=\"`"}

func checkLocalHidesErrors(in lint.Input, _ map[string]any) []lint.Diagnostic {
	text := strings.TrimLeft(in.Line.Text, " \t")
	if !strings.HasPrefix(text, "local ") {
		return nil
	}
	first := -1
	for _, s := range substitutionAssignments {
		if i := strings.Index(in.Line.Text, s); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	if first < 0 {
		return nil
	}
	return []lint.Diagnostic{LocalHidesErrors.At(in.Line.Locate(first), "")}
}

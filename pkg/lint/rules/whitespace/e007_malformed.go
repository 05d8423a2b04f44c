package whitespace

import (
	"fmt"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	Malformed.Check = checkMalformed
	lint.Register(Malformed)
}

// Malformed reports a file that is not UTF-8 text. It is the only
// diagnostic such a file gets.
var Malformed = lint.RuleDef{
	ID:          "E007",
	Name:        "whitespace.malformed",
	Group:       "whitespace",
	Description: "Malformed input",
	Severity:    core.SeverityError,
	Scope:       lint.ScopeInput,
	Rationale:   "Binary files and files in legacy encodings cannot be checked line by line.",
	Fix:         "Convert the file to UTF-8, or leave it out of the file list.",
}

func checkMalformed(in lint.Input, _ map[string]any) []lint.Diagnostic {
	if in.Malformed == nil {
		return nil
	}
	pos := token.Position{Line: max(in.Malformed.Line, 1), Column: 1}
	msg := fmt.Sprintf("%s: %s", Malformed.Description, in.Malformed.Reason)
	return []lint.Diagnostic{Malformed.At(pos, msg)}
}

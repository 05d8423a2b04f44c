package syntax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/syntax"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	SyntaxError.Check = checkSyntax
	lint.Register(SyntaxError)
	lint.Register(CheckerUnavailable)
}

// SyntaxError reports the first syntax error the external checker finds.
var SyntaxError = lint.RuleDef{
	ID:          "E040",
	Name:        "syntax.error",
	Group:       "syntax",
	Description: "Syntax error",
	Severity:    core.SeverityError,
	Scope:       lint.ScopeFile,
	Reports:     []string{"E049"},
	Rationale: "`bash -n` determined that there was a syntax error preventing " +
		"the script from parsing correctly and running.",
}

// CheckerUnavailable is reported instead of E040 when the checker could not
// run for a file. Other files and rules are unaffected.
var CheckerUnavailable = lint.RuleDef{
	ID:          "E049",
	Name:        "syntax.unavailable",
	Group:       "syntax",
	Description: "Syntax checker unavailable",
	Severity:    core.SeverityWarning,
	Scope:       lint.ScopeFile,
	Rationale: "Reported by the E040 check when the syntax checker command cannot be run. " +
		"Ignoring E040 alone still runs the checker so this code can be reported.",
	Fix: "Install bash, point --syntax-command at a shell, or pass --no-syntax-check.",
}

func checkSyntax(in lint.Input, _ map[string]any) []lint.Diagnostic {
	if in.Syntax == nil || in.File == nil {
		return nil
	}

	finding, err := in.Syntax.Check(in.Ctx, in.File.Path)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, syntax.ErrUnavailable) {
			reason = strings.TrimPrefix(reason, syntax.ErrUnavailable.Error()+": ")
		}
		msg := fmt.Sprintf("%s: %s", CheckerUnavailable.Description, reason)
		return []lint.Diagnostic{CheckerUnavailable.At(token.Position{Line: 1, Column: 1}, msg)}
	}
	if finding == nil {
		return nil
	}

	msg := fmt.Sprintf("%s: %s", SyntaxError.Description, finding.Message)
	return []lint.Diagnostic{SyntaxError.At(token.Position{Line: max(finding.Line, 1), Column: 1}, msg)}
}

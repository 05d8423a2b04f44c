package whitespace

import (
	"strings"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	Hashbang.Check = checkHashbang
	lint.Register(Hashbang)
}

// Hashbang flags a script that neither starts with an interpreter line nor
// carries a recognised suffix. Dotfiles such as .bashrc are exempt.
var Hashbang = lint.RuleDef{
	ID:          "E005",
	Name:        "whitespace.hashbang",
	Group:       "whitespace",
	Description: "File does not begin with #! or have .sh suffix",
	Severity:    core.SeverityWarning,
	Scope:       lint.ScopeFile,
	ConfigKeys:  []string{"suffixes"},
	Rationale: "Tools such as file, code review systems and editors use either " +
		"the interpreter directive or the file extension to pick a syntax mode " +
		"or MIME type.",
	BadExample:  "# deploy helper\nset -e",
	GoodExample: "#!/bin/bash\nset -e",
}

func checkHashbang(in lint.Input, opts map[string]any) []lint.Diagnostic {
	f := in.File
	if f.NumLines() == 0 {
		return nil
	}
	base := f.Base()
	if strings.HasPrefix(base, ".") || strings.HasPrefix(f.Line(1), "#!") {
		return nil
	}
	for _, suffix := range lint.GetStringSliceOption(opts, "suffixes", []string{".sh"}) {
		if strings.HasSuffix(base, suffix) {
			return nil
		}
	}
	return []lint.Diagnostic{Hashbang.At(token.Position{Line: 1, Column: 1}, "")}
}

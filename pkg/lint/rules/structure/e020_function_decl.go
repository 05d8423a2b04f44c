package structure

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	FunctionDecl.Check = checkFunctionDecl
	lint.Register(FunctionDecl)
}

// FunctionDecl wants every function declared as "function name {" on one
// line.
var FunctionDecl = lint.RuleDef{
	ID:          "E020",
	Name:        "structure.function_decl",
	Group:       "structure",
	Description: "Function declaration not in format ^function name {$",
	Severity:    core.SeverityError,
	Rationale:   "There are several equivalent ways to define functions in Bash. This check is for consistency.",
	BadExample:  "foo() {\n    echo foo\n}",
	GoodExample: "function foo {\n    echo foo\n}",
}

var (
	functionKeyword = regexp.MustCompile(`^function\s`)
	functionDecl    = regexp.MustCompile(`^function [\w:.-]+ \{$`)
	parenDecl       = regexp.MustCompile(`^[\w:.-]+\s*\(\)`)
)

func checkFunctionDecl(in lint.Input, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, pl := range in.Line.Lines {
		if pl.InQuote {
			continue
		}
		code := strings.TrimLeft(pl.Code, " \t")
		var failed bool
		if functionKeyword.MatchString(code) {
			failed = !functionDecl.MatchString(code)
		} else {
			failed = parenDecl.MatchString(code)
		}
		if !failed {
			continue
		}
		col := utf8.RuneCountInString(pl.Indent()) + 1
		diags = append(diags, FunctionDecl.At(token.Position{Line: pl.Number, Column: col}, ""))
	}
	return diags
}

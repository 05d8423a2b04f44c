package structure

import (
	"fmt"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/scanner"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func init() {
	UnterminatedHeredoc.Check = checkUnterminatedHeredoc
	lint.Register(UnterminatedHeredoc)
}

// UnterminatedHeredoc reports a heredoc still open at end of file, at the
// line that opened it.
var UnterminatedHeredoc = lint.RuleDef{
	ID:          "E012",
	Name:        "structure.unterminated_heredoc",
	Group:       "structure",
	Description: "here-document delimited by end-of-file",
	Severity:    core.SeverityError,
	Kinds:       []scanner.Kind{scanner.KindEOF},
	Rationale: "Bash only warns when a heredoc runs into end of file. The " +
		"warning is easily missed and the script silently swallows " +
		"everything after the operator, which bites hardest when the file " +
		"is sourced.",
	BadExample:  "cat <<EOF\nhello\n",
	GoodExample: "cat <<EOF\nhello\nEOF\n",
	Fix:         "Add the terminator on a line of its own, with no leading or trailing blanks.",
}

func checkUnterminatedHeredoc(in lint.Input, _ map[string]any) []lint.Diagnostic {
	h := in.Line.Heredoc
	if h == nil {
		return nil
	}
	msg := fmt.Sprintf("here-document at line %d delimited by end-of-file (wanted `%s')", h.Line, h.Token)
	return []lint.Diagnostic{UnterminatedHeredoc.At(token.Position{Line: h.Line, Column: h.Column}, msg)}
}

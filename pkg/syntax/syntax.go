// Package syntax runs an external shell in no-exec mode to catch syntax
// errors the style rules cannot see.
package syntax

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnavailable is returned when the checker command cannot be started.
var ErrUnavailable = errors.New("syntax checker unavailable")

// Finding is one syntax error reported by the checker.
type Finding struct {
	Line    int    // 1-based line the shell reported
	Message string // message text after "line N: "
}

// Checker checks a file on disk for syntax errors. A nil Finding with a nil
// error means the file parsed.
type Checker interface {
	Check(ctx context.Context, path string) (*Finding, error)
}

// Sample lines the shell prints on stderr:
//
//	foo.sh: line 9: syntax error: unexpected end of file
//	foo.sh: line 7: syntax error near unexpected token `}'
//	foo.sh: line 4: warning: here-document at line 1 delimited by end-of-file (wanted `EOF')
var outputLine = regexp.MustCompile(`^(.*): line ([0-9]+): (.*)$`)

// ParseOutput returns the first syntax error in the checker's stderr.
// Warnings, including unterminated here-documents, are skipped.
func ParseOutput(out string) *Finding {
	for _, line := range strings.Split(out, "\n") {
		m := outputLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		if !strings.Contains(m[3], "syntax error") {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		return &Finding{Line: n, Message: m[3]}
	}
	return nil
}

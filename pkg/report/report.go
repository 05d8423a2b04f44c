// Package report orders diagnostics and renders them for people and tools.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
)

// Format selects an output layout.
type Format string

// Output formats.
const (
	FormatText   Format = "text"   // path:line:col: CODE message
	FormatJSON   Format = "json"   // {summary, diagnostics}
	FormatPretty Format = "pretty" // grouped by file, styled for a terminal
)

// Formats lists the accepted format names.
var Formats = []Format{FormatText, FormatJSON, FormatPretty}

// ParseFormat validates a format name. The empty string means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(s))
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("unknown format %q (want text, json or pretty)", s)
	}
	return f, nil
}

// Sort orders diagnostics by file, line, code, column and message, so the
// output does not depend on the order files were scanned in.
func Sort(diags []lint.Diagnostic) {
	slices.SortStableFunc(diags, func(a, b lint.Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Pos.Line, b.Pos.Line),
			cmp.Compare(a.RuleID, b.RuleID),
			cmp.Compare(a.Pos.Column, b.Pos.Column),
			cmp.Compare(a.Message, b.Message),
		)
	})
}

// Summary counts diagnostics by resolved severity.
type Summary struct {
	Files    int `json:"files"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summarize counts diags; files is the number of files checked.
func Summarize(diags []lint.Diagnostic, files int) Summary {
	s := Summary{Files: files}
	for _, d := range diags {
		switch d.Severity {
		case core.SeverityError:
			s.Errors++
		case core.SeverityWarning:
			s.Warnings++
		}
	}
	return s
}

// ExitCode returns 1 if any diagnostic is an error after policy
// resolution, 0 otherwise. Warnings alone never fail a run.
func ExitCode(diags []lint.Diagnostic) int {
	for _, d := range diags {
		if d.Severity == core.SeverityError {
			return 1
		}
	}
	return 0
}

// Options tune Write.
type Options struct {
	Files int  // number of files checked, for the summary
	Color bool // pretty format only
}

// Write renders diags in format. diags must already be sorted.
func Write(w io.Writer, format Format, diags []lint.Diagnostic, opts Options) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, diags, opts)
	case FormatPretty:
		return writePretty(w, diags, opts)
	case FormatText, "":
		return writeText(w, diags)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteSummary prints the closing counts the way the classic tool did,
// omitting zero counts.
func WriteSummary(w io.Writer, s Summary) error {
	if s.Warnings > 0 {
		if _, err := fmt.Fprintf(w, "%d bashate warning(s) found\n", s.Warnings); err != nil {
			return err
		}
	}
	if s.Errors > 0 {
		if _, err := fmt.Fprintf(w, "%d bashate error(s) found\n", s.Errors); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, diags []lint.Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintf(w, "%s:%s: %s %s\n", d.File, d.Pos, d.RuleID, d.Message); err != nil {
			return err
		}
	}
	return nil
}

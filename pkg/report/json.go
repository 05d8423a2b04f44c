package report

import (
	"encoding/json"
	"io"

	"github.com/leapstack-labs/bashate/pkg/lint"
)

// jsonOutput is the document written by the json format.
type jsonOutput struct {
	Summary     Summary          `json:"summary"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func writeJSON(w io.Writer, diags []lint.Diagnostic, opts Options) error {
	out := jsonOutput{
		Summary:     Summarize(diags, opts.Files),
		Diagnostics: make([]jsonDiagnostic, 0, len(diags)),
	}
	for _, d := range diags {
		out.Diagnostics = append(out.Diagnostics, jsonDiagnostic{
			File:     d.File,
			Line:     d.Pos.Line,
			Column:   max(d.Pos.Column, 1),
			Code:     d.RuleID,
			Severity: d.Severity.String(),
			Message:  d.Message,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

package commands

import (
	"context"
	"io"

	"github.com/leapstack-labs/bashate/internal/runner"
	"github.com/leapstack-labs/bashate/pkg/report"
)

// Check runs the configured analysis over paths and writes the report to
// out. The closing warning/error counts of the text format go to errOut.
func (c *CommandContext) Check(ctx context.Context, paths []string, out, errOut io.Writer) (*runner.Result, error) {
	format, err := report.ParseFormat(c.Cfg.Format)
	if err != nil {
		return nil, &runner.InvocationError{Err: err}
	}

	r, err := c.NewRunner()
	if err != nil {
		return nil, err
	}

	res, err := r.Run(ctx, paths)
	if err != nil {
		return nil, err
	}

	opts := report.Options{Files: res.Files, Color: report.ColorEnabled(out)}
	if err := report.Write(out, format, res.Diagnostics, opts); err != nil {
		return nil, err
	}
	if format == report.FormatText {
		if err := report.WriteSummary(errOut, res.Summary()); err != nil {
			return nil, err
		}
	}

	c.Logger.Debug("check finished",
		"files", res.Files,
		"errors", res.Summary().Errors,
		"warnings", res.Summary().Warnings,
	)
	return res, nil
}

// Package runner checks a set of script files in parallel and collects
// their diagnostics in a deterministic order.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/report"
	"github.com/leapstack-labs/bashate/pkg/source"
)

// InvocationError is a usage problem detected before any file is scanned,
// such as a missing path. It maps to exit status 2.
type InvocationError struct {
	Path string
	Err  error
}

func (e *InvocationError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// ErrNoFiles is returned when Run is called without paths.
var ErrNoFiles = errors.New("no files to check")

// Config configures a Runner.
type Config struct {
	Fs     afero.Fs     // Defaults to the OS filesystem
	Jobs   int          // Files scanned concurrently; <= 0 means GOMAXPROCS
	Logger *slog.Logger // Defaults to a discarding logger
}

// Runner scans files with a shared Analyzer. Each file gets its own
// scanner state, so files never influence each other.
type Runner struct {
	analyzer *lint.Analyzer
	fs       afero.Fs
	jobs     int
	logger   *slog.Logger
}

// Result is the outcome of one Run.
type Result struct {
	Files       int
	Diagnostics []lint.Diagnostic // sorted with report.Sort
}

// Summary counts the result's diagnostics.
func (r *Result) Summary() report.Summary {
	return report.Summarize(r.Diagnostics, r.Files)
}

// ExitCode is the process status for the result: 1 if any error remains
// after severity policy, 0 otherwise.
func (r *Result) ExitCode() int {
	return report.ExitCode(r.Diagnostics)
}

// New creates a Runner.
func New(analyzer *lint.Analyzer, cfg Config) *Runner {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Jobs <= 0 {
		cfg.Jobs = runtime.GOMAXPROCS(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		analyzer: analyzer,
		fs:       cfg.Fs,
		jobs:     cfg.Jobs,
		logger:   cfg.Logger,
	}
}

// Run checks every path. All paths are verified first: if any is missing
// or not a regular file, Run returns an *InvocationError and scans
// nothing.
func (r *Runner) Run(ctx context.Context, paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, &InvocationError{Err: ErrNoFiles}
	}
	if err := r.verify(paths); err != nil {
		return nil, err
	}

	results := make([][]lint.Diagnostic, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			diags, err := r.checkFile(gctx, path)
			if err != nil {
				return err
			}
			results[i] = diags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []lint.Diagnostic
	for _, diags := range results {
		all = append(all, diags...)
	}
	report.Sort(all)

	return &Result{Files: len(paths), Diagnostics: all}, nil
}

func (r *Runner) verify(paths []string) error {
	for _, path := range paths {
		info, err := r.fs.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &InvocationError{Path: path, Err: fs.ErrNotExist}
			}
			return &InvocationError{Path: path, Err: err}
		}
		if info.IsDir() {
			return &InvocationError{Path: path, Err: errors.New("is a directory")}
		}
	}
	return nil
}

func (r *Runner) checkFile(ctx context.Context, path string) ([]lint.Diagnostic, error) {
	r.logger.Info("Running bashate on " + path)

	raw, err := afero.ReadFile(r.fs, path)
	if err != nil {
		// A file that passed verify but cannot be read is one E007 for
		// that file; the rest of the run goes on.
		r.logger.Warn("failed to read file", "file", path, "error", err)
		return r.analyzer.AnalyzeMalformed(ctx, &source.MalformedError{Path: path, Line: 1, Reason: err.Error()}), nil
	}
	diags := r.analyzer.AnalyzeSource(ctx, path, raw)
	r.logger.Debug("file checked", "file", path, "diagnostics", len(diags))
	return diags, nil
}

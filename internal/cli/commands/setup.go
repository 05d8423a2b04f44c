// Package commands implements the bashate subcommands and the shared
// plumbing behind the root check.
package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/bashate/internal/cli/config"
	"github.com/leapstack-labs/bashate/internal/runner"
	"github.com/leapstack-labs/bashate/pkg/lint"
	_ "github.com/leapstack-labs/bashate/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/bashate/pkg/syntax"
)

// ErrViolations is returned when a check finds error-severity violations.
// It maps to exit status 1 and is not printed.
var ErrViolations = errors.New("style violations found")

// Deps are the collaborators commands use. Zero fields fall back to the
// real implementations.
type Deps struct {
	Fs     afero.Fs       // Defaults to the OS filesystem
	Syntax syntax.Checker // Defaults to a Bash checker built from the config
}

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Deps   Deps
}

// NewCommandContext gathers the loaded config and logger from cmd's context.
func NewCommandContext(cmd *cobra.Command, deps *Deps) *CommandContext {
	cc := &CommandContext{
		Cfg:    config.FromContext(cmd.Context()),
		Logger: config.GetLogger(cmd.Context()),
	}
	if deps != nil {
		cc.Deps = *deps
	}
	return cc
}

// NewAnalyzer builds an analyzer from the configuration. The syntax rules
// are off when no_syntax_check is set.
func (c *CommandContext) NewAnalyzer() (*lint.Analyzer, error) {
	opts := []lint.Option{lint.WithLogger(c.Logger)}

	if !c.Cfg.NoSyntaxCheck {
		checker := c.Deps.Syntax
		if checker == nil {
			bash, err := syntax.NewBash(c.Cfg.SyntaxCommand, c.Cfg.SyntaxTimeout, c.Logger)
			if err != nil {
				return nil, &runner.InvocationError{Err: err}
			}
			checker = bash
		}
		opts = append(opts, lint.WithSyntaxChecker(checker))
	}

	return lint.NewAnalyzer(c.Cfg.LintConfig(), opts...), nil
}

// NewRunner builds a runner over the configured analyzer.
func (c *CommandContext) NewRunner() (*runner.Runner, error) {
	analyzer, err := c.NewAnalyzer()
	if err != nil {
		return nil, err
	}
	return runner.New(analyzer, runner.Config{
		Fs:     c.Deps.Fs,
		Jobs:   c.Cfg.Jobs,
		Logger: c.Logger,
	}), nil
}

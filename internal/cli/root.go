// Package cli provides the command-line interface for bashate.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/bashate/internal/cli/commands"
	"github.com/leapstack-labs/bashate/internal/cli/config"
	"github.com/leapstack-labs/bashate/pkg/report"
	"github.com/leapstack-labs/bashate/pkg/syntax"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Exit statuses.
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitInvocation = 2
)

type options struct {
	deps      commands.Deps
	configDir string
}

// Option customizes the root command.
type Option func(*options)

// WithFs reads scripts from fsys instead of the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) { o.deps.Fs = fsys }
}

// WithSyntaxChecker replaces the bash -n checker.
func WithSyntaxChecker(c syntax.Checker) Option {
	return func(o *options) { o.deps.Syntax = c }
}

// WithConfigDir starts the config file search in dir instead of the
// working directory.
func WithConfigDir(dir string) Option {
	return func(o *options) { o.configDir = dir }
}

// NewRootCmd creates and returns the root command.
func NewRootCmd(opts ...Option) *cobra.Command {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var (
		cfgFile string
		show    bool
	)

	rootCmd := &cobra.Command{
		Use:   "bashate [flags] FILE...",
		Short: "Style checker for bash scripts",
		Long: `bashate checks bash scripts for whitespace, structure and deprecated
syntax problems. Each violation is reported with its file, line, column
and rule code.

Exit status is 0 when no error-severity violation is found, 1 when one is,
and 2 when the command line or configuration is invalid.`,
		Example: `  # Check scripts
  bashate deploy.sh lib/*.sh

  # Ignore trailing whitespace, demote deprecated syntax to warnings
  bashate -i E001 -w E04 deploy.sh

  # Print the rule catalogue
  bashate --show`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for commands that do not check files
			switch cmd.Name() {
			case "help", "completion", "__complete", "version", "rules":
				return nil
			}

			loader := config.Loader{Dir: o.configDir}
			cfg, err := loader.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if used := loader.FileUsed(); used != "" {
				logger.Info("using config file", "path", used)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if show {
				return commands.WriteCatalogue(cmd.OutOrStdout())
			}
			if len(args) == 0 {
				return errors.New("requires at least one FILE")
			}

			cc := commands.NewCommandContext(cmd, &o.deps)
			res, err := cc.Check(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if res.ExitCode() != ExitOK {
				return commands.ErrViolations
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: nearest "+config.FileName+")")
	flags.StringSliceP("ignore", "i", nil, "Rules to ignore, e.g. E001,E002 or E00")
	flags.StringSliceP("warn", "w", nil, "Rules to report as warnings")
	flags.StringSliceP("error", "e", nil, "Rules to report as errors")
	flags.BoolP("verbose", "v", false, "Verbose output")
	flags.Int("max-line-length", config.DefaultMaxLineLength, "Longest line allowed by E006")
	flags.StringP("format", "f", config.DefaultFormat, "Output format: text, json, pretty")
	flags.IntP("jobs", "j", 0, "Files checked in parallel (default: number of CPUs)")
	flags.String("syntax-command", syntax.DefaultCommand, "Command used to syntax check a file")
	flags.Duration("syntax-timeout", config.DefaultSyntaxTimeout, "Time limit for one syntax check")
	flags.Bool("no-syntax-check", false, "Skip the external syntax check (E040)")
	rootCmd.Flags().BoolVarP(&show, "show", "s", false, "Print the rule catalogue and exit")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(report.FormatText), string(report.FormatJSON), string(report.FormatPretty)}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewWatchCommand(&o.deps))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, commands.ErrViolations) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps a command error to an exit status. Anything other than
// found violations is a usage problem: bad flags, missing files or an
// invalid configuration.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, commands.ErrViolations):
		return ExitViolations
	default:
		return ExitInvocation
	}
}

// newLogger builds the CLI logger: warnings only, or info and up with
// --verbose. Timestamps are dropped to keep terminal output short.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for bashate.

To load completions:

Bash:
  $ source <(bashate completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ bashate completion bash > /etc/bash_completion.d/bashate
  # macOS:
  $ bashate completion bash > $(brew --prefix)/etc/bash_completion.d/bashate

Zsh:
  $ bashate completion zsh > "${fpath[1]}/_bashate"

Fish:
  $ bashate completion fish > ~/.config/fish/completions/bashate.fish

PowerShell:
  PS> bashate completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}

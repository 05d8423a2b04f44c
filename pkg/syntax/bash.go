package syntax

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/anmitsu/go-shlex"
)

// DefaultCommand is the checker command used when none is configured.
const DefaultCommand = "bash -n"

// DefaultTimeout bounds a single check.
const DefaultTimeout = 30 * time.Second

// Bash runs a shell in no-exec mode (bash -n) on each file.
type Bash struct {
	argv    []string
	timeout time.Duration
	logger  *slog.Logger
}

// NewBash builds a checker from a command line such as "bash -n" or
// "/usr/local/bin/bash -n -O extglob". The file path is appended as the
// last argument.
func NewBash(command string, timeout time.Duration, logger *slog.Logger) (*Bash, error) {
	if command == "" {
		command = DefaultCommand
	}
	argv, err := shlex.Split(command, true)
	if err != nil {
		return nil, fmt.Errorf("parse syntax command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("parse syntax command %q: empty command", command)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bash{argv: argv, timeout: timeout, logger: logger}, nil
}

// Command returns the argument vector without the file path.
func (b *Bash) Command() []string {
	return append([]string(nil), b.argv...)
}

// Check runs the command on path. A non-zero exit status is expected for
// files with errors and is not itself an error; only failing to start the
// command is.
func (b *Bash) Check(ctx context.Context, path string) (*Finding, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	args := append(b.argv[1:len(b.argv):len(b.argv)], path)
	cmd := exec.CommandContext(ctx, b.argv[0], args...)
	// messages are parsed, so keep them in English
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && cmd.ProcessState == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, b.argv[0], err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("check %s: %w", path, ctxErr)
	}

	finding := ParseOutput(stderr.String())
	if finding == nil && err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			b.logger.Debug("syntax checker exited without a parsable error",
				"path", path, "code", exitErr.ExitCode())
		}
	}
	return finding, nil
}

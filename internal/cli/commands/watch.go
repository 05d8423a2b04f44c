package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/bashate/internal/runner"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE...",
		Short: "Re-check files whenever they change",
		Long: `Check the given files, then check them again every time one of them is
written. Stop with Ctrl+C.`,
		Example: `  bashate watch deploy.sh lib/*.sh`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd, deps)
			return cc.Watch(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr(), nil)
		},
	}
}

// Watch checks paths once and then after every change until ctx is done.
// checked, when set, is called after each check with its result.
func (c *CommandContext) Watch(ctx context.Context, paths []string, out, errOut io.Writer, checked func(*runner.Result)) error {
	// The first check reports invocation errors like a plain run.
	first, err := c.Check(ctx, paths, out, errOut)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch directories rather than files so renames from atomic saves
	// are still seen.
	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		watched[filepath.Clean(p)] = true
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	c.Logger.Info("watching for changes", "files", len(paths))
	if checked != nil {
		checked(first)
	}

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			c.Logger.Debug("file changed", "file", event.Name, "op", event.Op.String())
			debounce = time.After(watchDebounce)

		case <-debounce:
			debounce = nil
			res, err := c.Check(ctx, paths, out, errOut)
			if err != nil {
				var inv *runner.InvocationError
				if errors.As(err, &inv) {
					// A file may be missing for a moment mid-save.
					c.Logger.Warn("check skipped", "error", err)
					continue
				}
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			if checked != nil {
				checked(res)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.Logger.Error("watcher error", "error", err)
		}
	}
}

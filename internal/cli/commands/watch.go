package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapscaffold/internal/scaffold"
	"github.com/leapstack-labs/leapscaffold/internal/watch"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <scaffold> <destination>",
		Short: "Regenerate a project whenever a scaffold's files change",
		Long: `Create <destination> from an on-disk scaffold, then recreate it every time a
file under the scaffold's template directory changes. Useful while writing a
scaffold. Built-in scaffolds cannot be watched.

The package name is derived from the last element of <destination>.
Press Ctrl+C to stop.`,
		Example: `  # Declare the scaffold in leapscaffold.yaml, then
  leapscaffold watch mine /tmp/preview

  # Wait one second of quiet before regenerating
  leapscaffold watch mine /tmp/preview --debounce 1s`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, args[0], args[1])
		},
	}

	cmd.Flags().Duration("debounce", 0, "Quiet period before regenerating (default 300ms)")
	cmd.Flags().Bool("indent", false, "Indent progress lines by directory depth")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, scaffoldName, destination string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	reg, err := cmdCtx.Registry()
	if err != nil {
		return err
	}
	s, err := reg.Lookup(scaffoldName)
	if err != nil {
		return err
	}
	if !s.Root.OnDisk() {
		return fmt.Errorf("scaffold %s is built in and cannot be watched", s.Name)
	}

	dest, err := filepath.Abs(destination)
	if err != nil {
		return fmt.Errorf("failed to resolve destination %s: %w", destination, err)
	}

	if s.Root.Contains(dest) {
		return fmt.Errorf("destination %s is inside the scaffold directory %s", dest, s.Root.Path)
	}

	opts := []scaffold.Option{
		scaffold.WithLogger(logger),
		scaffold.WithIndent(cmdCtx.Cfg.Indent),
		scaffold.WithVars(cmdCtx.Cfg.Vars),
	}
	generate := func() error {
		started := time.Now()
		report, err := s.Create(filepath.Base(dest), filepath.Dir(dest), r.Writer(), opts...)
		if err != nil {
			return err
		}
		r.Success(fmt.Sprintf("Generated %d files in %s", len(report.Files), time.Since(started).Round(time.Millisecond)))
		return nil
	}

	if err := generate(); err != nil {
		return fmt.Errorf("initial generation failed: %w", err)
	}

	w, err := watch.New(watch.Config{
		Dir:      s.Root.Path,
		Debounce: cmdCtx.Cfg.Watch.Debounce,
		Logger:   logger,
		OnChange: func(_ context.Context, changed []string) error {
			r.Println("")
			r.Muted(fmt.Sprintf("Change detected: %s", filepath.Base(changed[0])))
			return generate()
		},
	})
	if err != nil {
		return err
	}

	r.Println("")
	r.Printf("Watching %s\n", s.Root.String())
	r.Muted("Press Ctrl+C to stop")
	return w.Run(ctx)
}

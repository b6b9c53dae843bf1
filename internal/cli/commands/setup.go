package commands

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapscaffold/internal/cli/config"
	"github.com/leapstack-labs/leapscaffold/internal/cli/output"
	"github.com/leapstack-labs/leapscaffold/internal/scaffold"
	"github.com/leapstack-labs/leapscaffold/internal/scaffolds"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Registry returns the built-in scaffolds plus those declared in the config.
func (c *CommandContext) Registry() (*scaffold.Registry, error) {
	return buildRegistry(c.Cfg)
}

// getConfig returns the current configuration, or defaults when none was
// loaded (commands executed directly in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

func buildRegistry(cfg *config.Config) (*scaffold.Registry, error) {
	names := make([]string, 0, len(cfg.Scaffolds))
	for name := range cfg.Scaffolds {
		names = append(names, name)
	}
	sort.Strings(names)

	extra := make([]*scaffold.Scaffold, 0, len(names))
	for _, name := range names {
		sc := cfg.Scaffolds[name]
		root, err := scaffold.DirRoot(sc.Path)
		if err != nil {
			return nil, err
		}
		extra = append(extra, &scaffold.Scaffold{
			Name:        name,
			Description: sc.Description,
			Root:        root,
		})
	}

	reg, err := scaffolds.NewRegistry(extra...)
	if err != nil {
		return nil, fmt.Errorf("failed to load scaffolds: %w", err)
	}
	return reg, nil
}

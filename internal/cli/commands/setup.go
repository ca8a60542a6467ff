// Package commands implements the numquest subcommands and the
// interactive menu loop.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/numquest/internal/cli/config"
	"github.com/leapstack-labs/numquest/internal/leaderboard"
	"github.com/leapstack-labs/numquest/internal/ui"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Store  *leaderboard.Store
	Styles *ui.Styles
}

// NewCommandContext assembles the shared dependencies from the loaded
// configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		cfg = config.Default()
	}
	logger := config.GetLogger(cmd.Context())

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Store:  leaderboard.NewStore(cfg.ScoresFile, logger),
		Styles: ui.NewStyles(ui.ColorEnabled(cfg.NoColor)),
	}
}

package commands

import (
	"log/slog"

	"github.com/leapstack-labs/slownie/internal/cli/config"
	"github.com/leapstack-labs/slownie/internal/output"
	"github.com/spf13/cobra"
)

// CommandContext holds the shared dependencies of a command run.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the config and logger the
// root command stored in the cobra context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	// Validated when the config was loaded.
	mode, _ := output.ParseMode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	r.SetGroupDigits(cfg.GroupDigits)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

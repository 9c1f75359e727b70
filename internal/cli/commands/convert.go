package commands

import (
	"github.com/leapstack-labs/slownie/internal/batch"
	"github.com/leapstack-labs/slownie/internal/output"
	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <number>...",
		Short: "Spell numbers out in Polish words",
		Long: `Convert one or more integers into their written-out Polish form.

Every argument must be a signed 64-bit integer. Digit groups may be separated
with spaces or underscores ("1 000 000", "12_500"). Pass negative numbers after
"--" so they are not read as flags.

Output adapts to environment:
  - Terminal: one line of words per number
  - Piped/Scripted: Markdown table

Use --output to override: auto, text, markdown, json, table`,
		Example: `  # Spell a number
  slownie convert 123

  # Several numbers, negative ones after --
  slownie convert 1000 2000 -- -5000

  # JSON for scripts
  slownie convert 1234567891 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args)
		},
	}

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)

	results := make([]output.Result, 0, len(args))
	for _, arg := range args {
		n, err := batch.ParseNumber(arg)
		if err != nil {
			return err
		}
		results = append(results, output.NewResult(arg, n))
	}

	cmdCtx.Logger.Debug("converted numbers", "count", len(results))
	return cmdCtx.Renderer.Render(results)
}

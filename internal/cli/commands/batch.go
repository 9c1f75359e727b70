package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/slownie/internal/batch"
	"github.com/spf13/cobra"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert numbers read from a file or stdin",
		Long: `Read one number per line from a file (or stdin when no file is given or the
file is "-") and convert them concurrently. Blank lines and lines starting
with '#' are skipped. Results keep the input order.

Lines that are not integers are reported and make the command exit non-zero,
after every other line has been rendered.`,
		Example: `  # Convert a file
  slownie batch amounts.txt

  # Pipe numbers in, render JSON with 8 workers
  seq 1 100 | slownie batch --output json --workers 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args)
		},
	}

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	lines, err := batch.ReadLines(in)
	if err != nil {
		return err
	}

	results, err := batch.Run(cmd.Context(), lines, batch.Options{
		Workers: cmdCtx.Cfg.Workers,
		Logger:  cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	if err := cmdCtx.Renderer.Render(results); err != nil {
		return err
	}

	if failed := batch.Failures(results); failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be converted", failed, len(results))
	}
	return nil
}

package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/slownie/internal/output"
	"github.com/spf13/cobra"
)

// maxTableRows bounds the size of a generated range.
const maxTableRows = 10_000

// TableOptions holds options for the table command.
type TableOptions struct {
	From int64
	To   int64
	Step int64
}

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	opts := &TableOptions{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render a range of numbers with their words",
		Long: `Convert every number from --from to --to (inclusive) in steps of --step.

Ranges are limited to 10 000 rows.`,
		Example: `  # The first twenty numbers
  slownie table --from 1 --to 20

  # Thousands, as a box-drawn table
  slownie table --from 1000 --to 25000 --step 1000 --output table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTable(cmd, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.From, "from", 0, "First number of the range")
	cmd.Flags().Int64Var(&opts.To, "to", 20, "Last number of the range (inclusive)")
	cmd.Flags().Int64Var(&opts.Step, "step", 1, "Distance between consecutive numbers")

	return cmd
}

func runTable(cmd *cobra.Command, opts *TableOptions) error {
	rows, err := tableRows(opts)
	if err != nil {
		return err
	}

	cmdCtx := NewCommandContext(cmd)

	results := make([]output.Result, 0, rows)
	for i := uint64(0); i < rows; i++ {
		n := opts.From + int64(i)*opts.Step
		results = append(results, output.NewResult(strconv.FormatInt(n, 10), n))
	}

	return cmdCtx.Renderer.Render(results)
}

// tableRows validates the range and returns its row count. The span is
// computed in uint64 so ranges crossing zero at the int64 limits do not overflow.
func tableRows(opts *TableOptions) (uint64, error) {
	if opts.Step < 1 {
		return 0, fmt.Errorf("--step must be positive, got %d", opts.Step)
	}
	if opts.From > opts.To {
		return 0, fmt.Errorf("--from (%d) must not exceed --to (%d)", opts.From, opts.To)
	}
	span := uint64(opts.To) - uint64(opts.From)
	if span/uint64(opts.Step) >= maxTableRows {
		return 0, fmt.Errorf("range exceeds the limit of %d rows", maxTableRows)
	}
	return span/uint64(opts.Step) + 1, nil
}

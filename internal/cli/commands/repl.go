package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/slownie/internal/batch"
	"github.com/leapstack-labs/slownie/internal/output"
	"github.com/leapstack-labs/slownie/pkg/slownie"
	"github.com/spf13/cobra"
)

const replPrompt = "slownie> "

// REPLOptions holds options for the repl command.
type REPLOptions struct {
	HistoryFile string
}

// lineReader is the part of *readline.Instance the REPL loop uses.
type lineReader interface {
	Readline() (string, error)
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	opts := &REPLOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Convert numbers interactively",
		Long: `Start an interactive session. Each line is read as a number and printed
back in words. Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.HistoryFile, "history", "", "File to keep input history in")

	return cmd
}

func runREPL(cmd *cobra.Command, opts *REPLOptions) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     opts.HistoryFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeText)
	r.Note("slownie REPL. Type .help for commands, .quit to exit")

	return replLoop(rl, r, cmd.OutOrStdout())
}

// replLoop reads lines until EOF or .quit.
func replLoop(lines lineReader, r *output.Renderer, w io.Writer) error {
	for {
		line, err := lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleREPLCommand(r, w, line); quit {
				return nil
			}
			continue
		}

		n, err := batch.ParseNumber(line)
		if err != nil {
			r.Error(err)
			continue
		}
		_ = r.Render([]output.Result{output.NewResult(line, n)})
	}
}

// handleREPLCommand runs a dot-command and reports whether the REPL should exit.
func handleREPLCommand(r *output.Renderer, w io.Writer, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(w)

	case ".form":
		if len(parts) < 2 {
			r.Error(errors.New("usage: .form <count>"))
			return false
		}
		count, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			r.Error(fmt.Errorf("count must be a non-negative integer: %w", err))
			return false
		}
		r.Note("%d → %s", count, slownie.FormFor(count))

	default:
		r.Error(fmt.Errorf("unknown command: %s (type .help for commands)", command))
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .form <count>   Show which scale word form a count selects
  .quit / .exit   Exit the REPL

Any other line is read as an integer and spelled out.
`
	_, _ = fmt.Fprintln(w, help)
}

func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".form"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}

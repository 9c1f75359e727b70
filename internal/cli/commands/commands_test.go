// Package commands_test provides tests for CLI command creation.
package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/slownie/internal/cli/config"
	"github.com/leapstack-labs/slownie/internal/output"
	"github.com/leapstack-labs/slownie/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs cmd with cfg and a test logger in its context.
func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := context.WithValue(context.Background(), config.ConfigKey(), cfg)
	ctx = context.WithValue(ctx, config.LoggerKey(), testutil.NewTestLogger(t))

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func textConfig() *config.Config {
	cfg := config.Default()
	cfg.OutputFormat = string(output.ModeText)
	return cfg
}

func TestNewConvertCommand(t *testing.T) {
	cmd := NewConvertCommand()

	assert.Equal(t, "convert <number>...", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{name: "single", args: []string{"123"}, want: "sto dwadzieścia trzy\n"},
		{name: "zero", args: []string{"0"}, want: "zero\n"},
		{
			name: "several with negative",
			args: []string{"1000", "2000", "--", "-5000"},
			want: "tysiąc\ndwa tysiące\nminus pięć tysięcy\n",
		},
		{name: "grouped digits", args: []string{"1 000 000"}, want: "milion\n"},
		{name: "not a number", args: []string{"sto"}, wantErr: "not an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, NewConvertCommand(), textConfig(), "", tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestConvertCommand_RequiresArgs(t *testing.T) {
	_, _, err := execute(t, NewConvertCommand(), textConfig(), "")
	require.Error(t, err)
}

func TestConvertCommand_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.OutputFormat = "json"

	stdout, _, err := execute(t, NewConvertCommand(), cfg, "", "12000")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"words": "dwanaście tysięcy"`)
}

func TestBatchCommand_Stdin(t *testing.T) {
	stdout, _, err := execute(t, NewBatchCommand(), textConfig(), "# header\n1\n\n22\n-14\n")
	require.NoError(t, err)
	assert.Equal(t, "jeden\ndwadzieścia dwa\nminus czternaście\n", stdout)
}

func TestBatchCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte("5\n1234567891\n"), 0600))

	stdout, _, err := execute(t, NewBatchCommand(), textConfig(), "", path)
	require.NoError(t, err)
	assert.Equal(t, "pięć\nmiliard dwieście trzydzieści cztery miliony pięćset sześćdziesiąt siedem tysięcy osiemset dziewięćdziesiąt jeden\n", stdout)
}

func TestBatchCommand_Failures(t *testing.T) {
	stdout, stderr, err := execute(t, NewBatchCommand(), textConfig(), "1\nabc\n3\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 inputs could not be converted")
	assert.Equal(t, "jeden\ntrzy\n", stdout)
	assert.Contains(t, stderr, "abc")
}

func TestBatchCommand_MissingFile(t *testing.T) {
	_, _, err := execute(t, NewBatchCommand(), textConfig(), "", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input")
}

func TestTableCommand(t *testing.T) {
	stdout, _, err := execute(t, NewTableCommand(), textConfig(), "", "--from", "10", "--to", "14")
	require.NoError(t, err)
	assert.Equal(t, "dziesięć\njedenaście\ndwanaście\ntrzynaście\nczternaście\n", stdout)
}

func TestTableCommand_Markdown(t *testing.T) {
	cfg := config.Default()
	cfg.OutputFormat = "markdown"
	cfg.GroupDigits = false

	stdout, _, err := execute(t, NewTableCommand(), cfg, "", "--from", "1000", "--to", "5000", "--step", "1000")
	require.NoError(t, err)
	assert.Contains(t, stdout, "| 1000 | tysiąc |")
	assert.Contains(t, stdout, "| 2000 | dwa tysiące |")
	assert.Contains(t, stdout, "| 5000 | pięć tysięcy |")
}

func TestTableRows(t *testing.T) {
	tests := []struct {
		name    string
		opts    TableOptions
		want    uint64
		wantErr string
	}{
		{name: "single", opts: TableOptions{From: 5, To: 5, Step: 1}, want: 1},
		{name: "stepped", opts: TableOptions{From: 0, To: 10, Step: 3}, want: 4},
		{name: "crosses zero", opts: TableOptions{From: -5, To: 5, Step: 5}, want: 3},
		{name: "zero step", opts: TableOptions{From: 0, To: 1, Step: 0}, wantErr: "--step must be positive"},
		{name: "reversed", opts: TableOptions{From: 2, To: 1, Step: 1}, wantErr: "must not exceed"},
		{name: "too many", opts: TableOptions{From: 0, To: 10_000, Step: 1}, wantErr: "limit"},
		{
			name:    "full int64 span",
			opts:    TableOptions{From: -9223372036854775808, To: 9223372036854775807, Step: 1},
			wantErr: "limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tableRows(&tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("addr"), "flag %q should exist", "addr")
}

func TestServeCommand_BadAddr(t *testing.T) {
	_, _, err := execute(t, NewServeCommand(), textConfig(), "", "--addr", "not-an-address")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestNewREPLCommand(t *testing.T) {
	cmd := NewREPLCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("history"), "flag %q should exist", "history")
}

// scriptedLines feeds fixed lines to replLoop, then io.EOF.
type scriptedLines struct {
	lines []string
	errs  map[int]error
	pos   int
}

func (s *scriptedLines) Readline() (string, error) {
	if err, ok := s.errs[s.pos]; ok {
		s.pos++
		return "", err
	}
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

func TestREPLLoop(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	r := output.NewRendererWithTTY(out, errOut, false, output.ModeText)

	lines := &scriptedLines{lines: []string{"21", "", "xyz", ".form 12", ".form", ".nope", "-3", ".quit", "999"}}
	require.NoError(t, replLoop(lines, r, out))

	stdout := out.String()
	assert.Contains(t, stdout, "dwadzieścia jeden\n")
	assert.Contains(t, stdout, "12 → many\n")
	assert.Contains(t, stdout, "minus trzy\n")
	assert.NotContains(t, stdout, "dziewięćset", "lines after .quit must not be read")

	stderr := errOut.String()
	assert.Contains(t, stderr, "not an integer")
	assert.Contains(t, stderr, "usage: .form <count>")
	assert.Contains(t, stderr, "unknown command: .nope")
}

func TestREPLLoop_InterruptAndEOF(t *testing.T) {
	out := new(bytes.Buffer)
	r := output.NewRendererWithTTY(out, io.Discard, false, output.ModeText)

	lines := &scriptedLines{
		lines: []string{"1", "2"},
		errs:  map[int]error{1: readline.ErrInterrupt},
	}
	require.NoError(t, replLoop(lines, r, out))
	assert.Equal(t, "jeden\n", out.String())
}

func TestREPLLoop_ReadError(t *testing.T) {
	boom := errors.New("boom")
	lines := &scriptedLines{errs: map[int]error{0: boom}}
	r := output.NewRendererWithTTY(io.Discard, io.Discard, false, output.ModeText)

	err := replLoop(lines, r, io.Discard)
	assert.ErrorIs(t, err, boom)
}

func TestREPLHelp(t *testing.T) {
	out := new(bytes.Buffer)
	r := output.NewRendererWithTTY(out, io.Discard, false, output.ModeText)

	assert.False(t, handleREPLCommand(r, out, ".help"))
	assert.Contains(t, out.String(), ".form <count>")
	assert.True(t, handleREPLCommand(r, out, ".EXIT"))
}

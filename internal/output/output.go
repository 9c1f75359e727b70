// Package output renders conversion results for the CLI and server.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/slownie/pkg/slownie"
	"golang.org/x/term"
	"golang.org/x/text/message"
)

// Mode is an output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeTable    Mode = "table"
)

// Modes lists every accepted mode, in help order.
var Modes = []Mode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeTable}

// ParseMode validates s as an output mode. The empty string means auto.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeAuto, nil
	}
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m == "md" {
		return ModeMarkdown, nil
	}
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown output mode %q (want one of auto, text, markdown, json, table)", s)
}

// Result is one converted (or rejected) input.
type Result struct {
	Input     string   `json:"input"`
	Number    int64    `json:"number"`
	Words     string   `json:"words,omitempty"`
	Fragments []string `json:"fragments,omitempty"`
	Err       string   `json:"error,omitempty"`
}

// NewResult converts n and records the original input text.
func NewResult(input string, n int64) Result {
	fragments := slownie.Words(n)
	return Result{
		Input:     input,
		Number:    n,
		Words:     strings.Join(fragments, " "),
		Fragments: fragments,
	}
}

// Failed reports whether the input could not be converted.
func (r Result) Failed() bool {
	return r.Err != ""
}

// Renderer writes results in a fixed output mode.
type Renderer struct {
	out         io.Writer
	errOut      io.Writer
	mode        Mode
	isTTY       bool
	groupDigits bool
	styles      *Styles
	numbers     *message.Printer
}

// NewRenderer creates a renderer. Auto mode resolves to text when out is a
// terminal and to markdown otherwise.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == ModeAuto || mode == "" {
		if isTTY {
			mode = ModeText
		} else {
			mode = ModeMarkdown
		}
	}
	return &Renderer{
		out:     out,
		errOut:  errOut,
		mode:    mode,
		isTTY:   isTTY,
		styles:  NewStyles(out, isTTY),
		numbers: message.NewPrinter(slownie.Language),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Mode returns the resolved output mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// SetGroupDigits toggles locale digit grouping of the number column.
func (r *Renderer) SetGroupDigits(on bool) {
	r.groupDigits = on
}

// Render writes all results.
func (r *Renderer) Render(results []Result) error {
	switch r.mode {
	case ModeJSON:
		return r.renderJSON(results)
	case ModeTable:
		r.renderTable(results, false)
	case ModeMarkdown:
		r.renderTable(results, true)
	default:
		r.renderText(results)
	}
	return nil
}

// Error writes a standalone error line.
func (r *Renderer) Error(err error) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("Error: "+err.Error()))
}

// Note writes a de-emphasised informational line to out.
func (r *Renderer) Note(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.styles.Muted.Render(fmt.Sprintf(format, args...)))
}

func (r *Renderer) renderText(results []Result) {
	for _, res := range results {
		if res.Failed() {
			_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render(fmt.Sprintf("Error: %s: %s", res.Input, res.Err)))
			continue
		}
		_, _ = fmt.Fprintln(r.out, r.styles.Words.Render(res.Words))
	}
}

func (r *Renderer) renderJSON(results []Result) error {
	if results == nil {
		results = []Result{}
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func (r *Renderer) renderTable(results []Result, markdown bool) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Number", "Words"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	for _, res := range results {
		if res.Failed() {
			t.AppendRow(table.Row{res.Input, "error: " + res.Err})
			continue
		}
		t.AppendRow(table.Row{r.formatNumber(res.Number), res.Words})
	}

	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
	_, _ = fmt.Fprintf(r.out, "(%d rows)\n", len(results))
}

func (r *Renderer) formatNumber(n int64) string {
	if !r.groupDigits {
		return fmt.Sprintf("%d", n)
	}
	return r.numbers.Sprintf("%d", n)
}

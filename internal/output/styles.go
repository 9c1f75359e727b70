package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Words lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
}

// NewStyles builds styles bound to w. Styling is disabled when w is not a
// terminal or NO_COLOR is set.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !isTTY || termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Words: r.NewStyle().Bold(true),
		Muted: r.NewStyle().Foreground(lipgloss.Color("241")),
		Error: r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

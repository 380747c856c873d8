package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	messageOKColor      = lipgloss.AdaptiveColor{Light: "#009900", Dark: "#00FF00"}
	messageWarningColor = lipgloss.AdaptiveColor{Light: "#990000", Dark: "#FF0000"}
	messageLockColor    = lipgloss.AdaptiveColor{Light: "#DE970B", Dark: "#F6BE00"}
	mutedStyleColor     = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
)

// Painter styles report lines for one output. With colour off every method
// returns its input unchanged.
type Painter struct {
	color   bool
	ok      lipgloss.Style
	missing lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

// NewPainter returns a Painter for w.
func NewPainter(w io.Writer, color bool) *Painter {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Painter{
		color:   color,
		ok:      r.NewStyle().Foreground(messageOKColor),
		missing: r.NewStyle().Foreground(messageWarningColor),
		err:     r.NewStyle().Foreground(messageLockColor),
		muted:   r.NewStyle().Foreground(mutedStyleColor),
	}
}

func (p *Painter) render(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return style.Render(text)
}

func (p *Painter) Success(text string) string { return p.render(p.ok, text) }
func (p *Painter) Missing(text string) string { return p.render(p.missing, text) }
func (p *Painter) Error(text string) string   { return p.render(p.err, text) }
func (p *Painter) Muted(text string) string   { return p.render(p.muted, text) }

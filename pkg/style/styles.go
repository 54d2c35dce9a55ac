// Package style holds the lipgloss styles used for terminal output.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles is the set of styles bound to one renderer.
type Styles struct {
	Title   lipgloss.Style
	Project lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Symlink lipgloss.Style
	Binary  lipgloss.Style
	Source  lipgloss.Style
	Install lipgloss.Style
}

// Indicators
const (
	SuccessMark = "✓"
	ErrorMark   = "✗"
	WarningMark = "!"
	InfoMark    = "•"
	SkipMark    = "○"
)

// NewRenderer returns a lipgloss renderer for w. Colors are stripped
// unless color is true.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// New builds the style set on top of r.
func New(r *lipgloss.Renderer) Styles {
	bold := func(c lipgloss.TerminalColor) lipgloss.Style {
		return r.NewStyle().Foreground(c).Bold(true)
	}
	return Styles{
		Title:   bold(HeadingColor),
		Project: bold(PrimaryColor),
		Muted:   r.NewStyle().Foreground(MutedColor),
		Path:    r.NewStyle().Foreground(SecondaryColor).Italic(true),
		Success: bold(SuccessColor),
		Error:   bold(ErrorColor),
		Warning: bold(WarningColor),
		Info:    r.NewStyle().Foreground(InfoColor),

		Symlink: bold(SymlinkColor),
		Binary:  bold(BinaryColor),
		Source:  bold(SourceColor),
		Install: bold(InstallScriptColor),
	}
}

// ColorEnabled reports whether w is a terminal that should get colored
// output. NO_COLOR disables color regardless.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

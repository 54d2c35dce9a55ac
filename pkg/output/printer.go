// Package output reports user-facing progress of repository operations.
// Diagnostics go through pkg/logging; the Printer only carries what the
// user asked to see.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgulich/dotfile-manager/pkg/style"
)

// Printer writes styled, line-oriented reports. A nil *Printer discards
// everything.
type Printer struct {
	w      io.Writer
	styles style.Styles
}

// Option configures a Printer.
type Option func(*printerOptions)

type printerOptions struct {
	color    bool
	colorSet bool
}

// WithColor forces colored output on or off. By default color is used
// only when w is a terminal.
func WithColor(enabled bool) Option {
	return func(o *printerOptions) {
		o.color = enabled
		o.colorSet = true
	}
}

// New returns a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	var o printerOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.colorSet {
		o.color = style.ColorEnabled(w)
	}
	return &Printer{
		w:      w,
		styles: style.New(style.NewRenderer(w, o.color)),
	}
}

// Discard returns a Printer that writes nowhere.
func Discard() *Printer {
	return New(io.Discard, WithColor(false))
}

func (p *Printer) line(indent int, s string) {
	if p == nil {
		return
	}
	_, _ = fmt.Fprintln(p.w, strings.Repeat("  ", indent)+s)
}

// Header starts a section, usually one per project.
func (p *Printer) Header(format string, args ...any) {
	if p == nil {
		return
	}
	p.line(0, p.styles.Title.Render(fmt.Sprintf(format, args...)))
}

// Project prints a project heading.
func (p *Printer) Project(name string) {
	if p == nil {
		return
	}
	p.line(0, p.styles.Project.Render(name))
}

// Success reports a completed step.
func (p *Printer) Success(format string, args ...any) {
	p.mark(p.styleOf(func(s style.Styles) string { return s.Success.Render(style.SuccessMark) }), format, args...)
}

// Skip reports a step that was deliberately not performed.
func (p *Printer) Skip(format string, args ...any) {
	p.mark(p.styleOf(func(s style.Styles) string { return s.Muted.Render(style.SkipMark) }), format, args...)
}

// Info reports a neutral fact, such as an empty action list.
func (p *Printer) Info(format string, args ...any) {
	p.mark(p.styleOf(func(s style.Styles) string { return s.Info.Render(style.InfoMark) }), format, args...)
}

// Warn reports a problem that does not stop the operation.
func (p *Printer) Warn(format string, args ...any) {
	p.mark(p.styleOf(func(s style.Styles) string { return s.Warning.Render(style.WarningMark) }), format, args...)
}

// Error reports a failure.
func (p *Printer) Error(format string, args ...any) {
	p.mark(p.styleOf(func(s style.Styles) string { return s.Error.Render(style.ErrorMark) }), format, args...)
}

// Action reports one filesystem or process action. kind selects the
// color: "symlink", "bin", "source" or "install".
func (p *Printer) Action(kind, format string, args ...any) {
	if p == nil {
		return
	}
	label := kind
	switch kind {
	case "symlink":
		label = p.styles.Symlink.Render(kind)
	case "bin":
		label = p.styles.Binary.Render(kind)
	case "source":
		label = p.styles.Source.Render(kind)
	case "install":
		label = p.styles.Install.Render(kind)
	}
	p.line(1, fmt.Sprintf("%s %s", label, fmt.Sprintf(format, args...)))
}

// Path styles a filesystem path for inclusion in a message.
func (p *Printer) Path(path string) string {
	if p == nil {
		return path
	}
	return p.styles.Path.Render(path)
}

func (p *Printer) styleOf(f func(style.Styles) string) string {
	if p == nil {
		return ""
	}
	return f(p.styles)
}

func (p *Printer) mark(indicator, format string, args ...any) {
	if p == nil {
		return
	}
	p.line(1, indicator+" "+fmt.Sprintf(format, args...))
}

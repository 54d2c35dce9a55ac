// Package shell renders the generated shell script that sources every
// project's configured files.
package shell

import (
	"fmt"
	"io"
	"time"

	"mvdan.cc/sh/v3/syntax"

	"github.com/lgulich/dotfile-manager/pkg/errors"
)

// TimestampFormat is the layout of the generation time in the header.
const TimestampFormat = "2006-01-02 15:04:05"

// Directives accepted by SourceScript.
const (
	DirectiveSource = "source"
	DirectiveDot    = "."
)

// SourceScript writes the aggregate source script to an underlying stream.
type SourceScript struct {
	w         io.Writer
	directive string
	lines     int
}

// NewSourceScript returns a SourceScript writing directive lines to w.
// An empty directive defaults to "source".
func NewSourceScript(w io.Writer, directive string) (*SourceScript, error) {
	switch directive {
	case "":
		directive = DirectiveSource
	case DirectiveSource, DirectiveDot:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported source directive %q", directive).
			WithDetail("directive", directive)
	}
	return &SourceScript{w: w, directive: directive}, nil
}

// WriteHeader writes the generation timestamp and the shellcheck dialect,
// followed by a blank line.
func (s *SourceScript) WriteHeader(dialect string, now time.Time) error {
	_, err := fmt.Fprintf(s.w, "# Autogenerated on %s.\n# shellcheck shell=%s\n\n",
		now.Format(TimestampFormat), dialect)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write source script header")
	}
	return nil
}

// Source appends a directive sourcing path.
func (s *SourceScript) Source(path string) error {
	line, err := Directive(s.directive, path)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write source directive").
			WithDetail("path", path)
	}
	s.lines++
	return nil
}

// Count returns the number of directives written so far.
func (s *SourceScript) Count() int {
	return s.lines
}

// Directive renders a single "<directive> <path>" line with path quoted
// for bash-compatible shells.
func Directive(directive, path string) (string, error) {
	quoted, err := syntax.Quote(path, syntax.LangBash)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "path cannot be quoted for the shell").
			WithDetail("path", path)
	}
	return directive + " " + quoted, nil
}

package shell

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mvdan.cc/sh/v3/syntax"

	"github.com/lgulich/dotfile-manager/pkg/errors"
)

// literalArgs parses a single command line and returns its arguments with
// quoting removed.
func literalArgs(t *testing.T, line string) []string {
	t.Helper()
	file, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	call, ok := file.Stmts[0].Cmd.(*syntax.CallExpr)
	require.True(t, ok, "expected a simple command, got %T", file.Stmts[0].Cmd)

	var args []string
	for _, word := range call.Args {
		var sb strings.Builder
		for _, part := range word.Parts {
			switch p := part.(type) {
			case *syntax.Lit:
				sb.WriteString(p.Value)
			case *syntax.SglQuoted:
				sb.WriteString(p.Value)
			default:
				t.Fatalf("unexpected word part %T", part)
			}
		}
		args = append(args, sb.String())
	}
	return args
}

func TestDirective(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		path      string
	}{
		{"plain path", "source", "/home/u/.dotfiles/topic_a/aliases.zsh"},
		{"path with spaces", "source", "/home/u/My Dotfiles/topic a/aliases.zsh"},
		{"path with dollar", "source", "/home/u/$weird/env.zsh"},
		{"dot directive", ".", "/home/u/.dotfiles/topic_b/env.sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := Directive(tt.directive, tt.path)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.directive, tt.path}, literalArgs(t, line))
		})
	}
}

func TestSourceScript(t *testing.T) {
	var buf bytes.Buffer
	script, err := NewSourceScript(&buf, "")
	require.NoError(t, err)

	now := time.Date(2024, 3, 1, 12, 30, 5, 0, time.UTC)
	require.NoError(t, script.WriteHeader("zsh", now))
	require.NoError(t, script.Source("/a/one.zsh"))
	require.NoError(t, script.Source("/b/two.zsh"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "# Autogenerated on 2024-03-01 12:30:05.", lines[0])
	assert.Equal(t, "# shellcheck shell=zsh", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, []string{"source", "/a/one.zsh"}, literalArgs(t, lines[3]))
	assert.Equal(t, []string{"source", "/b/two.zsh"}, literalArgs(t, lines[4]))
	assert.Equal(t, 2, script.Count())
}

func TestNewSourceScriptRejectsUnknownDirective(t *testing.T) {
	_, err := NewSourceScript(&bytes.Buffer{}, "include")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

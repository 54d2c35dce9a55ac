// Package testutil builds throwaway dotfile repositories for tests.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/lgulich/dotfile-manager/pkg/logging"
)

// TestEnvironment is an isolated repository root and home directory under
// t.TempDir(). HOME, DOTFILES and XDG_STATE_HOME point into it for the
// duration of the test, and console logging is silenced.
type TestEnvironment struct {
	Root     string
	Home     string
	StateDir string

	t *testing.T
}

// ProjectFixture describes one project directory. Scripts are written
// executable; Files are written as regular files.
type ProjectFixture struct {
	Config  string
	Files   map[string]string
	Scripts map[string]string
}

// NewTestEnvironment creates the directories and points the environment
// at them.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	base := t.TempDir()
	env := &TestEnvironment{
		Root:     filepath.Join(base, "dotfiles"),
		Home:     filepath.Join(base, "home"),
		StateDir: filepath.Join(base, "state"),
		t:        t,
	}
	for _, dir := range []string{env.Root, env.Home, env.StateDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.Home)
	t.Setenv("DOTFILES", env.Root)
	t.Setenv("XDG_STATE_HOME", env.StateDir)

	// The log file lands in StateDir, so set up logging after the override.
	logging.SetupLoggerWithOutput(0, io.Discard)

	return env
}

// CreateProject writes a project into the repository root and returns its
// path.
func (env *TestEnvironment) CreateProject(name string, fixture ProjectFixture) string {
	env.t.Helper()

	dir := filepath.Join(env.Root, name)
	CreateDir(env.t, dir)
	if fixture.Config != "" {
		CreateFile(env.t, filepath.Join(dir, "dotfile_manager.yaml"), fixture.Config, 0644)
	}
	for path, content := range fixture.Files {
		CreateFile(env.t, filepath.Join(dir, path), content, 0644)
	}
	for path, content := range fixture.Scripts {
		CreateFile(env.t, filepath.Join(dir, path), content, 0755)
	}
	return dir
}

// HomePath joins elements onto the test home directory.
func (env *TestEnvironment) HomePath(elem ...string) string {
	return filepath.Join(append([]string{env.Home}, elem...)...)
}

// CreateDir creates a directory and its parents.
func CreateDir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// CreateFile writes content to path, creating parent directories.
func CreateFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	CreateDir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// MarkerScript returns a shell script that appends line to marker.
func MarkerScript(marker, line string) string {
	return "#!/bin/sh\necho '" + line + "' >> '" + marker + "'\n"
}

// FailingScript returns a shell script that prints msg and exits with code.
func FailingScript(msg string, code int) string {
	return "#!/bin/sh\necho '" + msg + "'\nexit " + strconv.Itoa(code) + "\n"
}

// ReadLines returns the lines of a marker file, or nil when it does not
// exist.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// AssertSymlink fails the test unless link is a symlink pointing at target.
func AssertSymlink(t *testing.T, link, target string) {
	t.Helper()
	got, err := os.Readlink(link)
	if err != nil {
		t.Errorf("expected %s to be a symlink: %v", link, err)
		return
	}
	if got != target {
		t.Errorf("symlink %s points to %s, expected %s", link, got, target)
	}
}

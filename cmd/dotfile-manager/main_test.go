package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"4d63.com/testcli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgulich/dotfile-manager/pkg/testutil"
)

func setupRepo(t *testing.T) (*testutil.TestEnvironment, string) {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	t.Setenv("NO_COLOR", "1")
	marker := env.HomePath("installed.log")

	env.CreateProject("topic_a", testutil.ProjectFixture{
		Config:  "install_macos: [install.sh]\nsymlinks: {conf: ~/conf.txt}\nrequires: [topic_b]\n",
		Files:   map[string]string{"conf": "x"},
		Scripts: map[string]string{"install.sh": testutil.MarkerScript(marker, "topic_a")},
	})
	env.CreateProject("topic_b", testutil.ProjectFixture{
		Config:  "bin: [tool.sh]\n",
		Scripts: map[string]string{"tool.sh": "#!/bin/sh\n"},
	})
	env.CreateProject("topic_c", testutil.ProjectFixture{
		Config:  "disable: true\ninstall: [install.sh]\n",
		Scripts: map[string]string{"install.sh": testutil.MarkerScript(marker, "topic_c")},
	})
	return env, marker
}

func TestInstallAll(t *testing.T) {
	_, marker := setupRepo(t)

	exitCode, stdout, _ := testcli.Main(t, []string{"dotfile-manager", "install", "--os", "macos"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, []string{"topic_a"}, testutil.ReadLines(t, marker))
	assert.Contains(t, stdout, "topic_c is disabled")
}

func TestInstallNamed(t *testing.T) {
	env, marker := setupRepo(t)

	exitCode, _, _ := testcli.Main(t, []string{"dotfile-manager", "-d", env.Root, "install", "topic_a", "--os", "macos"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, []string{"topic_a"}, testutil.ReadLines(t, marker))
}

func TestInstallUnknownProject(t *testing.T) {
	setupRepo(t)

	exitCode, _, stderr := testcli.Main(t, []string{"dotfile-manager", "install", "nope", "--os", "macos"}, nil, run)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "PROJECT_NOT_FOUND")
	assert.Contains(t, stderr, "project: nope")
}

func TestInstallOSFromEnvironment(t *testing.T) {
	_, marker := setupRepo(t)
	t.Setenv("DOTFILE_MANAGER_OS", "ubuntu")

	exitCode, _, _ := testcli.Main(t, []string{"dotfile-manager", "install"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Nil(t, testutil.ReadLines(t, marker))
}

func TestSetup(t *testing.T) {
	env, _ := setupRepo(t)

	exitCode, stdout, stderr := testcli.Main(t, []string{"dotfile-manager", "setup", "--os", "macos"}, nil, run)
	require.Equal(t, 0, exitCode, stderr)

	testutil.AssertSymlink(t, env.HomePath("conf.txt"), filepath.Join(env.Root, "topic_a", "conf"))
	testutil.AssertSymlink(t, filepath.Join(env.Root, "generated", "bin", "tool.sh"),
		filepath.Join(env.Root, "topic_b", "tool.sh"))
	assert.FileExists(t, filepath.Join(env.Root, "generated", "sources.zsh"))
	assert.Contains(t, stdout, "Set up 2 project(s) for macos")
}

func TestList(t *testing.T) {
	setupRepo(t)

	exitCode, stdout, _ := testcli.Main(t, []string{"dotfile-manager", "list", "--os", "macos"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "✓ topic_a")
	assert.Contains(t, stdout, "topic_a requires topic_b")
	assert.Contains(t, stdout, "✓ topic_b")
	assert.Contains(t, stdout, "○ topic_c (disabled)")
	assert.Less(t, strings.Index(stdout, "topic_a"), strings.Index(stdout, "topic_b"))
}

func TestConfig(t *testing.T) {
	env, _ := setupRepo(t)
	t.Setenv("DOTFILE_MANAGER_SHELL__DIALECT", "bash")

	exitCode, stdout, _ := testcli.Main(t, []string{"dotfile-manager", "config", "--os", "arch"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "# repository: "+env.Root)
	assert.Contains(t, stdout, "# os: arch")
	assert.Regexp(t, `dialect = ['"]bash['"]`, stdout)
	assert.Regexp(t, `source_script = ['"]sources\.zsh['"]`, stdout)
}

func TestDocsRaw(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	exitCode, stdout, _ := testcli.Main(t, []string{"dotfile-manager", "docs", "--raw"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.True(t, strings.HasPrefix(stdout, "# dotfile_manager.yaml"))
}

func TestMissingRepository(t *testing.T) {
	testutil.NewTestEnvironment(t)
	missing := filepath.Join(t.TempDir(), "missing")

	exitCode, _, stderr := testcli.Main(t, []string{"dotfile-manager", "-d", missing, "list"}, nil, run)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "NOT_FOUND")
}

func TestVersion(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	exitCode, stdout, _ := testcli.Main(t, []string{"dotfile-manager", "--version"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.True(t, strings.HasPrefix(stdout, "dotfile-manager dev"))
}

func TestNoCommand(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	exitCode, _, stderr := testcli.Main(t, []string{"dotfile-manager"}, nil, run)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "no command specified")
}

func TestCompletion(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	exitCode, stdout, _ := testcli.Main(t, []string{"dotfile-manager", "completion", "bash"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "dotfile-manager")
}

func TestMain(m *testing.M) {
	// Keep the developer's environment from leaking into settings.
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "DOTFILE_MANAGER_") {
			key, _, _ := strings.Cut(kv, "=")
			_ = os.Unsetenv(key)
		}
	}
	os.Exit(m.Run())
}

func TestManPage(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	exitCode, stdout, _ := testcli.Main(t, []string{"dotfile-manager", "man"}, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, `.TH "DOTFILE-MANAGER"`)
}

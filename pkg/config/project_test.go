// Test Type: Unit Test
// Description: OS-aware resolution of dotfile_manager.yaml

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgulich/dotfile-manager/pkg/config"
	"github.com/lgulich/dotfile-manager/pkg/errors"
	"github.com/lgulich/dotfile-manager/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, yamlText, osName string) *config.ProjectConfig {
	t.Helper()
	cfg, err := config.ParseProjectConfig([]byte(yamlText), osName)
	require.NoError(t, err)
	return cfg
}

func TestProjectConfig_Defaults(t *testing.T) {
	for _, input := range []string{"", "# only a comment\n", "unrelated: 1\n"} {
		cfg := parse(t, input, "macos")

		assert.False(t, cfg.IsDisabled())
		assert.Empty(t, cfg.Requires())
		assert.Empty(t, cfg.Install())
		assert.Empty(t, cfg.Symlinks())
		assert.Empty(t, cfg.Bin())
		assert.Empty(t, cfg.Source())
		assert.Equal(t, "macos", cfg.OSName())
	}
}

func TestProjectConfig_GenericValues(t *testing.T) {
	input := `
disable: true
requires: [zsh, git]
install: [install.sh]
symlinks:
  gitconfig: ~/.gitconfig
  nvim: [~/.config/nvim, ~/.vim]
bin: [bin/tool.sh]
source: [aliases.zsh]
`
	for _, osName := range []string{"macos", "ubuntu", "arch"} {
		t.Run(osName, func(t *testing.T) {
			cfg := parse(t, input, osName)

			assert.True(t, cfg.IsDisabled())
			assert.Equal(t, []string{"zsh", "git"}, cfg.Requires())
			assert.Equal(t, []string{"install.sh"}, cfg.Install())
			assert.Equal(t, config.Links{
				"gitconfig": {"~/.gitconfig"},
				"nvim":      {"~/.config/nvim", "~/.vim"},
			}, cfg.Symlinks())
			assert.Equal(t, []string{"bin/tool.sh"}, cfg.Bin())
			assert.Equal(t, []string{"aliases.zsh"}, cfg.Source())
		})
	}
}

func TestProjectConfig_OSKeyedValues(t *testing.T) {
	input := `
install:
  macos: [a.sh]
  ubuntu: [b.sh]
symlinks:
  macos:
    conf: ~/Library/conf
  ubuntu:
    conf: ~/.config/conf
disable:
  ubuntu: true
`
	tests := []struct {
		osName       string
		wantInstall  []string
		wantLinks    config.Links
		wantDisabled bool
	}{
		{"macos", []string{"a.sh"}, config.Links{"conf": {"~/Library/conf"}}, false},
		{"ubuntu", []string{"b.sh"}, config.Links{"conf": {"~/.config/conf"}}, true},
		{"arch", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.osName, func(t *testing.T) {
			cfg := parse(t, input, tt.osName)

			assert.Equal(t, tt.wantInstall, cfg.Install())
			if tt.wantLinks == nil {
				assert.Empty(t, cfg.Symlinks())
			} else {
				assert.Equal(t, tt.wantLinks, cfg.Symlinks())
			}
			assert.Equal(t, tt.wantDisabled, cfg.IsDisabled())
		})
	}
}

func TestProjectConfig_LegacySuffixedKeys(t *testing.T) {
	input := `
install_macos: [install.sh]
install_ubuntu: [install_ubuntu.sh]
bin_ubuntu: [linux-only.sh]
`
	macos := parse(t, input, "macos")
	assert.Equal(t, []string{"install.sh"}, macos.Install())
	assert.Empty(t, macos.Bin())

	ubuntu := parse(t, input, "ubuntu")
	assert.Equal(t, []string{"install_ubuntu.sh"}, ubuntu.Install())
	assert.Equal(t, []string{"linux-only.sh"}, ubuntu.Bin())
}

func TestProjectConfig_NestedEntryWinsOverSuffixedKey(t *testing.T) {
	input := `
install_macos: [legacy.sh]
install:
  macos: [nested.sh]
`
	cfg := parse(t, input, "macos")
	assert.Equal(t, []string{"nested.sh"}, cfg.Install())
}

func TestProjectConfig_ShapeMismatchFallsBackToDefault(t *testing.T) {
	input := `
disable: "yes please"
requires: zsh
install: install.sh
symlinks: [a, b]
bin: {tool: tool.sh}
source: [1, 2]
`
	cfg := parse(t, input, "macos")

	assert.False(t, cfg.IsDisabled())
	assert.Empty(t, cfg.Requires())
	assert.Empty(t, cfg.Install())
	assert.Empty(t, cfg.Symlinks())
	assert.Empty(t, cfg.Bin())
	assert.Empty(t, cfg.Source())
}

func TestProjectConfig_OtherOSEntriesAreNotAGenericValue(t *testing.T) {
	// A symlinks mapping keyed by OS does not decode as a generic mapping,
	// so an unlisted OS gets nothing.
	input := `
symlinks:
  macos:
    conf: ~/conf.txt
`
	cfg := parse(t, input, "ubuntu")
	assert.Empty(t, cfg.Symlinks())
}

func TestProjectConfig_OSEntryWithWrongShapeFails(t *testing.T) {
	input := `
install:
  macos: install.sh
  ubuntu: [install.sh]
`
	_, err := config.ParseProjectConfig([]byte(input), "macos")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigShape))
	assert.Equal(t, "install", errors.GetErrorDetails(err)["key"])
	assert.Equal(t, "macos", errors.GetErrorDetails(err)["os"])

	// The broken entry only matters when its OS is selected.
	cfg, err := config.ParseProjectConfig([]byte(input), "ubuntu")
	require.NoError(t, err)
	assert.Equal(t, []string{"install.sh"}, cfg.Install())
}

func TestProjectConfig_NullOSEntryIsAbsent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "suffixed key without generic",
			input: "install_macos:\n",
			want:  []string{},
		},
		{
			name:  "nested key without generic",
			input: "install:\n  macos:\n  ubuntu: [ubuntu.sh]\n",
			want:  []string{},
		},
		{
			name:  "suffixed key with generic",
			input: "install: [generic.sh]\ninstall_macos:\n",
			want:  []string{"generic.sh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.ParseProjectConfig([]byte(tt.input), "macos")
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, cfg.Install())
		})
	}
}

func TestProjectConfig_SetOSName(t *testing.T) {
	input := `
install:
  macos: [a.sh]
  ubuntu: [b.sh]
  broken: {not: a list}
source: [common.zsh]
`
	cfg := parse(t, input, "macos")
	assert.Equal(t, []string{"a.sh"}, cfg.Install())

	require.NoError(t, cfg.SetOSName("ubuntu"))
	assert.Equal(t, "ubuntu", cfg.OSName())
	assert.Equal(t, []string{"b.sh"}, cfg.Install())
	assert.Equal(t, []string{"common.zsh"}, cfg.Source())

	err := cfg.SetOSName("broken")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigShape))
	assert.Equal(t, "ubuntu", cfg.OSName(), "failed selection keeps the previous OS")
	assert.Equal(t, []string{"b.sh"}, cfg.Install())
}

func TestProjectConfig_AccessorsReturnCopies(t *testing.T) {
	cfg := parse(t, "install: [a.sh]\nsymlinks: {a: ~/a}\n", "macos")

	install := cfg.Install()
	install[0] = "changed.sh"
	links := cfg.Symlinks()
	links["a"][0] = "~/changed"

	assert.Equal(t, []string{"a.sh"}, cfg.Install())
	assert.Equal(t, []string{"~/a"}, cfg.Symlinks()["a"])
}

func TestProjectConfig_InvalidYAML(t *testing.T) {
	for _, input := range []string{"- a\n- b\n", "install: [a\n"} {
		_, err := config.ParseProjectConfig([]byte(input), "macos")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	}
}

func TestLoadProjectConfig(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()
	path := filepath.Join(dir, "dotfile_manager.yaml")

	_, err := config.LoadProjectConfig(fs, path, "macos")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	require.NoError(t, os.WriteFile(path, []byte("bin: [tool.sh]\n"), 0644))
	cfg, err := config.LoadProjectConfig(fs, path, "macos")
	require.NoError(t, err)
	assert.Equal(t, []string{"tool.sh"}, cfg.Bin())

	require.NoError(t, os.WriteFile(path, []byte("bin: {macos: tool.sh}\n"), 0644))
	_, err = config.LoadProjectConfig(fs, path, "macos")
	require.Error(t, err)
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestLinksSources(t *testing.T) {
	links := config.Links{"zshrc": {"~/.zshrc"}, "bashrc": {"~/.bashrc"}, "inputrc": {"~/.inputrc"}}
	assert.Equal(t, []string{"bashrc", "inputrc", "zshrc"}, links.Sources())
}

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/lgulich/dotfile-manager/pkg/errors"
	"github.com/lgulich/dotfile-manager/pkg/filesystem"
	"github.com/lgulich/dotfile-manager/pkg/logging"
	"github.com/lgulich/dotfile-manager/pkg/paths"
)

// EnvPrefix prefixes environment variables that override settings.
// A double underscore separates nesting levels:
// DOTFILE_MANAGER_SHELL__DIALECT sets shell.dialect.
const EnvPrefix = "DOTFILE_MANAGER_"

// Valid values of shell.directive
const (
	DirectiveSource = "source"
	DirectiveDot    = "."
)

// Settings are the repository-wide settings.
type Settings struct {
	// OS overrides operating system detection when non-empty.
	OS        string            `koanf:"os" toml:"os"`
	Generated GeneratedSettings `koanf:"generated" toml:"generated"`
	Shell     ShellSettings     `koanf:"shell" toml:"shell"`
}

// GeneratedSettings place the generated artifacts.
type GeneratedSettings struct {
	Dir          string `koanf:"dir" toml:"dir"`
	Bin          string `koanf:"bin" toml:"bin"`
	SourceScript string `koanf:"source_script" toml:"source_script"`
}

// ShellSettings shape the aggregate source script.
type ShellSettings struct {
	Dialect   string `koanf:"dialect" toml:"dialect"`
	Directive string `koanf:"directive" toml:"directive"`
}

// Layout converts the generated settings to a paths.Layout
func (s *Settings) Layout() paths.Layout {
	return paths.Layout{
		GeneratedDir: s.Generated.Dir,
		BinDir:       s.Generated.Bin,
		SourceScript: s.Generated.SourceScript,
	}
}

// Validate checks values koanf cannot type-check.
func (s *Settings) Validate() error {
	if s.Generated.Dir == "" || s.Generated.Bin == "" || s.Generated.SourceScript == "" {
		return errors.New(errors.ErrConfigLoad, "generated.dir, generated.bin and generated.source_script must not be empty")
	}
	switch s.Shell.Directive {
	case DirectiveSource, DirectiveDot:
	default:
		return errors.Newf(errors.ErrConfigLoad, "shell.directive must be %q or %q, got %q",
			DirectiveSource, DirectiveDot, s.Shell.Directive)
	}
	return nil
}

// DefaultSettings returns the embedded defaults.
func DefaultSettings() *Settings {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		panic("embedded default settings are invalid: " + err.Error())
	}
	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		panic("embedded default settings are invalid: " + err.Error())
	}
	return &s
}

// LoadSettings loads settings for the repository at root, layering embedded
// defaults, <root>/.dotfile_manager.toml read from fsys and DOTFILE_MANAGER_*
// variables.
func LoadSettings(fsys filesystem.FS, root string) (*Settings, error) {
	logger := logging.GetLogger("config").With().Str("root", root).Logger()
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	settingsPath := filepath.Join(root, paths.SettingsFile)
	data, err := fsys.ReadFile(settingsPath)
	switch {
	case err == nil:
		if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load repository settings").
				WithDetail("path", settingsPath)
		}
		logger.Debug().Str("path", settingsPath).Msg("Loaded repository settings")
	case !os.IsNotExist(err):
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read repository settings").
			WithDetail("path", settingsPath)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load settings from environment")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("os", s.OS).
		Str("generated", s.Generated.Dir).
		Str("dialect", s.Shell.Dialect).
		Msg("Settings loaded")

	return &s, nil
}

// envKey maps DOTFILE_MANAGER_SHELL__DIALECT to shell.dialect
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

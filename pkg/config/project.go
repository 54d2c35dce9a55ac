package config

import (
	stderrors "errors"
	"slices"
	"strings"

	"github.com/lgulich/dotfile-manager/pkg/errors"
	"github.com/lgulich/dotfile-manager/pkg/filesystem"
	"github.com/lgulich/dotfile-manager/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Keys of dotfile_manager.yaml
const (
	KeyDisable  = "disable"
	KeyRequires = "requires"
	KeyInstall  = "install"
	KeySymlinks = "symlinks"
	KeyBin      = "bin"
	KeySource   = "source"
)

var knownKeys = []string{KeyDisable, KeyRequires, KeyInstall, KeySymlinks, KeyBin, KeySource}

// projectFields is the typed form of a project config, built once at load
// time.
type projectFields struct {
	disable  Value[bool]
	requires Value[[]string]
	install  Value[[]string]
	symlinks Value[Links]
	bin      Value[[]string]
	source   Value[[]string]
}

// resolvedFields holds the fields resolved for one OS.
type resolvedFields struct {
	disabled bool
	requires []string
	install  []string
	symlinks Links
	bin      []string
	source   []string
}

// ProjectConfig is a project's configuration resolved against an operating
// system. The OS can be changed with SetOSName; every accessor reflects the
// most recent selection.
type ProjectConfig struct {
	fields   projectFields
	osName   string
	resolved resolvedFields
}

// LoadProjectConfig reads and resolves a dotfile_manager.yaml file.
func LoadProjectConfig(fsys filesystem.FS, path, osName string) (*ProjectConfig, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read project config").
			WithDetail("path", path)
	}

	cfg, err := ParseProjectConfig(data, osName)
	if err != nil {
		var dfErr *errors.DotfileError
		if stderrors.As(err, &dfErr) {
			dfErr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// ParseProjectConfig parses YAML config data and resolves it for osName.
func ParseProjectConfig(data []byte, osName string) (*ProjectConfig, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse project config")
	}
	return NewProjectConfig(raw, osName)
}

// NewProjectConfig builds a ProjectConfig from an already decoded mapping.
// A nil mapping (empty file) yields a config where every field is empty.
func NewProjectConfig(raw map[string]any, osName string) (*ProjectConfig, error) {
	logUnknownKeys(raw)

	cfg := &ProjectConfig{
		fields: projectFields{
			disable:  newValue(raw, KeyDisable, boolShape),
			requires: newValue(raw, KeyRequires, stringsShape),
			install:  newValue(raw, KeyInstall, stringsShape),
			symlinks: newValue(raw, KeySymlinks, linksShape),
			bin:      newValue(raw, KeyBin, stringsShape),
			source:   newValue(raw, KeySource, stringsShape),
		},
	}

	if err := cfg.SetOSName(osName); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetOSName selects the operating system and re-resolves every field.
// On error the previous selection stays in effect.
func (c *ProjectConfig) SetOSName(osName string) error {
	var (
		r   resolvedFields
		err error
	)

	if r.disabled, err = c.fields.disable.Resolve(osName, false); err != nil {
		return err
	}
	if r.requires, err = c.fields.requires.Resolve(osName, nil); err != nil {
		return err
	}
	if r.install, err = c.fields.install.Resolve(osName, nil); err != nil {
		return err
	}
	if r.symlinks, err = c.fields.symlinks.Resolve(osName, nil); err != nil {
		return err
	}
	if r.bin, err = c.fields.bin.Resolve(osName, nil); err != nil {
		return err
	}
	if r.source, err = c.fields.source.Resolve(osName, nil); err != nil {
		return err
	}

	c.osName = osName
	c.resolved = r
	return nil
}

// OSName returns the selected operating system
func (c *ProjectConfig) OSName() string {
	return c.osName
}

// IsDisabled reports whether the project is disabled
func (c *ProjectConfig) IsDisabled() bool {
	return c.resolved.disabled
}

// Requires returns the names of projects this project declares it needs.
// The list is informational only.
func (c *ProjectConfig) Requires() []string {
	return slices.Clone(c.resolved.requires)
}

// Install returns the install scripts, relative to the project directory
func (c *ProjectConfig) Install() []string {
	return slices.Clone(c.resolved.install)
}

// Symlinks returns the source to destinations mapping
func (c *ProjectConfig) Symlinks() Links {
	links := make(Links, len(c.resolved.symlinks))
	for source, destinations := range c.resolved.symlinks {
		links[source] = slices.Clone(destinations)
	}
	return links
}

// Bin returns the binaries to export, relative to the project directory
func (c *ProjectConfig) Bin() []string {
	return slices.Clone(c.resolved.bin)
}

// Source returns the shell files to source, relative to the project directory
func (c *ProjectConfig) Source() []string {
	return slices.Clone(c.resolved.source)
}

func logUnknownKeys(raw map[string]any) {
	logger := logging.GetLogger("config.project")
	for key := range raw {
		if !isKnownKey(key) {
			logger.Debug().Str("key", key).Msg("Ignoring unknown project config key")
		}
	}
}

func isKnownKey(key string) bool {
	for _, known := range knownKeys {
		if key == known || strings.HasPrefix(key, known+"_") {
			return true
		}
	}
	return false
}

package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lgulich/dotfile-manager/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfiles selects the default repository root
	EnvDotfiles = "DOTFILES"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// File names shared by every repository. These are not configurable.
const (
	// ProjectConfigFile marks a directory as a project
	ProjectConfigFile = "dotfile_manager.yaml"

	// SettingsFile holds optional repository-wide settings
	SettingsFile = ".dotfile_manager.toml"
)

// Layout describes where generated artifacts are placed. Relative entries are
// resolved against the repository root (GeneratedDir) and the generated
// directory (BinDir, SourceScript).
type Layout struct {
	GeneratedDir string
	BinDir       string
	SourceScript string
}

// DefaultLayout matches the layout produced by earlier releases.
func DefaultLayout() Layout {
	return Layout{
		GeneratedDir: "generated",
		BinDir:       "bin",
		SourceScript: "sources.zsh",
	}
}

// Paths resolves every location the engine reads or writes.
type Paths struct {
	root         string
	layout       Layout
	usedFallback bool
}

// New creates a Paths instance. An empty root is resolved from $DOTFILES and
// then the working directory.
func New(root string, layout Layout) (*Paths, error) {
	p := &Paths{layout: layout}

	if root == "" {
		resolved, usedFallback, err := findRepoRoot()
		if err != nil {
			return nil, err
		}
		root = resolved
		p.usedFallback = usedFallback
	} else {
		expanded, err := ExpandHome(root)
		if err != nil {
			return nil, err
		}
		root = expanded
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for repository root")
	}
	p.root = absRoot

	return p, nil
}

// findRepoRoot determines the repository root using the following priority:
// 1. DOTFILES environment variable (if set)
// 2. Current working directory (fallback)
func findRepoRoot() (string, bool, error) {
	if root := os.Getenv(EnvDotfiles); root != "" {
		expanded, err := ExpandHome(root)
		if err != nil {
			return "", false, err
		}
		return expanded, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

// Root returns the repository root
func (p *Paths) Root() string {
	return p.root
}

// UsedFallback returns true if the working directory was used as the root
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// Layout returns the generated artifact layout in use
func (p *Paths) Layout() Layout {
	return p.layout
}

// ProjectPath returns the directory of the named project
func (p *Paths) ProjectPath(name string) string {
	return filepath.Join(p.root, name)
}

// ProjectConfigPath returns the config file of the named project
func (p *Paths) ProjectConfigPath(name string) string {
	return filepath.Join(p.ProjectPath(name), ProjectConfigFile)
}

// SettingsPath returns the repository settings file
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.root, SettingsFile)
}

// GeneratedDir returns the directory holding all generated artifacts
func (p *Paths) GeneratedDir() string {
	return resolve(p.root, p.layout.GeneratedDir)
}

// BinDir returns the directory exported binaries are linked into
func (p *Paths) BinDir() string {
	return resolve(p.GeneratedDir(), p.layout.BinDir)
}

// SourceScriptPath returns the aggregate source script
func (p *Paths) SourceScriptPath() string {
	return resolve(p.GeneratedDir(), p.layout.SourceScript)
}

// IsGenerated reports whether a top-level entry of the repository is the
// generated directory, which must never be mistaken for a project.
func (p *Paths) IsGenerated(name string) bool {
	return filepath.Join(p.root, name) == p.GeneratedDir()
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// ExpandHome expands a leading "~" or "~/" to the user's home directory.
// Other paths, including "~user" forms, are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot expand %s", path)
	}

	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

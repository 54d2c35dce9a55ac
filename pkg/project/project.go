package project

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lgulich/dotfile-manager/pkg/config"
	"github.com/lgulich/dotfile-manager/pkg/errors"
	"github.com/lgulich/dotfile-manager/pkg/filesystem"
	"github.com/lgulich/dotfile-manager/pkg/logging"
	"github.com/lgulich/dotfile-manager/pkg/output"
	"github.com/lgulich/dotfile-manager/pkg/paths"
)

// Options configures a Project. Zero values select the OS filesystem, a
// silent printer and the process's standard streams.
type Options struct {
	FS      filesystem.FS
	Printer *output.Printer

	// Streams handed to install scripts in verbose mode.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Project is one top-level directory of the repository that carries a
// dotfile_manager.yaml.
type Project struct {
	name      string
	path      string
	config    *config.ProjectConfig
	fs        filesystem.FS
	printer   *output.Printer
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	installed bool
}

// New validates path as a project directory and loads its config resolved
// for osName.
func New(path, osName string, opts Options) (*Project, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to get absolute project path").
			WithDetail("path", path)
	}
	name := filepath.Base(absPath)

	if !filesystem.IsDir(fsys, absPath) {
		return nil, errors.Newf(errors.ErrInvalidProject, "%s is not a directory", absPath).
			WithDetail("path", absPath)
	}

	configPath := filepath.Join(absPath, paths.ProjectConfigFile)
	info, err := fsys.Stat(configPath)
	if err != nil || info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidProject, "%s has no %s", name, paths.ProjectConfigFile).
			WithDetail("path", absPath)
	}

	cfg, err := config.LoadProjectConfig(fsys, configPath, osName)
	if err != nil {
		var dfErr *errors.DotfileError
		if stderrors.As(err, &dfErr) {
			dfErr.WithDetail("project", name)
		}
		return nil, err
	}

	p := &Project{
		name:    name,
		path:    absPath,
		config:  cfg,
		fs:      fsys,
		printer: opts.Printer,
		stdin:   opts.Stdin,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
	}
	if p.stdin == nil {
		p.stdin = os.Stdin
	}
	if p.stdout == nil {
		p.stdout = os.Stdout
	}
	if p.stderr == nil {
		p.stderr = os.Stderr
	}

	logger := p.logger()
	logger.Debug().
		Str("os", osName).
		Bool("disabled", cfg.IsDisabled()).
		Msg("Project loaded")

	return p, nil
}

// Name returns the project's directory name.
func (p *Project) Name() string {
	return p.name
}

// Path returns the absolute project directory.
func (p *Project) Path() string {
	return p.path
}

// Config returns the resolved project config.
func (p *Project) Config() *config.ProjectConfig {
	return p.config
}

// IsDisabled reports whether the project opted out for the selected OS.
func (p *Project) IsDisabled() bool {
	return p.config.IsDisabled()
}

// Requires returns the projects this one declares it depends on.
func (p *Project) Requires() []string {
	return p.config.Requires()
}

// IsInstalled reports whether Install completed successfully on this
// instance.
func (p *Project) IsInstalled() bool {
	return p.installed
}

// SetOSName re-resolves the config for another operating system.
func (p *Project) SetOSName(osName string) error {
	return p.config.SetOSName(osName)
}

func (p *Project) logger() zerolog.Logger {
	return logging.GetLogger("project").With().Str("project", p.name).Logger()
}

// resolve makes a config path absolute. Relative paths are relative to
// the project directory.
func (p *Project) resolve(path string) (string, error) {
	expanded, err := paths.ExpandHome(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(p.path, expanded), nil
}

// Package repo orchestrates project operations across a dotfile
// repository: every immediate subdirectory with a dotfile_manager.yaml is a
// project.
package repo

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgulich/dotfile-manager/pkg/config"
	"github.com/lgulich/dotfile-manager/pkg/errors"
	"github.com/lgulich/dotfile-manager/pkg/filesystem"
	"github.com/lgulich/dotfile-manager/pkg/logging"
	"github.com/lgulich/dotfile-manager/pkg/output"
	"github.com/lgulich/dotfile-manager/pkg/paths"
	"github.com/lgulich/dotfile-manager/pkg/project"
)

// Options configures a Repo. Nil fields fall back to the OS filesystem,
// settings loaded from the repository, and a silent printer.
type Options struct {
	FS       filesystem.FS
	Settings *config.Settings
	Printer  *output.Printer

	// Streams handed to install scripts in verbose mode.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Repo is a dotfile repository rooted at a directory.
type Repo struct {
	paths    *paths.Paths
	settings *config.Settings
	fs       filesystem.FS
	printer  *output.Printer
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

// New opens the repository at root. An empty root is taken from $DOTFILES
// or the working directory.
func New(root string, opts Options) (*Repo, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	// Settings live at the root, so resolve it with the default layout first.
	p, err := paths.New(root, paths.DefaultLayout())
	if err != nil {
		return nil, err
	}

	info, err := fsys.Stat(p.Root())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "dotfile repository %s does not exist", p.Root()).
			WithDetail("path", p.Root())
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "dotfile repository %s is not a directory", p.Root()).
			WithDetail("path", p.Root())
	}

	settings := opts.Settings
	if settings == nil {
		settings, err = config.LoadSettings(fsys, p.Root())
		if err != nil {
			return nil, err
		}
	}

	p, err = paths.New(p.Root(), settings.Layout())
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("repo")
	logger.Debug().
		Str("root", p.Root()).
		Bool("cwd_fallback", p.UsedFallback()).
		Msg("Opened repository")

	return &Repo{
		paths:    p,
		settings: settings,
		fs:       fsys,
		printer:  opts.Printer,
		stdin:    opts.Stdin,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
	}, nil
}

// Root returns the absolute repository root.
func (r *Repo) Root() string {
	return r.paths.Root()
}

// Paths returns the resolved repository layout.
func (r *Repo) Paths() *paths.Paths {
	return r.paths
}

// Settings returns the effective repository settings.
func (r *Repo) Settings() *config.Settings {
	return r.settings
}

func (r *Repo) logger() zerolog.Logger {
	return logging.GetLogger("repo").With().Str("root", r.paths.Root()).Logger()
}

func (r *Repo) projectOptions() project.Options {
	return project.Options{
		FS:      r.fs,
		Printer: r.printer,
		Stdin:   r.stdin,
		Stdout:  r.stdout,
		Stderr:  r.stderr,
	}
}

// Projects returns the repository's projects, resolved for osName, in
// lexicographic order. Hidden entries, the generated directory and
// directories without a project config are skipped. A project whose config
// cannot be loaded fails the whole call.
func (r *Repo) Projects(osName string) ([]*project.Project, error) {
	logger := r.logger()

	entries, err := r.fs.ReadDir(r.paths.Root())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read repository").
			WithDetail("path", r.paths.Root())
	}

	var projects []*project.Project
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("entry", name).Msg("Skipping hidden entry")
			continue
		}
		if r.paths.IsGenerated(name) {
			logger.Trace().Str("entry", name).Msg("Skipping generated directory")
			continue
		}

		p, err := project.New(r.paths.ProjectPath(name), osName, r.projectOptions())
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrInvalidProject) {
				logger.Debug().Str("entry", name).Msg("Not a project")
				continue
			}
			return nil, err
		}
		projects = append(projects, p)
	}

	logger.Debug().Int("count", len(projects)).Str("os", osName).Msg("Enumerated projects")
	return projects, nil
}

// Project returns the named project, failing with PROJECT_NOT_FOUND when
// it does not exist or is not a valid project.
func (r *Repo) Project(name, osName string) (*project.Project, error) {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsRune(name, '/') || r.paths.IsGenerated(name) {
		return nil, errors.Newf(errors.ErrProjectNotFound, "project %q not found", name).
			WithDetail("project", name)
	}

	p, err := project.New(r.paths.ProjectPath(name), osName, r.projectOptions())
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrInvalidProject) {
			return nil, errors.Wrapf(err, errors.ErrProjectNotFound, "project %q not found", name).
				WithDetail("project", name).
				WithDetail("config", r.paths.ProjectConfigPath(name))
		}
		return nil, err
	}
	return p, nil
}

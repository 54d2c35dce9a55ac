package repo

import (
	"os"
	"path/filepath"
	"time"

	"github.com/lgulich/dotfile-manager/pkg/errors"
	"github.com/lgulich/dotfile-manager/pkg/logging"
	"github.com/lgulich/dotfile-manager/pkg/project"
	"github.com/lgulich/dotfile-manager/pkg/shell"
)

// InstallAll installs every enabled project in lexicographic order and
// stops at the first failure. Nothing is rolled back.
func (r *Repo) InstallAll(osName string, verbose bool) error {
	logger := r.logger()
	defer logging.LogOperationStart(logger, "install_all")()

	projects, err := r.Projects(osName)
	if err != nil {
		return err
	}
	r.warnRequires(projects)

	installed := 0
	for _, p := range projects {
		if r.skipDisabled(p, "install") {
			continue
		}
		r.printer.Project(p.Name())
		if err := p.Install(verbose); err != nil {
			return err
		}
		if p.IsInstalled() {
			installed++
		}
	}

	logger.Info().Int("installed", installed).Str("os", osName).Msg("Installed all projects")
	r.printer.Header("Installed %d project(s) for %s", installed, osName)
	return nil
}

// Install installs the named project.
func (r *Repo) Install(name, osName string, verbose bool) error {
	p, err := r.Project(name, osName)
	if err != nil {
		return err
	}
	if r.skipDisabled(p, "install") {
		return nil
	}

	r.printer.Project(p.Name())
	return p.Install(verbose)
}

// SetupAll links files, exports binaries and regenerates the source
// script for every enabled project, in that order.
func (r *Repo) SetupAll(osName string) error {
	logger := r.logger()
	defer logging.LogOperationStart(logger, "setup_all")()

	projects, err := r.Projects(osName)
	if err != nil {
		return err
	}

	var enabled []*project.Project
	for _, p := range projects {
		if !r.skipDisabled(p, "setup") {
			enabled = append(enabled, p)
		}
	}

	if err := r.setupSymlinks(enabled); err != nil {
		return err
	}
	if err := r.setupBinaries(enabled); err != nil {
		return err
	}
	if err := r.setupSources(enabled); err != nil {
		return err
	}

	logger.Info().Int("projects", len(enabled)).Str("os", osName).Msg("Setup complete")
	r.printer.Header("Set up %d project(s) for %s", len(enabled), osName)
	return nil
}

func (r *Repo) setupSymlinks(projects []*project.Project) error {
	r.printer.Header("Symlinks")
	for _, p := range projects {
		if err := p.CreateSymlinks(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) setupBinaries(projects []*project.Project) error {
	binDir := r.paths.BinDir()
	r.printer.Header("Binaries in %s", r.printer.Path(binDir))

	if err := r.fs.RemoveAll(binDir); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to clear binary directory").
			WithDetail("path", binDir)
	}
	if err := r.fs.MkdirAll(binDir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create binary directory").
			WithDetail("path", binDir)
	}

	for _, p := range projects {
		if err := p.ExportBinaries(binDir); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) setupSources(projects []*project.Project) (err error) {
	scriptPath := r.paths.SourceScriptPath()
	r.printer.Header("Source script %s", r.printer.Path(scriptPath))

	if rmErr := r.fs.Remove(scriptPath); rmErr != nil && !os.IsNotExist(rmErr) {
		return errors.Wrap(rmErr, errors.ErrFileWrite, "failed to remove source script").
			WithDetail("path", scriptPath)
	}
	if mkErr := r.fs.MkdirAll(filepath.Dir(scriptPath), 0755); mkErr != nil {
		return errors.Wrap(mkErr, errors.ErrDirCreate, "failed to create source script directory").
			WithDetail("path", filepath.Dir(scriptPath))
	}

	f, err := r.fs.Create(scriptPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to create source script").
			WithDetail("path", scriptPath)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, errors.ErrFileWrite, "failed to write source script").
				WithDetail("path", scriptPath)
		}
	}()

	script, err := shell.NewSourceScript(f, r.settings.Shell.Directive)
	if err != nil {
		return err
	}
	if err := script.WriteHeader(r.settings.Shell.Dialect, time.Now()); err != nil {
		return err
	}
	for _, p := range projects {
		if err := p.CollectSources(script); err != nil {
			return err
		}
	}

	logger := r.logger()
	logger.Debug().Str("path", scriptPath).Int("sources", script.Count()).Msg("Wrote source script")
	return nil
}

func (r *Repo) skipDisabled(p *project.Project, op string) bool {
	if !p.IsDisabled() {
		return false
	}
	logger := r.logger()
	logger.Info().Str("project", p.Name()).Str("operation", op).Msg("Skipping disabled project")
	r.printer.Skip("%s is disabled, skipping %s", p.Name(), op)
	return true
}

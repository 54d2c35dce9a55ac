package project

import (
	"os"
	"path/filepath"

	"github.com/lgulich/dotfile-manager/pkg/errors"
	"github.com/lgulich/dotfile-manager/pkg/filesystem"
	"github.com/lgulich/dotfile-manager/pkg/paths"
)

// CreateSymlinks links every configured source into each of its
// destinations. Existing files or links at a destination are replaced;
// an existing directory is never touched.
func (p *Project) CreateSymlinks() error {
	logger := p.logger()
	links := p.config.Symlinks()

	if len(links) == 0 {
		logger.Debug().Msg("No symlinks configured")
		p.printer.Info("%s: no symlinks configured", p.name)
		return nil
	}

	for _, source := range links.Sources() {
		sourcePath, err := p.resolve(source)
		if err != nil {
			return err
		}
		if !filesystem.Exists(p.fs, sourcePath) {
			return errors.MissingFile("symlink source", sourcePath).WithDetail("project", p.name)
		}

		for _, destination := range links[source] {
			destPath, err := destinationPath(destination)
			if err != nil {
				return err
			}
			if err := p.forceSymlink(sourcePath, destPath); err != nil {
				return err
			}
			logger.Info().Str("source", sourcePath).Str("destination", destPath).Msg("Created symlink")
			p.printer.Action("symlink", "%s -> %s", p.printer.Path(destPath), p.printer.Path(sourcePath))
		}
	}
	return nil
}

// ExportBinaries links every configured binary into destDir under its base
// name. destDir is expected to have been emptied by the caller.
func (p *Project) ExportBinaries(destDir string) error {
	logger := p.logger()
	binaries := p.config.Bin()

	if len(binaries) == 0 {
		logger.Debug().Msg("No binaries configured")
		p.printer.Info("%s: no binaries configured", p.name)
		return nil
	}

	for _, binary := range binaries {
		binaryPath, err := p.resolve(binary)
		if err != nil {
			return err
		}
		if !filesystem.Exists(p.fs, binaryPath) {
			return errors.MissingFile("binary", binaryPath).WithDetail("project", p.name)
		}

		target := filepath.Join(destDir, filepath.Base(binaryPath))
		if _, err := p.fs.Lstat(target); err == nil {
			return errors.Newf(errors.ErrSymlinkExists, "%s already exists", target).
				WithDetail("project", p.name).
				WithDetail("path", target)
		}
		if err := p.fs.Symlink(binaryPath, target); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to export %s", binary).
				WithDetail("project", p.name).
				WithDetail("source", binaryPath).
				WithDetail("target", target)
		}
		logger.Info().Str("binary", binaryPath).Str("target", target).Msg("Exported binary")
		p.printer.Action("bin", "%s", filepath.Base(binaryPath))
	}
	return nil
}

func (p *Project) forceSymlink(source, destination string) error {
	if err := p.fs.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create symlink parent directory").
			WithDetail("path", filepath.Dir(destination))
	}

	if info, err := p.fs.Lstat(destination); err == nil {
		if info.IsDir() {
			return errors.Newf(errors.ErrSymlinkCreate, "%s is a directory", destination).
				WithDetail("project", p.name).
				WithDetail("path", destination)
		}
		if err := p.fs.Remove(destination); err != nil {
			return errors.Wrap(err, errors.ErrSymlinkCreate, "failed to replace existing file").
				WithDetail("path", destination)
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to inspect symlink destination").
			WithDetail("path", destination)
	}

	if err := p.fs.Symlink(source, destination); err != nil {
		return errors.Wrap(err, errors.ErrSymlinkCreate, "failed to create symlink").
			WithDetail("project", p.name).
			WithDetail("source", source).
			WithDetail("destination", destination)
	}
	return nil
}

// destinationPath expands ~ and anchors relative destinations at the home
// directory.
func destinationPath(destination string) (string, error) {
	expanded, err := paths.ExpandHome(destination)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	home, err := paths.GetHomeDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, expanded), nil
}

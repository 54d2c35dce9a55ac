package project

import (
	"github.com/lgulich/dotfile-manager/pkg/errors"
	"github.com/lgulich/dotfile-manager/pkg/filesystem"
	"github.com/lgulich/dotfile-manager/pkg/shell"
)

// CollectSources appends a directive for each configured source file to
// script, in declaration order.
func (p *Project) CollectSources(script *shell.SourceScript) error {
	logger := p.logger()
	sources := p.config.Source()

	if len(sources) == 0 {
		logger.Debug().Msg("No source files configured")
		p.printer.Info("%s: no source files configured", p.name)
		return nil
	}

	for _, source := range sources {
		path, err := p.resolve(source)
		if err != nil {
			return err
		}
		if !filesystem.Exists(p.fs, path) {
			return errors.MissingFile("source file", path).WithDetail("project", p.name)
		}
		if err := script.Source(path); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("Added source file")
		p.printer.Action("source", "%s", p.printer.Path(path))
	}
	return nil
}

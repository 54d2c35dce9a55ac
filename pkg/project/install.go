package project

import (
	"bytes"
	stderrors "errors"
	"os/exec"
	"time"

	"github.com/lgulich/dotfile-manager/pkg/errors"
	"github.com/lgulich/dotfile-manager/pkg/filesystem"
)

// Install runs the project's install scripts in declaration order. The
// first failing script aborts the rest. When verbose is false the scripts'
// output is captured and only surfaces in the error or the debug log.
func (p *Project) Install(verbose bool) error {
	logger := p.logger()
	scripts := p.config.Install()

	if len(scripts) == 0 {
		logger.Info().Msg("No install scripts configured")
		p.printer.Info("%s: no install scripts for %s", p.name, p.config.OSName())
		return nil
	}

	resolved := make([]string, 0, len(scripts))
	for _, script := range scripts {
		path, err := p.resolve(script)
		if err != nil {
			return err
		}
		if !filesystem.Exists(p.fs, path) {
			return errors.MissingFile("install script", path).WithDetail("project", p.name)
		}
		resolved = append(resolved, path)
	}

	for i, path := range resolved {
		if err := p.runScript(scripts[i], path, verbose); err != nil {
			return err
		}
		p.printer.Action("install", "%s", scripts[i])
	}

	p.installed = true
	logger.Info().Int("scripts", len(resolved)).Msg("Project installed")
	p.printer.Success("installed %s", p.name)
	return nil
}

func (p *Project) runScript(name, path string, verbose bool) error {
	logger := p.logger().With().Str("script", name).Logger()

	cmd := exec.Command(path)
	cmd.Dir = p.path

	cmd.Stdin = p.stdin

	var captured bytes.Buffer
	if verbose {
		cmd.Stdout = p.stdout
		cmd.Stderr = p.stderr
	} else {
		cmd.Stdout = &captured
		cmd.Stderr = &captured
	}

	logger.Debug().Str("dir", cmd.Dir).Bool("verbose", verbose).Msg("Running install script")
	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if captured.Len() > 0 {
		logger.Debug().Str("output", captured.String()).Msg("Install script output")
	}

	if err != nil {
		logger.Error().Err(err).Dur("duration", duration).Msg("Install script failed")

		dfErr := errors.Wrapf(err, errors.ErrScriptFailed, "install script %s of %s failed", name, p.name).
			WithDetail("project", p.name).
			WithDetail("script", path)
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			dfErr.WithDetail("exit_code", exitErr.ExitCode())
		}
		if captured.Len() > 0 {
			dfErr.WithDetail("output", captured.String())
		}
		return dfErr
	}

	logger.Debug().Dur("duration", duration).Msg("Install script finished")
	return nil
}

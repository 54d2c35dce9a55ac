package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lgulich/dotfile-manager/internal/version"
	"github.com/lgulich/dotfile-manager/pkg/logging"
	"github.com/lgulich/dotfile-manager/pkg/output"
	"github.com/lgulich/dotfile-manager/pkg/platform"
	"github.com/lgulich/dotfile-manager/pkg/repo"
)

// cliContext carries global flags and streams to the subcommands.
type cliContext struct {
	verbosity int
	dotfiles  string
	osName    string
	noColor   bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (c *cliContext) printer() *output.Printer {
	if c.noColor {
		return output.New(c.stdout, output.WithColor(false))
	}
	return output.New(c.stdout)
}

// openRepo opens the repository selected by --dotfiles, $DOTFILES or the
// working directory, and resolves the operating system to act for.
func (c *cliContext) openRepo() (*repo.Repo, string, error) {
	r, err := repo.New(c.dotfiles, repo.Options{
		Printer: c.printer(),
		Stdin:   c.stdin,
		Stdout:  c.stdout,
		Stderr:  c.stderr,
	})
	if err != nil {
		return nil, "", err
	}

	osName := c.osName
	source := "flag"
	if osName == "" {
		osName = r.Settings().OS
		source = "settings"
	}
	if osName == "" {
		osName = platform.Detect()
		source = "detected"
	}

	log.Debug().
		Str("root", r.Root()).
		Bool("cwd_fallback", r.Paths().UsedFallback()).
		Str("os", osName).
		Str("os_source", source).
		Msg("Repository selected")

	return r, osName, nil
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cliContext{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:     "dotfile-manager",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(c.verbosity, stderr)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(MsgVersionFormat)

	rootCmd.PersistentFlags().CountVarP(&c.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&c.dotfiles, "dotfiles", "d", "", MsgFlagDotfiles)
	rootCmd.PersistentFlags().StringVar(&c.osName, "os", "", MsgFlagOS)
	rootCmd.PersistentFlags().BoolVar(&c.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Misc:"})

	rootCmd.AddCommand(newInstallCmd(c))
	rootCmd.AddCommand(newSetupCmd(c))
	rootCmd.AddCommand(newListCmd(c))
	rootCmd.AddCommand(newConfigCmd(c))
	rootCmd.AddCommand(newDocsCmd(c))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

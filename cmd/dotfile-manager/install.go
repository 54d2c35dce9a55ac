package main

import (
	"github.com/spf13/cobra"
)

func newInstallCmd(c *cliContext) *cobra.Command {
	var verboseScripts bool

	cmd := &cobra.Command{
		Use:     "install [project]",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return projectNames(c), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, osName, err := c.openRepo()
			if err != nil {
				return err
			}

			verbose := verboseScripts || c.verbosity > 0
			if len(args) == 1 {
				return r.Install(args[0], osName, verbose)
			}
			return r.InstallAll(osName, verbose)
		},
	}

	cmd.Flags().BoolVar(&verboseScripts, "verbose-scripts", false, MsgFlagVerboseScripts)
	return cmd
}

// projectNames lists enabled projects for shell completion.
func projectNames(c *cliContext) []string {
	r, osName, err := c.openRepo()
	if err != nil {
		return nil
	}
	projects, err := r.Projects(osName)
	if err != nil {
		return nil
	}
	var names []string
	for _, p := range projects {
		if !p.IsDisabled() {
			names = append(names, p.Name())
		}
	}
	return names
}

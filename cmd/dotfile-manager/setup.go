package main

import (
	"github.com/spf13/cobra"
)

func newSetupCmd(c *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:     "setup",
		Short:   MsgSetupShort,
		Long:    MsgSetupLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, osName, err := c.openRepo()
			if err != nil {
				return err
			}
			return r.SetupAll(osName)
		},
	}
}

package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCmd(c *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, osName, err := c.openRepo()
			if err != nil {
				return err
			}

			data, err := toml.Marshal(r.Settings())
			if err != nil {
				return fmt.Errorf("failed to encode settings: %w", err)
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, MsgConfigComment, r.Root(), r.Paths().SettingsPath(), osName); err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}

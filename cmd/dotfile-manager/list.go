package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgulich/dotfile-manager/pkg/repo"
)

func newListCmd(c *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, osName, err := c.openRepo()
			if err != nil {
				return err
			}
			projects, err := r.Projects(osName)
			if err != nil {
				return err
			}

			p := c.printer()
			p.Header(MsgProjectsHeader, r.Root(), osName)
			if len(projects) == 0 {
				p.Info(MsgNoProjects)
				return nil
			}

			for _, project := range projects {
				if project.IsDisabled() {
					p.Skip(MsgProjectOff, project.Name())
					continue
				}
				p.Success(MsgProjectEnabled, project.Name())
				if reqs := project.Requires(); len(reqs) > 0 {
					p.Info(MsgProjectReqs, project.Name(), strings.Join(reqs, ", "))
				}
			}

			for _, issue := range repo.CheckRequires(projects) {
				p.Warn("%s", issue)
			}
			return nil
		},
	}
}

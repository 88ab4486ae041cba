package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Provision the toolchain described by the plan file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Apply(cmd.Context(), planPath(cmd))
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the plan file and verify every pinned version exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Check(cmd.Context(), planPath(cmd)); err != nil {
				return err
			}
			cmd.Println("plan is valid")
			return nil
		},
	}
}

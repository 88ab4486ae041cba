package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/toolup/internal/core/domain"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report the environment state for every planned tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := c.app.Status(cmd.Context(), planPath(cmd))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TOOL\tPLANNED\tACTIVE\tSTATE")
			for _, s := range statuses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Tool, s.PlannedVersion, displayActive(s), displayState(s))
			}
			return w.Flush()
		},
	}
}

func displayActive(s domain.ToolStatus) string {
	if s.ActiveVersion == "" {
		return "-"
	}
	return s.ActiveVersion
}

func displayState(s domain.ToolStatus) string {
	switch {
	case s.Installed && s.ActiveVersion == s.PlannedVersion:
		return "provisioned"
	case s.Installed:
		return "installed, not default"
	default:
		return "missing"
	}
}

// Package label implements the `lbl label` commands on top of the label store.
package label

import (
	"github.com/spf13/cobra"
)

// LabelCmd returns the label parent command
func LabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Manage labels",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(SaveCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(TUICmd())

	return cmd
}

// addOutputFlags registers the agent-friendly output flags
func addOutputFlags(cmd *cobra.Command, quietUsage string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietUsage)
	cmd.MarkFlagsMutuallyExclusive("json", "quiet")
}

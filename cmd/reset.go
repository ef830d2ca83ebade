package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <user-id>",
	Short: "Delete a learner and all of their recorded data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("reset deletes all data for %q; re-run with --yes to confirm", args[0])
		}

		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		if err := svc.Reset(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted all data for %s\n", args[0])
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}

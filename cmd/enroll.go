package cmd

import (
	"fmt"

	"github.com/oselot/stitchpath/internal/curriculum"
	"github.com/spf13/cobra"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <user-id>",
	Short: "Register a learner and initialize zeroed progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		userID := args[0]
		if err := svc.Enroll(cmd.Context(), userID); err != nil {
			return err
		}

		catalog := curriculum.Default()
		fmt.Printf("Enrolled %s: %d paths, %d items\n",
			userID, len(catalog.Paths()), catalog.TotalContentCount())
		return nil
	},
}

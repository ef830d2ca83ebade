package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due <user-id>",
	Short: "List items at or past their review time, most overdue first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		items, err := svc.Due(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Nothing due for review.")
			return nil
		}

		fmt.Printf("%-20s  %-16s  %8s  %-12s  %7s\n", "Item", "Path", "Mastery", "Due", "Overdue")
		fmt.Println(strings.Repeat("─", 72))
		for _, it := range items {
			fmt.Printf("%-20s  %-16s  %8.3f  %-12s  %5.1fd\n",
				it.ContentID, it.PathID, it.MasteryLevel,
				it.NextReviewTime.Format("2006-01-02"), it.OverdueDays)
		}
		return nil
	},
}

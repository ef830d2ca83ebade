package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/oselot/stitchpath/internal/app"
	"github.com/oselot/stitchpath/internal/curriculum"
	"github.com/oselot/stitchpath/internal/mastery"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <user-id> [path-id]",
	Short: "Show a learner's progress, overall or per path",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()
		userID := args[0]

		if len(args) == 2 {
			return showPathProgress(ctx, svc, userID, args[1])
		}

		up, err := svc.Progress(ctx, userID)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %.1f%% complete, %d/%d items mastered (as of %s)\n",
			userID, up.OverallCompletion*100,
			up.MasteredItemCount, up.TotalItemCount,
			up.LastUpdate.Format("2006-01-02 15:04"))

		catalog := curriculum.Default()
		fmt.Printf("\n%-16s  %-24s  %10s  %6s\n", "Path", "Name", "Completion", "Weight")
		fmt.Println(strings.Repeat("─", 64))
		for _, p := range catalog.Paths() {
			fmt.Printf("%-16s  %-24s  %9.1f%%  %6.1f\n",
				p.ID, p.Name, up.PerPathCompletion[p.ID]*100, p.Weight)
		}

		sessions, _ := cmd.Flags().GetInt("sessions")
		if sessions > 0 {
			return showRecentSessions(ctx, svc, userID, sessions)
		}
		return nil
	},
}

func showPathProgress(ctx context.Context, svc *app.Service, userID, pathID string) error {
	pp, err := svc.PathProgress(ctx, userID, pathID)
	if err != nil {
		return err
	}

	fmt.Printf("%s on %s: %.1f%% complete, %d mastered\n",
		userID, pp.PathID, pp.Completion*100, pp.MasteredCount)

	type row struct {
		id string
		st mastery.ItemState
	}
	rows := make([]row, 0, len(pp.PerItemState))
	for id, st := range pp.PerItemState {
		rows = append(rows, row{id: id, st: st})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].st.Position < rows[j].st.Position })

	fmt.Printf("\n%3s  %-20s  %8s  %8s  %s\n", "#", "Item", "Mastery", "Attempts", "Band")
	fmt.Println(strings.Repeat("─", 56))
	for _, r := range rows {
		band := mastery.LevelBand(r.st.MasteryLevel, r.st.AttemptCount)
		fmt.Printf("%3d  %-20s  %8.3f  %8d  %s\n",
			r.st.Position+1, r.id, r.st.MasteryLevel, r.st.AttemptCount, band)
	}
	return nil
}

func showRecentSessions(ctx context.Context, svc *app.Service, userID string, limit int) error {
	records, err := svc.History(ctx, userID, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("\nNo sessions recorded.")
		return nil
	}

	fmt.Printf("\n%-16s  %-20s  %6s  %6s  %6s\n", "When", "Item", "Points", "Bonus", "Streak")
	fmt.Println(strings.Repeat("─", 64))
	for _, r := range records {
		fmt.Printf("%-16s  %-20s  %6d  %5.1fx  %6d\n",
			r.Timestamp.Format("2006-01-02 15:04"), r.ContentID,
			r.TotalPoints, r.BonusMultiplier, r.DayStreak)
	}
	return nil
}

func init() {
	progressCmd.Flags().Int("sessions", 0, "Also list the N most recent sessions")
}

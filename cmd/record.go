package cmd

import (
	"fmt"
	"time"

	"github.com/oselot/stitchpath/internal/app"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <user-id> <path-id> <content-id>",
	Short: "Score a completed session and fold it into mastery",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ftc, _ := cmd.Flags().GetInt("ftc")
		ec, _ := cmd.Flags().GetInt("ec")
		incorrect, _ := cmd.Flags().GetInt("incorrect")
		durationMs, _ := cmd.Flags().GetInt("duration-ms")
		at, _ := cmd.Flags().GetString("at")

		in := app.SessionInput{
			UserID:         args[0],
			PathID:         args[1],
			ContentID:      args[2],
			FTCCount:       ftc,
			ECCount:        ec,
			IncorrectCount: incorrect,
			DurationMs:     durationMs,
		}
		if at != "" {
			ts, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("parse --at: %w", err)
			}
			in.CompletedAt = ts
		}

		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		out, err := svc.CompleteSession(cmd.Context(), in)
		if err != nil {
			return err
		}

		fmt.Printf("Session %s: %s on %s/%s\n",
			out.SessionID, in.UserID, in.PathID, in.ContentID)
		fmt.Printf("  Points     %d base x %.1f bonus = %d\n",
			out.Score.BasePoints, out.Score.BonusMultiplier, out.Score.TotalPoints)
		fmt.Printf("  Accuracy   %.2f   Consistency %.2f   Speed %.2f\n",
			out.Score.Accuracy, out.Score.Consistency, out.Score.Speed)
		fmt.Printf("  Blink      %.0f ms   Evolution %.0f\n",
			out.Score.BlinkSpeedMs, out.Score.Evolution)
		fmt.Printf("  Mastery    %.3f (%s)   next review %s\n",
			out.Mastery.MasteryLevel, out.CurrentBand,
			out.Mastery.NextReviewTime.Format("2006-01-02"))
		fmt.Printf("  Streak     %d day(s)\n", out.DayStreak)
		if out.BandChanged() {
			fmt.Printf("  Band       %s -> %s\n", out.PreviousBand, out.CurrentBand)
		}
		fmt.Printf("  Overall    %.1f%% complete, %d/%d items mastered\n",
			out.Progress.OverallCompletion*100,
			out.Progress.MasteredItemCount, out.Progress.TotalItemCount)
		return nil
	},
}

func init() {
	recordCmd.Flags().Int("ftc", 0, "Questions answered correctly on the first try")
	recordCmd.Flags().Int("ec", 0, "Questions answered correctly after retries")
	recordCmd.Flags().Int("incorrect", 0, "Questions never answered correctly")
	recordCmd.Flags().Int("duration-ms", 0, "Session duration in milliseconds")
	recordCmd.Flags().String("at", "", "Completion timestamp (RFC 3339, default now)")
	_ = recordCmd.MarkFlagRequired("duration-ms")
}

package cmd

import (
	"fmt"

	"github.com/oselot/stitchpath/internal/scoring"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a session without recording it",
	Long: "Runs the session scorer on raw tallies and prints the breakdown.\n" +
		"Nothing is stored; use record to fold a session into mastery.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ftc, _ := cmd.Flags().GetInt("ftc")
		ec, _ := cmd.Flags().GetInt("ec")
		incorrect, _ := cmd.Flags().GetInt("incorrect")
		durationMs, _ := cmd.Flags().GetInt("duration-ms")
		streak, _ := cmd.Flags().GetInt("streak")

		score, err := scoring.Score(scoring.SessionData{
			QuestionCount:  ftc + ec + incorrect,
			FTCCount:       ftc,
			ECCount:        ec,
			IncorrectCount: incorrect,
			DurationMs:     durationMs,
			DayStreak:      streak,
		})
		if err != nil {
			return err
		}

		fmt.Printf("FTC points  %d\n", score.FTCPoints)
		fmt.Printf("EC points   %d\n", score.ECPoints)
		fmt.Printf("Base        %d\n", score.BasePoints)
		fmt.Printf("Accuracy    %.2f\n", score.Accuracy)
		fmt.Printf("Consistency %.2f\n", score.Consistency)
		fmt.Printf("Speed       %.2f\n", score.Speed)
		fmt.Printf("Blink       %.0f ms\n", score.BlinkSpeedMs)
		fmt.Printf("Bonus       x%.1f\n", score.BonusMultiplier)
		fmt.Printf("Total       %d\n", score.TotalPoints)
		fmt.Printf("Evolution   %.0f\n", score.Evolution)
		return nil
	},
}

func init() {
	scoreCmd.Flags().Int("ftc", 0, "Questions answered correctly on the first try")
	scoreCmd.Flags().Int("ec", 0, "Questions answered correctly after retries")
	scoreCmd.Flags().Int("incorrect", 0, "Questions never answered correctly")
	scoreCmd.Flags().Int("duration-ms", 0, "Session duration in milliseconds")
	scoreCmd.Flags().Int("streak", 0, "Consecutive practice days including today")
	_ = scoreCmd.MarkFlagRequired("duration-ms")
}

package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// statsCmd summarizes scheduling state, streaks and the past week's sessions.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show scheduling statistics and practice streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		deps, cleanup, err := buildDeps()
		if err != nil {
			return err
		}
		defer cleanup()

		userID := userIDFromFlags(cmd)

		stats, err := deps.scheduling.GetStatistics(ctx, userID)
		if err != nil {
			return err
		}
		cmd.Println("scheduling:")
		cmd.Printf("  items total      %d\n", stats.TotalItems)
		cmd.Printf("  items due        %d\n", stats.DueItems)
		cmd.Printf("  items graduated  %d\n", stats.GraduatedItems)
		cmd.Printf("  total lapses     %d\n", stats.TotalLapses)
		cmd.Printf("  avg ease factor  %.2f\n", stats.AverageEaseFactor)
		cmd.Printf("  avg accuracy     %.1f%%\n", stats.AverageAccuracy)

		streaks, err := deps.streaks.GetStreaks(ctx, userID)
		if err != nil {
			return err
		}
		cmd.Println("streaks:")
		cmd.Printf("  current  %d days\n", streaks.CurrentStreak)
		cmd.Printf("  best     %d days\n", streaks.BestStreak)
		if streaks.LastPracticeDate != nil {
			cmd.Printf("  last practice  %s\n", streaks.LastPracticeDate.Format("2006-01-02"))
		}
		if streaks.NextMilestone > 0 {
			cmd.Printf("  next milestone %d days (%.0f%% there)\n", streaks.NextMilestone, streaks.MilestoneProgress)
		}

		// Past-week completions come straight from the repository; no usecase
		// aggregates this view.
		now := time.Now()
		recent, err := deps.sessions.ListByDateRange(ctx, userID, now.AddDate(0, 0, -7), now)
		if err != nil {
			return err
		}
		cmd.Printf("sessions completed in the last 7 days: %d\n", len(recent))
		for _, session := range recent {
			accuracy := int32(0)
			if session.Results != nil {
				accuracy = session.Results.Accuracy
			}
			cmd.Printf("  #%-5d %s  %d/%d answered, %d%% accuracy\n",
				session.ID,
				session.Execution.CompletedAt.Format("2006-01-02"),
				session.Execution.CompletedCount,
				session.Config.TargetCount,
				accuracy,
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

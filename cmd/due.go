package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eslsoft/drillnet/internal/entity"
)

// dueCmd prints the learner's review queue and the upcoming review load.
var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show due reviews and the upcoming review load",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt32("limit")
		forecastDays, _ := cmd.Flags().GetInt32("forecast")

		deps, cleanup, err := buildDeps()
		if err != nil {
			return err
		}
		defer cleanup()

		userID := userIDFromFlags(cmd)

		if limit > 0 {
			queue, err := deps.scheduling.GetNextTasks(ctx, userID, limit)
			if err != nil {
				return err
			}
			printQueue(cmd, queue)
		} else {
			queue, err := deps.scheduling.GetTasksDue(ctx, userID)
			if err != nil {
				return err
			}
			printQueue(cmd, queue)
		}

		if forecastDays > 0 {
			forecast, err := deps.scheduling.GetReviewSchedule(ctx, userID, forecastDays)
			if err != nil {
				return err
			}
			cmd.Println()
			cmd.Println("upcoming review load:")
			for _, day := range forecast {
				cmd.Printf("  %s  %3d items  ~%dm%02ds\n",
					day.Date.Format("2006-01-02"),
					day.ItemCount,
					day.EstimatedSeconds/60,
					day.EstimatedSeconds%60,
				)
			}
		}
		return nil
	},
}

func printQueue(cmd *cobra.Command, queue []entity.ReviewQueueEntry) {
	if len(queue) == 0 {
		cmd.Println("no reviews due")
		return
	}
	cmd.Printf("%d reviews due:\n", len(queue))
	for _, entry := range queue {
		cmd.Printf("  task %-6d lapses=%d  due %s  %s\n",
			entry.Task.ID,
			entry.Item.Metadata.LapseCount,
			entry.Item.Schedule.NextReview.Format("2006-01-02"),
			entry.Task.Prompt,
		)
	}
}

func init() {
	rootCmd.AddCommand(dueCmd)

	dueCmd.Flags().Int32P("limit", "n", 0, "cap the number of due entries shown (0 shows all)")
	dueCmd.Flags().Int32("forecast", 0, "also project review load for the next N days")
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drillnet",
	Short: "Adaptive spaced-repetition practice scheduler",
	Long: `drillnet schedules language-learning practice with the SM-2
spaced-repetition algorithm: it tracks per-task review state, composes
practice sessions from due reviews and unseen tasks, and records answers
to drive the next review date.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int64("user", 1, "learner id commands operate on")
}

func userIDFromFlags(cmd *cobra.Command) int64 {
	id, _ := cmd.Flags().GetInt64("user")
	return id
}

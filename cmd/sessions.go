package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eslsoft/drillnet/internal/repository"
)

// sessionsCmd lists practice sessions with AIP-160 style filtering, e.g.
//
//	drillnet sessions --filter "status == 'completed' && topic_id == 3"
//	drillnet sessions --filter "status in ['active', 'paused']" --order-by "completed_at desc"
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		orderBy, _ := cmd.Flags().GetString("order-by")
		pageNo, _ := cmd.Flags().GetInt32("page")
		pageSize, _ := cmd.Flags().GetInt32("page-size")

		deps, cleanup, err := buildDeps()
		if err != nil {
			return err
		}
		defer cleanup()

		query := &repository.ListSessionQuery{
			Pagination:  repository.Pagination{PageNo: pageNo, PageSize: pageSize},
			FilterOrder: repository.FilterOrder{Filter: filter, OrderBy: orderBy},
			UserID:      userIDFromFlags(cmd),
		}

		sessions, total, err := deps.sessionUC.ListSessions(cmd.Context(), query)
		if err != nil {
			return err
		}

		cmd.Printf("%d sessions (showing %d):\n", total, len(sessions))
		for _, session := range sessions {
			cmd.Printf("  #%-5d %-9s %d/%d answered  created %s\n",
				session.ID,
				session.Execution.Status,
				session.Execution.CompletedCount,
				session.Config.TargetCount,
				session.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.Flags().String("filter", "", "filter expression (status, topic_id, created_at, completed_at)")
	sessionsCmd.Flags().String("order-by", "", "order key with optional direction, e.g. 'created_at desc'")
	sessionsCmd.Flags().Int32("page", 1, "page number")
	sessionsCmd.Flags().Int32("page-size", 20, "page size")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eslsoft/drillnet/internal/infrastructure/config"
	"github.com/eslsoft/drillnet/internal/infrastructure/database"
)

// dbInitCmd creates or migrates the database schema.
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Create or migrate the database schema",
	Long:  "Runs the ent schema migration against the configured database. Safe to re-run; existing data is preserved.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		client, cleanup, err := database.NewEntClient(cfg)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer cleanup()

		if err := client.Schema.Create(ctx); err != nil {
			return fmt.Errorf("run schema migration: %w", err)
		}

		cmd.Println("schema migration complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
}

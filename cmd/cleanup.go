package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/starfolio/internal/analytics"
)

var cleanupRetention time.Duration

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete analytics records older than the retention period",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		retention := cfg.Analytics.Retention
		if cleanupRetention > 0 {
			retention = cleanupRetention
		}

		store, err := analytics.Open(cfg.Analytics.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		return cleanupStore(ctx, cmd, store, retention, cfg.Analytics.DBPath)
	},
}

func cleanupStore(ctx context.Context, cmd *cobra.Command, store *analytics.Store, retention time.Duration, path string) error {
	removed, err := analytics.NewCleaner(store, retention, 0).Run(ctx)
	if err != nil {
		return fmt.Errorf("cleanup of %s failed: %w", path, err)
	}
	printf(cmd, "removed %d records older than %s from %s\n", removed, retention, path)
	return nil
}

func init() {
	cleanupCmd.Flags().DurationVar(&cleanupRetention, "retention", 0, "Override ANALYTICS_RETENTION for this run")
	rootCmd.AddCommand(cleanupCmd)
}

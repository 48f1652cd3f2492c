package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/highshiftmedia/crmhub/internal/config"
	"github.com/highshiftmedia/crmhub/internal/insights"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate AI business insights from the current data",
	Args:  cobra.NoArgs,
	RunE:  runInsights,
}

func init() {
	insightsCmd.Flags().StringVar(&dbPathOverride, "db", "",
		"Database path (overrides config and CRMHUB_DB_PATH)")
}

func runInsights(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, db, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	advisor := insights.NewOpenAI(cfg.Insights.APIKey, cfg.Insights.Model)
	gen := insights.NewGenerator(advisor)

	text, err := gen.Generate(ctx, data)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

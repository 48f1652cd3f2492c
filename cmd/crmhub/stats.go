package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/highshiftmedia/crmhub/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection counts and key business metrics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&dbPathOverride, "db", "",
		"Database path (overrides config and CRMHUB_DB_PATH)")
	statsCmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Output in JSON format")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	data, db, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	counts := data.Counts()
	dashboard := report.BuildDashboard(data)

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"counts":    counts,
			"dashboard": dashboard,
		})
	}

	out := cmd.OutOrStdout()
	w := newTabWriter(out)
	fmt.Fprintln(w, "COLLECTION\tRECORDS")
	fmt.Fprintf(w, "clients\t%d\n", counts.Clients)
	fmt.Fprintf(w, "projects\t%d\n", counts.Projects)
	fmt.Fprintf(w, "tasks\t%d\n", counts.Tasks)
	fmt.Fprintf(w, "employees\t%d\n", counts.Employees)
	fmt.Fprintf(w, "expenses\t%d\n", counts.Expenses)
	fmt.Fprintf(w, "campaigns\t%d\n", counts.Campaigns)
	fmt.Fprintf(w, "budgets\t%d\n", counts.Budgets)
	fmt.Fprintf(w, "opportunities\t%d\n", counts.Opportunities)
	fmt.Fprintf(w, "workflows\t%d\n", counts.Workflows)
	fmt.Fprintf(w, "messages\t%d\n", counts.Messages)
	fmt.Fprintf(w, "reviews\t%d\n", counts.Reviews)
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Pipeline Value:  $%.2f\n", dashboard.PipelineValue)
	fmt.Fprintf(out, "Closed Revenue:  $%.2f\n", dashboard.ClosedRevenue)
	fmt.Fprintf(out, "Conversion Rate: %.1f%%\n", dashboard.ConversionRate)
	fmt.Fprintf(out, "Ad Spend:        $%.2f\n", dashboard.AdSpend)
	fmt.Fprintf(out, "Unread Messages: %d\n", dashboard.UnreadMessages)

	return nil
}

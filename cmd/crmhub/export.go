package main

import (
	"context"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all collections as JSON",
	Long:  "Dump every collection from the database as a single JSON document, suitable for backup or inspection.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&dbPathOverride, "db", "",
		"Database path (overrides config and CRMHUB_DB_PATH)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	data, db, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return printJSON(cmd.OutOrStdout(), data)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/highshiftmedia/crmhub/internal/config"
	"github.com/highshiftmedia/crmhub/internal/store"
	"github.com/highshiftmedia/crmhub/internal/types"
)

var (
	dbPathOverride string
	jsonOutput     bool
)

// resolveStore opens the SQLite store from config with optional --db override.
func resolveStore() (*store.SQLiteStore, error) {
	path := dbPathOverride
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		path = cfg.Database.Path
	}

	return store.NewSQLiteStore(path)
}

// loadDataset opens the store and loads the full dataset.
// The caller owns the returned store and must Close it.
func loadDataset(ctx context.Context) (*types.Dataset, *store.SQLiteStore, error) {
	db, err := resolveStore()
	if err != nil {
		return nil, nil, err
	}

	data, err := db.LoadAll(ctx)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load collections: %w", err)
	}
	return data, db, nil
}

// printJSON marshals v to JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTabWriter returns a configured tabwriter for aligned columns.
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

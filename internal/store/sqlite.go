package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/highshiftmedia/crmhub/internal/types"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists the eleven collections as JSON documents in a
// single key/value table. Each row holds the complete ordered sequence
// for one collection, so a load reconstructs records with identical
// fields and order.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Compile-time interface check
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at dbPath, applies
// pragmas, and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Ensure parent directory exists
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := enablePragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable pragmas: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

// enablePragmas sets SQLite pragmas for performance and safety.
func enablePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadAll reads every persisted collection. Rows that are missing or fail
// to decode fall back to the empty default for that collection; the error
// return is reserved for the storage read itself failing.
func (s *SQLiteStore) LoadAll(ctx context.Context) (*types.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, data FROM collections`)
	if err != nil {
		return nil, fmt.Errorf("read collections: %w", err)
	}
	defer rows.Close()

	raw := make(map[string][]byte, len(types.CollectionKeys))
	for rows.Next() {
		var key string
		var data []byte
		if err := rows.Scan(&key, &data); err != nil {
			return nil, fmt.Errorf("scan collection row: %w", err)
		}
		raw[key] = data
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collection rows: %w", err)
	}

	d := &types.Dataset{}
	d.Clients = decodeCollection[types.Client](raw, types.KeyClients)
	d.Projects = decodeCollection[types.Project](raw, types.KeyProjects)
	d.Tasks = decodeCollection[types.Task](raw, types.KeyTasks)
	d.Employees = decodeCollection[types.Employee](raw, types.KeyEmployees)
	d.Expenses = decodeCollection[types.Expense](raw, types.KeyExpenses)
	d.Campaigns = decodeCollection[types.MarketingCampaign](raw, types.KeyCampaigns)
	d.Budgets = decodeCollection[types.Budget](raw, types.KeyBudgets)
	d.Opportunities = decodeCollection[types.Opportunity](raw, types.KeyOpportunities)
	d.Workflows = decodeCollection[types.Workflow](raw, types.KeyWorkflows)
	d.Messages = decodeCollection[types.Message](raw, types.KeyMessages)
	d.Reviews = decodeCollection[types.Review](raw, types.KeyReviews)
	return d, nil
}

// decodeCollection unmarshals one collection, falling back to the empty
// default on missing or corrupt data.
func decodeCollection[T any](raw map[string][]byte, key string) []T {
	data, ok := raw[key]
	if !ok || len(data) == 0 {
		return []T{}
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Warn("collection data corrupt, using default",
			"key", key,
			"error", err,
		)
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}

// SaveAll serializes all eleven collections and upserts them in one
// transaction. Every save covers the full set of collections, changed or
// not, so persisted state is never stale after a commit.
func (s *SQLiteStore) SaveAll(ctx context.Context, data *types.Dataset) error {
	entries := []struct {
		key   string
		value any
	}{
		{types.KeyClients, data.Clients},
		{types.KeyProjects, data.Projects},
		{types.KeyTasks, data.Tasks},
		{types.KeyEmployees, data.Employees},
		{types.KeyExpenses, data.Expenses},
		{types.KeyCampaigns, data.Campaigns},
		{types.KeyBudgets, data.Budgets},
		{types.KeyOpportunities, data.Opportunities},
		{types.KeyWorkflows, data.Workflows},
		{types.KeyMessages, data.Messages},
		{types.KeyReviews, data.Reviews},
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range entries {
		encoded, err := json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.key, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO collections (key, data, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				data = excluded.data,
				updated_at = excluded.updated_at
		`, e.key, string(encoded), now)
		if err != nil {
			return fmt.Errorf("write %s: %w", e.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save transaction: %w", err)
	}
	return nil
}

// GenerateSnapshot writes a consistent copy of the database next to the
// main file using VACUUM INTO.
func (s *SQLiteStore) GenerateSnapshot(ctx context.Context) error {
	if s.path == ":memory:" {
		return ErrSnapshotInMemory
	}

	target := s.snapshotPath()
	tmp := target + ".tmp"

	// VACUUM INTO refuses to overwrite, so build to a temp file and rename.
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale snapshot temp: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `VACUUM INTO ?`, tmp); err != nil {
		return fmt.Errorf("vacuum into snapshot: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	return nil
}

// GetSnapshotPath returns the path of the most recent snapshot.
func (s *SQLiteStore) GetSnapshotPath(ctx context.Context) (string, error) {
	if s.path == ":memory:" {
		return "", ErrSnapshotInMemory
	}
	target := s.snapshotPath()
	if _, err := os.Stat(target); err != nil {
		if os.IsNotExist(err) {
			return "", ErrSnapshotUnavailable
		}
		return "", fmt.Errorf("stat snapshot: %w", err)
	}
	return target, nil
}

func (s *SQLiteStore) snapshotPath() string {
	return s.path + ".snapshot"
}

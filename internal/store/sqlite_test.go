package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/highshiftmedia/crmhub/internal/types"
)

func TestNewSQLiteStore(t *testing.T) {
	db, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
}

func TestLoadAll_EmptyDatabase(t *testing.T) {
	db, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	data, err := db.LoadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if data.Clients == nil || len(data.Clients) != 0 {
		t.Errorf("expected empty non-nil clients, got %v", data.Clients)
	}
	if data.Reviews == nil || len(data.Reviews) != 0 {
		t.Errorf("expected empty non-nil reviews, got %v", data.Reviews)
	}
}

func TestSaveAll_RoundTrip(t *testing.T) {
	db, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	in := &types.Dataset{
		Clients: []types.Client{
			{ID: "c1", Name: "Acme", Contact: "jo@acme.com", Industry: "Retail",
				ContractValue: 5000, StartDate: "2026-01-15", Status: types.ClientOnboarding},
		},
		Tasks: []types.Task{
			{ID: "t2", Title: "Newer", Priority: types.PriorityHigh, Status: types.TaskToDo, DueDate: "2026-02-01"},
			{ID: "t1", Title: "Older", Priority: types.PriorityLow, Status: types.TaskDone, DueDate: "2026-01-01"},
		},
		Opportunities: []types.Opportunity{
			{ID: "o1", Name: "Big Deal", Value: 150, Stage: types.StageProposal, Source: "Direct Entry"},
		},
	}

	if err := db.SaveAll(ctx, in); err != nil {
		t.Fatal(err)
	}

	out, err := db.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(out.Clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(out.Clients))
	}
	if out.Clients[0] != in.Clients[0] {
		t.Errorf("client round-trip mismatch: got %+v, want %+v", out.Clients[0], in.Clients[0])
	}

	// Order within a collection must survive a persistence cycle.
	if len(out.Tasks) != 2 || out.Tasks[0].ID != "t2" || out.Tasks[1].ID != "t1" {
		t.Errorf("task order not preserved: got %+v", out.Tasks)
	}

	if len(out.Opportunities) != 1 || out.Opportunities[0].Stage != types.StageProposal {
		t.Errorf("opportunity round-trip mismatch: got %+v", out.Opportunities)
	}

	// Collections never written must come back empty, not nil.
	if out.Budgets == nil || len(out.Budgets) != 0 {
		t.Errorf("expected empty budgets, got %v", out.Budgets)
	}
}

func TestSaveAll_OverwritesPreviousState(t *testing.T) {
	db, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	first := &types.Dataset{
		Expenses: []types.Expense{
			{ID: "e1", Category: types.ExpenseSoftware, Amount: 49, Date: "2026-03-01", Description: "CRM seat"},
			{ID: "e2", Category: types.ExpenseMarketing, Amount: 200, Date: "2026-03-02", Description: "Ads"},
		},
	}
	if err := db.SaveAll(ctx, first); err != nil {
		t.Fatal(err)
	}

	second := &types.Dataset{
		Expenses: []types.Expense{
			{ID: "e2", Category: types.ExpenseMarketing, Amount: 200, Date: "2026-03-02", Description: "Ads"},
		},
	}
	if err := db.SaveAll(ctx, second); err != nil {
		t.Fatal(err)
	}

	out, err := db.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Expenses) != 1 || out.Expenses[0].ID != "e2" {
		t.Errorf("expected only e2 after overwrite, got %+v", out.Expenses)
	}
}

func TestLoadAll_CorruptCollectionFallsBackToDefault(t *testing.T) {
	db, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	in := &types.Dataset{
		Clients: []types.Client{{ID: "c1", Name: "Acme"}},
		Tasks:   []types.Task{{ID: "t1", Title: "Valid"}},
	}
	if err := db.SaveAll(ctx, in); err != nil {
		t.Fatal(err)
	}

	// Corrupt one collection directly.
	_, err = db.db.ExecContext(ctx,
		`UPDATE collections SET data = '{not json' WHERE key = ?`, types.KeyClients)
	if err != nil {
		t.Fatal(err)
	}

	out, err := db.LoadAll(ctx)
	if err != nil {
		t.Fatalf("corrupt collection should not fail the load: %v", err)
	}

	if len(out.Clients) != 0 {
		t.Errorf("corrupt clients should decode to empty, got %+v", out.Clients)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].ID != "t1" {
		t.Errorf("intact tasks should still load, got %+v", out.Tasks)
	}
}

func TestGenerateSnapshot(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "crmhub.db")

	db, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.GetSnapshotPath(ctx); !errors.Is(err, ErrSnapshotUnavailable) {
		t.Errorf("expected ErrSnapshotUnavailable before first snapshot, got %v", err)
	}

	in := &types.Dataset{
		Clients: []types.Client{{ID: "c1", Name: "Acme"}},
	}
	if err := db.SaveAll(ctx, in); err != nil {
		t.Fatal(err)
	}

	if err := db.GenerateSnapshot(ctx); err != nil {
		t.Fatal(err)
	}

	path, err := db.GetSnapshotPath(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if path != dbPath+".snapshot" {
		t.Errorf("unexpected snapshot path %q", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("snapshot file is empty")
	}

	// The snapshot must be a readable database with the saved data.
	snap, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer snap.Close()

	out, err := snap.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Clients) != 1 || out.Clients[0].Name != "Acme" {
		t.Errorf("snapshot contents mismatch: %+v", out.Clients)
	}
}

func TestGenerateSnapshot_InMemory(t *testing.T) {
	db, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if err := db.GenerateSnapshot(context.Background()); !errors.Is(err, ErrSnapshotInMemory) {
		t.Errorf("expected ErrSnapshotInMemory, got %v", err)
	}
	if _, err := db.GetSnapshotPath(context.Background()); !errors.Is(err, ErrSnapshotInMemory) {
		t.Errorf("expected ErrSnapshotInMemory, got %v", err)
	}
}

package store

import (
	"context"

	"github.com/highshiftmedia/crmhub/internal/types"
)

// Store defines the interface contract for collection persistence.
//
// LoadAll reads every collection; a missing or undecodable collection
// degrades to its empty default rather than failing the load. SaveAll
// writes all eleven collections in a single transaction, so a committed
// save is never observably partial.
type Store interface {
	LoadAll(ctx context.Context) (*types.Dataset, error)
	SaveAll(ctx context.Context, data *types.Dataset) error
	GenerateSnapshot(ctx context.Context) error
	GetSnapshotPath(ctx context.Context) (string, error)
	Close() error
}

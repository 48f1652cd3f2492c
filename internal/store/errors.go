package store

import "errors"

var (
	ErrSnapshotInMemory    = errors.New("cannot snapshot an in-memory database")
	ErrSnapshotUnavailable = errors.New("no snapshot has been generated")
)

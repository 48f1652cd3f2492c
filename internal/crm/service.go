// Package crm owns the in-memory record collections and the creation
// workflows that mutate them. Every committed mutation persists the
// complete set of collections, so storage is never observably stale
// after a write returns.
package crm

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/highshiftmedia/crmhub/internal/store"
	"github.com/highshiftmedia/crmhub/internal/types"
	"github.com/oklog/ulid/v2"
)

// DefaultDemoConnectDelay is the artificial delay before the demo channel
// connect delivers its canned message. Presentation pacing only.
const DefaultDemoConnectDelay = 2 * time.Second

// Service is the record store: it owns the eleven collections, applies
// creation workflows, and writes back to persistent storage on every
// change. A write failure leaves the in-memory state authoritative for
// the rest of the session.
type Service struct {
	mu    sync.Mutex
	data  *types.Dataset
	store store.Store

	newID     func() string
	now       func() time.Time
	demoDelay time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator replaces the record id generator. Tests install a
// deterministic counter here.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

// WithClock replaces the time source used for date defaults.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithDemoConnectDelay overrides the demo connect delay.
func WithDemoConnectDelay(d time.Duration) Option {
	return func(s *Service) { s.demoDelay = d }
}

// NewService loads all collections from st and returns a ready service.
// A load failure is not fatal: the service starts from empty defaults and
// logs the degradation.
func NewService(ctx context.Context, st store.Store, opts ...Option) *Service {
	s := &Service{
		store:     st,
		newID:     func() string { return ulid.Make().String() },
		now:       time.Now,
		demoDelay: DefaultDemoConnectDelay,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := st.LoadAll(ctx)
	if err != nil {
		slog.Warn("loading persisted collections failed, starting empty",
			"error", err,
		)
		data = &types.Dataset{}
	}
	s.data = data
	return s
}

// Snapshot returns a copy of all collections.
func (s *Service) Snapshot() *types.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Counts returns per-collection record counts.
func (s *Service) Counts() types.Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Counts()
}

// persist writes all collections back to storage. Best-effort: a failure
// is logged and the in-memory state remains authoritative. Callers must
// hold s.mu.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.SaveAll(ctx, s.data); err != nil {
		slog.Warn("persisting collections failed, continuing in memory",
			"error", err,
		)
	}
}

// today formats the current date the way the record dates are stored.
func (s *Service) today() string {
	return s.now().UTC().Format("2006-01-02")
}

// Package store implements the read-through/write-through record store:
// the database is the source of truth, Redis mirrors full record sets as
// JSON payloads, and built-in seed data is the last fallback. Reads never
// fail; writes land locally no matter what and report remote trouble as a
// degradation, not an error.
package store

import (
	"context"
	"encoding/json"
	"sort"

	"go.uber.org/zap"

	errs "github.com/minumaeng82-netizen/dasuDashboard/pkg/errors"
)

// Record is any persistable record kind.
type Record interface {
	RecordID() string
}

// RemoteOps is the database-facing side of a record kind, implemented by
// the repository layer.
type RemoteOps[T Record] interface {
	FetchAll(ctx context.Context) ([]T, error)
	Upsert(ctx context.Context, record T) error
	Delete(ctx context.Context, id string) error
}

// Cache is the local mirror, keyed by record kind. *kvcache.Client
// satisfies it; a nil client degrades every call to a miss or no-op.
type Cache interface {
	GetRecords(ctx context.Context, kind string) (string, bool)
	SetRecords(ctx context.Context, kind, payload string)
	DropRecords(ctx context.Context, kind string)
}

// Store reconciles one record kind across database, cache and seed data.
type Store[T Record] struct {
	kind   string
	remote RemoteOps[T]
	cache  Cache
	seed   func() []T
	less   func(a, b T) bool
	logger *zap.Logger
}

// New builds a store for one record kind. less fixes the kind's sort order
// and is applied to every set the store hands out; seed may return nil for
// kinds with no built-in data.
func New[T Record](kind string, remote RemoteOps[T], cache Cache, seed func() []T, less func(a, b T) bool, logger *zap.Logger) *Store[T] {
	return &Store[T]{
		kind:   kind,
		remote: remote,
		cache:  cache,
		seed:   seed,
		less:   less,
		logger: logger,
	}
}

// FetchAll returns the current record set. The database result wins and
// refreshes the cache; on database failure the cached set is served; with
// neither, the seed set is served and written to the cache so the next
// read hits it. FetchAll never returns an error.
func (s *Store[T]) FetchAll(ctx context.Context) []T {
	items, err := s.remote.FetchAll(ctx)
	if err == nil {
		s.sortSet(items)
		s.writeCache(ctx, items)
		return items
	}
	s.logger.Warn("remote fetch failed, serving local data",
		zap.String("kind", s.kind), zap.Error(err))

	if items, ok := s.readCache(ctx); ok {
		return items
	}

	items = s.seedSet()
	s.writeCache(ctx, items)
	return items
}

// Upsert applies an insert-or-replace by record ID. The cached set is
// updated unconditionally; if the database write then fails, the local
// result stands and ErrRemoteDegraded is returned alongside it so the
// caller can attach a warning. Last writer wins, local wins on conflict.
func (s *Store[T]) Upsert(ctx context.Context, record T) (T, error) {
	items, ok := s.readCache(ctx)
	if !ok {
		items = s.seedSet()
	}

	replaced := false
	for i := range items {
		if items[i].RecordID() == record.RecordID() {
			items[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, record)
	}
	s.sortSet(items)
	s.writeCache(ctx, items)

	if err := s.remote.Upsert(ctx, record); err != nil {
		s.logger.Warn("remote upsert failed, local write kept",
			zap.String("kind", s.kind), zap.String("id", record.RecordID()), zap.Error(err))
		return record, errs.ErrRemoteDegraded
	}
	return record, nil
}

// Delete removes a record by ID from the cached set and the database.
// Like Upsert, the local removal is never rolled back.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if items, ok := s.readCache(ctx); ok {
		kept := items[:0]
		for _, it := range items {
			if it.RecordID() != id {
				kept = append(kept, it)
			}
		}
		s.writeCache(ctx, kept)
	}

	if err := s.remote.Delete(ctx, id); err != nil {
		s.logger.Warn("remote delete failed, local removal kept",
			zap.String("kind", s.kind), zap.String("id", id), zap.Error(err))
		return errs.ErrRemoteDegraded
	}
	return nil
}

// readCache loads and decodes the cached set. A payload that fails to
// decode is dropped and treated as a miss, never surfaced to the caller.
func (s *Store[T]) readCache(ctx context.Context) ([]T, bool) {
	payload, ok := s.cache.GetRecords(ctx, s.kind)
	if !ok {
		return nil, false
	}
	var items []T
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		s.logger.Warn("corrupt cache payload discarded",
			zap.String("kind", s.kind), zap.Error(err))
		s.cache.DropRecords(ctx, s.kind)
		return nil, false
	}
	return items, true
}

func (s *Store[T]) writeCache(ctx context.Context, items []T) {
	payload, err := json.Marshal(items)
	if err != nil {
		s.logger.Warn("cache encode failed", zap.String("kind", s.kind), zap.Error(err))
		return
	}
	s.cache.SetRecords(ctx, s.kind, string(payload))
}

func (s *Store[T]) seedSet() []T {
	if s.seed == nil {
		return nil
	}
	items := s.seed()
	s.sortSet(items)
	return items
}

func (s *Store[T]) sortSet(items []T) {
	if s.less == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return s.less(items[i], items[j]) })
}

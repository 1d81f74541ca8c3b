package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/store"
)

// ── in-memory remotes and cache for service tests ──

var errRemoteDown = errors.New("remote unreachable")

type fakeRemote[T store.Record] struct {
	items []T
	down  bool
}

func (r *fakeRemote[T]) FetchAll(_ context.Context) ([]T, error) {
	if r.down {
		return nil, errRemoteDown
	}
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeRemote[T]) Upsert(_ context.Context, rec T) error {
	if r.down {
		return errRemoteDown
	}
	for i := range r.items {
		if r.items[i].RecordID() == rec.RecordID() {
			r.items[i] = rec
			return nil
		}
	}
	r.items = append(r.items, rec)
	return nil
}

func (r *fakeRemote[T]) Delete(_ context.Context, id string) error {
	if r.down {
		return errRemoteDown
	}
	kept := r.items[:0]
	for _, it := range r.items {
		if it.RecordID() != id {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

type memCache struct {
	data map[string]string
}

func newMemCache() *memCache { return &memCache{data: make(map[string]string)} }

func (c *memCache) GetRecords(_ context.Context, kind string) (string, bool) {
	v, ok := c.data[kind]
	return v, ok
}
func (c *memCache) SetRecords(_ context.Context, kind, payload string) { c.data[kind] = payload }
func (c *memCache) DropRecords(_ context.Context, kind string)         { delete(c.data, kind) }

type testEnv struct {
	schedules *fakeRemote[model.Schedule]
	posts     *fakeRemote[model.TrainingPost]
	shortcuts *fakeRemote[model.Shortcut]
	users     *fakeRemote[model.User]
	stores    *Stores
}

func newTestEnv() *testEnv {
	env := &testEnv{
		schedules: &fakeRemote[model.Schedule]{},
		posts:     &fakeRemote[model.TrainingPost]{},
		shortcuts: &fakeRemote[model.Shortcut]{},
		users:     &fakeRemote[model.User]{},
	}
	cache := newMemCache()
	logger := zap.NewNop()

	env.stores = &Stores{
		Schedules: store.New[model.Schedule](model.KindSchedule, env.schedules, cache, nil,
			func(a, b model.Schedule) bool { return a.Date < b.Date }, logger),
		Posts: store.New[model.TrainingPost](model.KindTrainingPost, env.posts, cache, nil,
			func(a, b model.TrainingPost) bool { return a.Date > b.Date }, logger),
		Shortcuts: store.New[model.Shortcut](model.KindShortcut, env.shortcuts, cache, nil,
			func(a, b model.Shortcut) bool { return a.Label < b.Label }, logger),
		Users: store.New[model.User](model.KindUser, env.users, cache, nil,
			func(a, b model.User) bool { return a.Email < b.Email }, logger),
	}
	return env
}

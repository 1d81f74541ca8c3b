package store

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/seed"
	errs "github.com/minumaeng82-netizen/dasuDashboard/pkg/errors"
)

type fakeRemote struct {
	items []model.Schedule
	down  bool
	calls int
}

var errRemoteDown = errors.New("remote unreachable")

func (r *fakeRemote) FetchAll(ctx context.Context) ([]model.Schedule, error) {
	r.calls++
	if r.down {
		return nil, errRemoteDown
	}
	return r.items, nil
}

func (r *fakeRemote) Upsert(ctx context.Context, rec model.Schedule) error {
	if r.down {
		return errRemoteDown
	}
	for i := range r.items {
		if r.items[i].ScheduleID == rec.ScheduleID {
			r.items[i] = rec
			return nil
		}
	}
	r.items = append(r.items, rec)
	return nil
}

func (r *fakeRemote) Delete(ctx context.Context, id string) error {
	if r.down {
		return errRemoteDown
	}
	kept := r.items[:0]
	for _, it := range r.items {
		if it.ScheduleID != id {
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

func scheduleLess(a, b model.Schedule) bool { return a.Date < b.Date }

func newTestStore(remote *fakeRemote, cache Cache) *Store[model.Schedule] {
	return New(model.KindSchedule, remote, cache, seed.Schedules, scheduleLess, zap.NewNop())
}

func TestFetchAllRemoteWinsAndRefreshesCache(t *testing.T) {
	remote := &fakeRemote{items: []model.Schedule{
		{ScheduleID: "db-1", Title: "원격 일정", Date: "2026-03-10"},
	}}
	cache := newMemCache()
	cache.SetRecords(context.Background(), model.KindSchedule, `[{"id":"stale","title":"낡은 캐시"}]`)

	s := newTestStore(remote, cache)
	got := s.FetchAll(context.Background())

	if len(got) != 1 || got[0].ScheduleID != "db-1" {
		t.Fatalf("remote set should win, got %+v", got)
	}
	if payload, _ := cache.GetRecords(context.Background(), model.KindSchedule); payload == "" || payload == `[{"id":"stale","title":"낡은 캐시"}]` {
		t.Error("cache should be overwritten with the remote set")
	}
}

func TestFetchAllFallsBackToCache(t *testing.T) {
	healthy := &fakeRemote{items: []model.Schedule{
		{ScheduleID: "db-1", Title: "원격 일정", Date: "2026-03-10"},
	}}
	cache := newMemCache()
	s := newTestStore(healthy, cache)
	s.FetchAll(context.Background())

	healthy.down = true
	got := s.FetchAll(context.Background())
	if len(got) != 1 || got[0].ScheduleID != "db-1" {
		t.Fatalf("outage read should serve the cached set unchanged, got %+v", got)
	}
}

func TestFetchAllSeedsOnOutageWithEmptyCache(t *testing.T) {
	remote := &fakeRemote{down: true}
	cache := newMemCache()
	s := newTestStore(remote, cache)

	got := s.FetchAll(context.Background())
	if len(got) != 4 {
		t.Fatalf("seed fallback returned %d entries, want 4", len(got))
	}
	for _, rec := range got {
		if rec.Date < "2026-02-22" || rec.Date > "2026-02-24" {
			t.Errorf("seed entry %s has unexpected date %s", rec.ScheduleID, rec.Date)
		}
	}

	// following read must hit the now-populated cache, not reseed
	calls := remote.calls
	again := s.FetchAll(context.Background())
	if remote.calls != calls+1 {
		t.Fatal("every read still attempts the remote first")
	}
	if len(again) != 4 {
		t.Fatalf("cached seed read returned %d entries, want 4", len(again))
	}
}

func TestFetchAllDiscardsCorruptCache(t *testing.T) {
	remote := &fakeRemote{down: true}
	cache := newMemCache()
	cache.SetRecords(context.Background(), model.KindSchedule, "{not json")

	s := newTestStore(remote, cache)
	got := s.FetchAll(context.Background())
	if len(got) != 4 {
		t.Fatalf("corrupt cache should reseed, got %d entries", len(got))
	}
	if payload, ok := cache.GetRecords(context.Background(), model.KindSchedule); !ok || payload == "{not json" {
		t.Error("corrupt payload should be replaced by the seed set")
	}
}

func TestUpsertKeepsLocalWriteOnRemoteFailure(t *testing.T) {
	remote := &fakeRemote{down: true}
	cache := newMemCache()
	s := newTestStore(remote, cache)
	s.FetchAll(context.Background())

	rec := model.Schedule{ScheduleID: "new-1", Title: "학부모 상담주간", Date: "2026-03-16"}
	_, err := s.Upsert(context.Background(), rec)
	if !errors.Is(err, errs.ErrRemoteDegraded) {
		t.Fatalf("err = %v, want ErrRemoteDegraded", err)
	}

	got := s.FetchAll(context.Background())
	if len(got) != 5 {
		t.Fatalf("local write lost: %d entries, want 5", len(got))
	}
	found := false
	for _, it := range got {
		if it.ScheduleID == "new-1" {
			found = true
		}
	}
	if !found {
		t.Error("upserted record missing from cached set")
	}
}

func TestUpsertReplacesById(t *testing.T) {
	remote := &fakeRemote{}
	cache := newMemCache()
	s := newTestStore(remote, cache)

	first := model.Schedule{ScheduleID: "r1", Title: "초안", Date: "2026-03-10"}
	if _, err := s.Upsert(context.Background(), first); err != nil {
		t.Fatal(err)
	}
	edited := first
	edited.Title = "수정안"
	if _, err := s.Upsert(context.Background(), edited); err != nil {
		t.Fatal(err)
	}

	got := s.FetchAll(context.Background())
	count := 0
	for _, it := range got {
		if it.ScheduleID == "r1" {
			count++
			if it.Title != "수정안" {
				t.Errorf("title = %q, want 수정안", it.Title)
			}
		}
	}
	if count != 1 {
		t.Errorf("record r1 appears %d times, want 1", count)
	}
}

func TestDeleteDegradesOnRemoteFailure(t *testing.T) {
	healthy := &fakeRemote{items: []model.Schedule{
		{ScheduleID: "d1", Title: "삭제 대상", Date: "2026-03-10"},
	}}
	cache := newMemCache()
	s := newTestStore(healthy, cache)
	s.FetchAll(context.Background())

	healthy.down = true
	if err := s.Delete(context.Background(), "d1"); !errors.Is(err, errs.ErrRemoteDegraded) {
		t.Fatalf("err = %v, want ErrRemoteDegraded", err)
	}

	got := s.FetchAll(context.Background())
	for _, it := range got {
		if it.ScheduleID == "d1" {
			t.Error("record should be gone from the cached set")
		}
	}
}

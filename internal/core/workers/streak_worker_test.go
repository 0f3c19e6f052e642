package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

type stubRecordRepo struct {
	records []*domain.JournalRecord
	err     error
}

func (s *stubRecordRepo) ListByUser(ctx context.Context, userName string) ([]*domain.JournalRecord, error) {
	return s.records, s.err
}

type memorySink struct {
	mu     sync.Mutex
	stored map[string]domain.StreakResult
	err    error
}

func newMemorySink() *memorySink {
	return &memorySink{stored: make(map[string]domain.StreakResult)}
}

func (s *memorySink) Set(ctx context.Context, userName string, streaks domain.StreakResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.stored[userName] = streaks
	return nil
}

func (s *memorySink) get(userName string) (domain.StreakResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.stored[userName]
	return r, ok
}

func workerCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog([]domain.HabitDefinition{
		{Name: "Tilawah", Cadence: domain.CadenceDaily},
	})
	require.NoError(t, err)
	return c
}

func TestStreakWorker_ProcessJob(t *testing.T) {
	ctx := context.Background()
	today := time.Now().UTC()

	t.Run("Success: Stores freshly computed streaks", func(t *testing.T) {
		repo := &stubRecordRepo{records: []*domain.JournalRecord{
			domain.NewJournalRecord("Umam", today, domain.Completions{"Tilawah": true}, ""),
			domain.NewJournalRecord("Umam", today.AddDate(0, 0, -1), domain.Completions{"Tilawah": true}, ""),
		}}
		sink := newMemorySink()
		w := NewStreakWorker(repo, workerCatalog(t), sink)

		w.processJob(ctx, StreakJob{UserName: "Umam"})

		got, ok := sink.get("Umam")
		require.True(t, ok)
		assert.Equal(t, 2, got["Tilawah"])
	})

	t.Run("Fail: Repo error leaves the sink untouched", func(t *testing.T) {
		repo := &stubRecordRepo{err: errors.New("db down")}
		sink := newMemorySink()
		w := NewStreakWorker(repo, workerCatalog(t), sink)

		w.processJob(ctx, StreakJob{UserName: "Umam"})

		_, ok := sink.get("Umam")
		assert.False(t, ok)
	})

	t.Run("Fail: Sink error is swallowed, not fatal", func(t *testing.T) {
		repo := &stubRecordRepo{}
		sink := newMemorySink()
		sink.err = errors.New("redis down")
		w := NewStreakWorker(repo, workerCatalog(t), sink)

		assert.NotPanics(t, func() {
			w.processJob(ctx, StreakJob{UserName: "Umam"})
		})
	})
}

func TestStreakWorker_EnqueueAndStart(t *testing.T) {
	repo := &stubRecordRepo{records: []*domain.JournalRecord{
		domain.NewJournalRecord("Fatih", time.Now().UTC(), domain.Completions{"Tilawah": true}, ""),
	}}
	sink := newMemorySink()
	w := NewStreakWorker(repo, workerCatalog(t), sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	w.Enqueue("Fatih")

	assert.Eventually(t, func() bool {
		_, ok := sink.get("Fatih")
		return ok
	}, 2*time.Second, 10*time.Millisecond)
}

package workers

import (
	"context"
	"log"
	"time"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

type RecordRepository interface {
	ListByUser(ctx context.Context, userName string) ([]*domain.JournalRecord, error)
}

type StreakSink interface {
	Set(ctx context.Context, userName string, streaks domain.StreakResult) error
}

type StreakJob struct {
	UserName string
}

// StreakWorker recomputes a participant's streaks in the background after
// every journal mutation and warms the streak cache, so streak reads rarely
// have to walk the full history on the request path.
type StreakWorker struct {
	repo    RecordRepository
	catalog *domain.Catalog
	sink    StreakSink
	jobs    chan StreakJob
}

func NewStreakWorker(repo RecordRepository, catalog *domain.Catalog, sink StreakSink) *StreakWorker {
	return &StreakWorker{
		repo:    repo,
		catalog: catalog,
		sink:    sink,
		jobs:    make(chan StreakJob, 100),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak Worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(userName string) {
	select {
	case w.jobs <- StreakJob{UserName: userName}:
	default:
		log.Printf("Streak Worker queue full! Dropping job for user %s", userName)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	records, err := w.repo.ListByUser(ctx, job.UserName)
	if err != nil {
		log.Printf("Worker Error fetching records for %s: %v", job.UserName, err)
		return
	}

	streaks := domain.Streaks(records, w.catalog.DailyHabits(), time.Now().UTC())

	if err := w.sink.Set(ctx, job.UserName, streaks); err != nil {
		log.Printf("Worker Failed to store streaks for %s: %v", job.UserName, err)
		return
	}

	log.Printf("Streaks refreshed for %s", job.UserName)
}

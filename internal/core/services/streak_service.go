package services

import (
	"context"
	"log"
	"time"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

// StreakCache is a short-lived store for computed streaks, warmed by the
// background worker after each journal mutation. A nil result with a nil
// error means a cache miss.
type StreakCache interface {
	Get(ctx context.Context, userName string) (domain.StreakResult, error)
	Set(ctx context.Context, userName string, streaks domain.StreakResult) error
}

type StreakService struct {
	repo    domain.RecordRepository
	catalog *domain.Catalog
	cache   StreakCache
}

// NewStreakService builds a streak service. The cache may be nil, in which
// case every call recomputes from the full history.
func NewStreakService(repo domain.RecordRepository, catalog *domain.Catalog, cache StreakCache) *StreakService {
	return &StreakService{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
	}
}

// Current returns the user's streaks, preferring the warmed cache and falling
// back to a fresh computation over the full history.
func (s *StreakService) Current(ctx context.Context, userName string, today time.Time) (domain.StreakResult, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userName)
		if err != nil {
			log.Printf("[CACHE] Streak read failed for %s: %v", userName, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	streaks, err := s.Recompute(ctx, userName, today)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userName, streaks); err != nil {
			log.Printf("[CACHE] Streak write failed for %s: %v", userName, err)
		}
	}

	return streaks, nil
}

// Recompute always derives streaks from storage, bypassing the cache.
func (s *StreakService) Recompute(ctx context.Context, userName string, today time.Time) (domain.StreakResult, error) {
	records, err := s.repo.ListByUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	return domain.Streaks(records, s.catalog.DailyHabits(), today), nil
}

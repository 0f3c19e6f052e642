package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

var _ domain.RecordRepository = (*CachedRecordRepository)(nil)

// CachedRecordRepository decorates another repository with a redis cache of
// each user's full history, the query the streak walk hits on every read.
// Mutations invalidate the owner's key.
type CachedRecordRepository struct {
	next  domain.RecordRepository
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedRecordRepository(next domain.RecordRepository, cache *redis.Client, ttl time.Duration) *CachedRecordRepository {
	return &CachedRecordRepository{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *CachedRecordRepository) cacheKey(userName string) string {
	return fmt.Sprintf("records:%s", userName)
}

func (r *CachedRecordRepository) invalidate(ctx context.Context, userName string) {
	if err := r.cache.Del(ctx, r.cacheKey(userName)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for user %s: %v", userName, err)
	}
}

func (r *CachedRecordRepository) ListByUser(ctx context.Context, userName string) ([]*domain.JournalRecord, error) {
	key := r.cacheKey(userName)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var records []*domain.JournalRecord
		if err := json.Unmarshal([]byte(val), &records); err == nil {
			return records, nil
		}

		log.Printf("[CACHE] Corrupted data for user %s, cleaning up key", userName)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	records, err := r.next.ListByUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(records); err == nil {
		if setErr := r.cache.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return records, nil
}

func (r *CachedRecordRepository) Upsert(ctx context.Context, record *domain.JournalRecord) error {
	if err := r.next.Upsert(ctx, record); err != nil {
		return err
	}
	r.invalidate(ctx, record.UserName)
	return nil
}

func (r *CachedRecordRepository) DeleteByDate(ctx context.Context, userName string, date time.Time) error {
	if err := r.next.DeleteByDate(ctx, userName, date); err != nil {
		return err
	}
	r.invalidate(ctx, userName)
	return nil
}

func (r *CachedRecordRepository) GetByDate(ctx context.Context, userName string, date time.Time) (*domain.JournalRecord, error) {
	return r.next.GetByDate(ctx, userName, date)
}

func (r *CachedRecordRepository) ListByUserInRange(ctx context.Context, userName string, from, to time.Time) ([]*domain.JournalRecord, error) {
	return r.next.ListByUserInRange(ctx, userName, from, to)
}

func (r *CachedRecordRepository) ListAllInRange(ctx context.Context, from, to time.Time) ([]*domain.JournalRecord, error) {
	return r.next.ListAllInRange(ctx, from, to)
}

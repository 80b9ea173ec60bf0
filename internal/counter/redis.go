package counter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ignite/adserver/internal/domain"
)

// RedisStore keeps aggregates as Redis hashes and applies counters with
// HINCRBY, which is atomic per field. Layout:
//
//	ad:stats:{adID}                  lifetime aggregate
//	ad:stats:{adID}:day:{YYYY-MM-DD} daily aggregate
type RedisStore struct {
	client *redis.Client

	// retention bounds daily keys; applied only when a daily key is first
	// created so the TTL never slides.
	retention time.Duration
}

// NewRedisStore creates a Redis-backed counter store. retentionDays bounds
// how long daily aggregates are kept; <= 0 keeps them forever.
func NewRedisStore(client *redis.Client, retentionDays int) *RedisStore {
	var retention time.Duration
	if retentionDays > 0 {
		retention = time.Duration(retentionDays) * 24 * time.Hour
	}
	return &RedisStore{client: client, retention: retention}
}

// NewRedisStoreFromURL creates a counter store by connecting to Redis.
func NewRedisStoreFromURL(redisURL string, retentionDays int) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return NewRedisStore(client, retentionDays), nil
}

func lifetimeKey(adID string) string { return "ad:stats:" + adID }

func dailyKey(adID, dateKey string) string { return "ad:stats:" + adID + ":day:" + dateKey }

// IncrementDaily adds delta to one field of the creative's aggregate for the
// given date key.
func (s *RedisStore) IncrementDaily(ctx context.Context, adID, dateKey, field string, delta int64) error {
	key := dailyKey(adID, dateKey)
	if err := s.client.HIncrBy(ctx, key, field, delta).Err(); err != nil {
		return fmt.Errorf("incr daily %s.%s: %w", key, field, err)
	}
	if s.retention > 0 {
		// NX: set only when the key has no TTL yet (first write of the day)
		s.client.ExpireNX(ctx, key, s.retention)
	}
	return nil
}

// IncrementLifetime adds delta to one field of the creative's all-time
// aggregate.
func (s *RedisStore) IncrementLifetime(ctx context.Context, adID, field string, delta int64) error {
	key := lifetimeKey(adID)
	if err := s.client.HIncrBy(ctx, key, field, delta).Err(); err != nil {
		return fmt.Errorf("incr lifetime %s.%s: %w", key, field, err)
	}
	return nil
}

// Apply classifies an event and issues every resulting increment against
// today's daily aggregate and the lifetime aggregate. All increments for one
// event ride a single pipeline; each is still an independent atomic add, so
// a half-applied pipeline under failure can under-count but never corrupt.
func (s *RedisStore) Apply(ctx context.Context, adID, event string) error {
	fields := domain.ClassifyEvent(event)
	today := DateKey(time.Now())
	dKey := dailyKey(adID, today)
	lKey := lifetimeKey(adID)

	pipe := s.client.Pipeline()
	for _, f := range fields {
		pipe.HIncrBy(ctx, dKey, f, 1)
		pipe.HIncrBy(ctx, lKey, f, 1)
	}
	if s.retention > 0 {
		pipe.ExpireNX(ctx, dKey, s.retention)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("apply %s event %q: %w", adID, event, err)
	}
	return nil
}

// Lifetime reads the creative's all-time aggregate. Missing creatives read
// as all-zero counters, not an error.
func (s *RedisStore) Lifetime(ctx context.Context, adID string) (domain.Counters, error) {
	return s.readHash(ctx, lifetimeKey(adID))
}

// Daily reads the creative's aggregate for one date key.
func (s *RedisStore) Daily(ctx context.Context, adID, dateKey string) (domain.Counters, error) {
	return s.readHash(ctx, dailyKey(adID, dateKey))
}

func (s *RedisStore) readHash(ctx context.Context, key string) (domain.Counters, error) {
	var c domain.Counters
	vals, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return c, fmt.Errorf("read %s: %w", key, err)
	}
	for field, raw := range vals {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		switch {
		case field == domain.FieldViews:
			c.Views = n
		case field == domain.FieldImpressions:
			c.Impressions = n
		case field == domain.FieldClicks:
			c.Clicks = n
		case strings.HasPrefix(field, domain.CustomFieldPrefix):
			if c.Events == nil {
				c.Events = make(map[string]int64)
			}
			c.Events[strings.TrimPrefix(field, domain.CustomFieldPrefix)] = n
		}
	}
	return c, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

package sortedstorage

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockSuffix = ":best_lock"

// RedisSortedStore keeps lowest scores per member in Redis sorted sets with
// TTL support.
type RedisSortedStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSortedStore initializes a RedisSortedStore with the provided Redis
// client and TTL. A ttlSeconds of zero or less keeps keys forever.
func NewRedisSortedStore(client *redis.Client, ttlSeconds int) (*RedisSortedStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	store := &RedisSortedStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

// KeepLowest stores score for member unless it already holds a lower one.
// The read and the write happen under a distributed lock on the key.
func (rss *RedisSortedStore) KeepLowest(ctx context.Context, key string, score float64, member string) (bool, error) {
	mutex := rss.locker.NewMutex(key + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return false, err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	current, err := rss.client.ZScore(ctx, key, member).Result()
	switch {
	case err == nil && current <= score:
		return false, nil
	case err != nil && !errors.Is(err, redis.Nil):
		return false, err
	}

	if err := rss.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return false, err
	}

	// Set expiration only if it's not already set
	if rss.ttl > 0 {
		ttl, err := rss.client.TTL(ctx, key).Result()
		if err == nil && ttl == -1 {
			_ = rss.client.Expire(ctx, key, rss.ttl).Err()
		}
	}

	return true, nil
}

// Lowest retrieves up to amount members with the lowest scores without
// removing them.
func (rss *RedisSortedStore) Lowest(ctx context.Context, key string, amount int64) ([]string, []float64, error) {
	if amount <= 0 {
		return nil, nil, nil
	}

	entries, err := rss.client.ZRangeWithScores(ctx, key, 0, amount-1).Result()
	if err != nil {
		return nil, nil, err
	}

	members := make([]string, 0, len(entries))
	scores := make([]float64, 0, len(entries))
	for _, z := range entries {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		members = append(members, member)
		scores = append(scores, z.Score)
	}
	return members, scores, nil
}

// Count returns the number of members in the sorted set.
func (rss *RedisSortedStore) Count(ctx context.Context, key string) int64 {
	return rss.client.ZCard(ctx, key).Val()
}

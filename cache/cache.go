// Package cache fronts the month-to-date spend aggregation with Redis.
// Every entry is invalidated on any transaction write touching the same
// (owner, category), so a hit is never staler than the last write.
package cache

import (
	"context"
	"finance-tracker/api/logger"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var redisClient *redis.Client

const spendTTL = 5 * time.Minute

// InitRedis connects to Redis if REDIS_URL is set. The cache is strictly
// optional; when the client is nil every lookup is a miss.
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return fmt.Errorf("REDIS_URL environment variable not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	redisClient = client
	logger.Get().Info("successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if redisClient != nil {
		redisClient.Close()
	}
}

func spendKey(owner, category string, monthStart time.Time) string {
	return fmt.Sprintf("spend:%s:%s:%s", owner, category, monthStart.Format("2006-01"))
}

// GetMonthSpend returns the cached month-to-date spend, or ok=false on a
// miss (or with no cache configured).
func GetMonthSpend(ctx context.Context, owner, category string, monthStart time.Time) (float64, bool) {
	if redisClient == nil {
		return 0, false
	}

	val, err := redisClient.Get(ctx, spendKey(owner, category, monthStart)).Result()
	if err != nil {
		return 0, false
	}

	total, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return total, true
}

func SetMonthSpend(ctx context.Context, owner, category string, monthStart time.Time, total float64) {
	if redisClient == nil {
		return
	}

	key := spendKey(owner, category, monthStart)
	val := strconv.FormatFloat(total, 'f', -1, 64)
	if err := redisClient.Set(ctx, key, val, spendTTL).Err(); err != nil {
		logger.Get().Warn("failed to cache month spend",
			zap.String("key", key),
			zap.Error(err))
	}
}

// InvalidateMonthSpend drops the cached total for (owner, category). Called
// on every transaction write so the next read re-aggregates.
func InvalidateMonthSpend(ctx context.Context, owner, category string, monthStart time.Time) {
	if redisClient == nil {
		return
	}

	key := spendKey(owner, category, monthStart)
	if err := redisClient.Del(ctx, key).Err(); err != nil {
		logger.Get().Warn("failed to invalidate month spend",
			zap.String("key", key),
			zap.Error(err))
	}
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldops/presence-backend-go/internal/domain/attendance"
	"github.com/redis/go-redis/v9"
)

// MonthCache holds derived monthly summaries so repeated calendar fetches
// skip re-aggregation. Every mutation to a user's month drops the key, so a
// warm entry is always consistent with the stored records (last write wins).
//
// All methods are nil-safe: a nil cache behaves as a permanent miss, which
// lets callers run without redis configured.
type MonthCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMonthCache(addr, password string, db int, ttl time.Duration) (*MonthCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &MonthCache{rdb: rdb, ttl: ttl}, nil
}

func monthKey(userID string, year int, month time.Month) string {
	return fmt.Sprintf("attendance:summary:%s:%04d-%02d", userID, year, int(month))
}

// Summary returns the cached summary for one user-month, or nil on a miss.
// Cache failures degrade to a miss; they never fail the fetch.
func (c *MonthCache) Summary(ctx context.Context, userID string, year int, month time.Month) *attendance.MonthlySummary {
	if c == nil || c.rdb == nil {
		return nil
	}

	payload, err := c.rdb.Get(ctx, monthKey(userID, year, month)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("month cache get failed", "error", err)
		}
		return nil
	}

	var summary attendance.MonthlySummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		slog.Warn("month cache entry corrupt, dropping", "error", err)
		c.Invalidate(ctx, userID, year, month)
		return nil
	}
	return &summary
}

// Store caches a freshly derived summary.
func (c *MonthCache) Store(ctx context.Context, userID string, year int, month time.Month, summary attendance.MonthlySummary) {
	if c == nil || c.rdb == nil {
		return
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, monthKey(userID, year, month), payload, c.ttl).Err(); err != nil {
		slog.Warn("month cache set failed", "error", err)
	}
}

// Invalidate drops the cached summary after any mutation in the month.
func (c *MonthCache) Invalidate(ctx context.Context, userID string, year int, month time.Month) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, monthKey(userID, year, month)).Err(); err != nil {
		slog.Warn("month cache invalidate failed", "error", err)
	}
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"bookingcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const dateLayout = "2006-01-02"

// AvailabilityCache stores computed slot lists under versioned keys. Writes
// never delete cached entries; they bump a version counter instead, so stale
// entries become unreachable and age out via TTL. Every operation is best
// effort: Redis being down degrades to computing availability each time.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: ttl}
}

func (c *AvailabilityCache) Get(ctx context.Context, req queries.AvailabilityRequest) ([]string, bool) {
	key, err := c.slotKey(ctx, req)
	if err != nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("availability cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, req queries.AvailabilityRequest, slots []string) {
	key, err := c.slotKey(ctx, req)
	if err != nil {
		return
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Debug("availability cache write failed", "error", err.Error())
	}
}

// Bump invalidates one day of a business's availability.
func (c *AvailabilityCache) Bump(ctx context.Context, businessID uuid.UUID, date time.Time) {
	c.incr(ctx, dayVersionKey(businessID, date))
}

// BumpAll invalidates every cached day of a business, used when working
// hours or schedule settings change.
func (c *AvailabilityCache) BumpAll(ctx context.Context, businessID uuid.UUID) {
	c.incr(ctx, businessVersionKey(businessID))
}

func (c *AvailabilityCache) incr(ctx context.Context, key string) {
	pipe := c.rdb.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 48*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Debug("availability cache bump failed", "key", key, "error", err.Error())
	}
}

func (c *AvailabilityCache) slotKey(ctx context.Context, req queries.AvailabilityRequest) (string, error) {
	bizVer, err := c.version(ctx, businessVersionKey(req.BusinessID))
	if err != nil {
		return "", err
	}
	dayVer, err := c.version(ctx, dayVersionKey(req.BusinessID, req.Date))
	if err != nil {
		return "", err
	}

	staff := "any"
	if req.StaffID != nil {
		staff = req.StaffID.String()
	}
	return fmt.Sprintf("availability:slots:%s:v%d:%s:v%d:%s:%s",
		req.BusinessID, bizVer, req.Date.Format(dateLayout), dayVer, req.ServiceID, staff), nil
}

func (c *AvailabilityCache) version(ctx context.Context, key string) (int64, error) {
	v, err := c.rdb.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}

func businessVersionKey(businessID uuid.UUID) string {
	return fmt.Sprintf("availability:ver:%s", businessID)
}

func dayVersionKey(businessID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("availability:ver:%s:%s", businessID, date.Format(dateLayout))
}

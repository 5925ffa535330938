package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// UsedCouponCache keeps the per-identifier "used this month" coupon id set in
// Redis so eligibility checks do not hit the ledger on every request. The
// ledger stays the source of truth: a cache miss or Redis outage falls back
// to a ledger query, never to an error.
type UsedCouponCache struct {
	client *redis.Client
}

func NewUsedCouponCache(client *redis.Client) *UsedCouponCache {
	return &UsedCouponCache{client: client}
}

func key(identifier string, monthStart time.Time) string {
	return fmt.Sprintf("used:%s:%s", identifier, monthStart.Format("2006-01"))
}

// Seed replaces the cached set for the identifier's current month. A sentinel
// member marks the set as seeded so an empty usage history is still a hit.
func (c *UsedCouponCache) Seed(ctx context.Context, identifier string, monthStart, monthEnd time.Time, ids map[string]struct{}) {
	k := key(identifier, monthStart)
	members := make([]any, 0, len(ids)+1)
	members = append(members, "__seeded__")
	for id := range ids {
		members = append(members, id)
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, k)
	pipe.SAdd(ctx, k, members...)
	pipe.ExpireAt(ctx, k, monthEnd)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("used-coupon cache seed failed", "identifier", identifier, "error", err)
	}
}

// Add records a finalized coupon id optimistically. The sentinel is written
// alongside so a set created by Add alone (a guest's first redemption) still
// counts as seeded.
func (c *UsedCouponCache) Add(ctx context.Context, identifier string, monthStart, monthEnd time.Time, couponID string) {
	k := key(identifier, monthStart)
	pipe := c.client.TxPipeline()
	pipe.SAdd(ctx, k, "__seeded__", couponID)
	pipe.ExpireAt(ctx, k, monthEnd)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("used-coupon cache add failed", "identifier", identifier, "error", err)
	}
}

// Get returns the cached set and whether the cache held a seeded entry.
func (c *UsedCouponCache) Get(ctx context.Context, identifier string, monthStart time.Time) (map[string]struct{}, bool) {
	members, err := c.client.SMembers(ctx, key(identifier, monthStart)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("used-coupon cache read failed", "identifier", identifier, "error", err)
		}
		return nil, false
	}

	seeded := false
	out := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m == "__seeded__" {
			seeded = true
			continue
		}
		out[m] = struct{}{}
	}
	if !seeded {
		return nil, false
	}
	return out, true
}

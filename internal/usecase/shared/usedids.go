package shared

import (
	"context"
	"log/slog"
	"time"
)

// ResolveUsedCouponIDs returns the caller's used-coupon set for the period.
// Members read through the cache and fall back to the ledger on a miss,
// reseeding opportunistically. Guests are cache-only: their ledger rows all
// share the "Guest" identifier, so the ledger cannot be queried per session
// and a cache miss means an empty set.
func ResolveUsedCouponIDs(
	ctx context.Context,
	sess Session,
	cache UsedCouponCache,
	usage UsageReadStore,
	monthStart, monthEnd time.Time,
) map[string]struct{} {
	if ids, ok := cache.Get(ctx, sess.CacheKey, monthStart); ok {
		return ids
	}
	if !sess.IsMember() && sess.CacheKey != sess.Identifier {
		return map[string]struct{}{}
	}

	ids, err := usage.UsedCouponIDs(ctx, sess.Identifier, monthStart, monthEnd)
	if err != nil {
		slog.Warn("used-coupon ledger query failed", "identifier", sess.Identifier, "error", err)
		return map[string]struct{}{}
	}
	cache.Seed(ctx, sess.CacheKey, monthStart, monthEnd, ids)
	return ids
}

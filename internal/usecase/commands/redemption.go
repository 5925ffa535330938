package commands

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"vista-ecoupon/internal/domain/promotion"
	"vista-ecoupon/internal/domain/redemption"
	"vista-ecoupon/internal/domain/usage"
	"vista-ecoupon/internal/pkg/clock"
	"vista-ecoupon/internal/pkg/errs"
	"vista-ecoupon/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCouponNotEligible = errs.New("coupon not eligible")
	ErrCouponLocked      = errs.New("coupon locked")
	ErrCouponAlreadyUsed = errs.New("coupon already used this period")
	ErrCodeNotFound      = errs.New("redemption code not found")
	ErrCodeNotOwned      = errs.New("redemption code owned by another session")
	ErrCodeExpired       = errs.New("redemption code expired")
)

// CodeView is the client-facing shape of a freshly generated code.
type CodeView struct {
	Value            string    `json:"value"`
	CouponID         string    `json:"couponId"`
	BranchName       *string   `json:"branchName,omitempty"`
	ExpiresAt        time.Time `json:"expiresAt"`
	RemainingSeconds int       `json:"remainingSeconds"`
}

type RedemptionCommands interface {
	Generate(ctx context.Context, sess shared.Session, couponID string, branchName *string) (*CodeView, error)
	Confirm(ctx context.Context, sess shared.Session, value string) error
	Discard(ctx context.Context, sess shared.Session, value string) error
}

// activeRedemption is one live code plus everything needed to write its
// ledger record without going back to the promotion store.
type activeRedemption struct {
	code      *redemption.Code
	countdown *redemption.Countdown
	ownerKey  string
	owner     shared.Session
	coupon    promotion.Coupon
}

type redemptionUseCaseImpl struct {
	promotions shared.PromotionReadStore
	usage      shared.UsageReadStore
	cache      shared.UsedCouponCache
	ledger     shared.UsageEnqueuer

	prefixes redemption.Prefixes
	ttl      time.Duration
	tick     time.Duration
	clock    clock.Clock
	loc      *time.Location

	mu     sync.RWMutex
	active map[string]*activeRedemption
}

func NewRedemptionUseCase(
	promotions shared.PromotionReadStore,
	usage shared.UsageReadStore,
	cache shared.UsedCouponCache,
	ledger shared.UsageEnqueuer,
	prefixes redemption.Prefixes,
	ttl time.Duration,
	clock clock.Clock,
	loc *time.Location,
) RedemptionCommands {
	return &redemptionUseCaseImpl{
		promotions: promotions,
		usage:      usage,
		cache:      cache,
		ledger:     ledger,
		prefixes:   prefixes,
		ttl:        ttl,
		tick:       time.Second,
		clock:      clock,
		loc:        loc,
		active:     make(map[string]*activeRedemption),
	}
}

// Generate re-checks eligibility and the lock gate at the moment of issue,
// then hands out a code with its countdown already running. A session holds
// at most one live code; generating a new one silently discards the previous.
func (r *redemptionUseCaseImpl) Generate(ctx context.Context, sess shared.Session, couponID string, branchName *string) (*CodeView, error) {
	now := r.clock.Now().In(r.loc)

	campaign, coupon, err := r.eligibleCoupon(ctx, sess, couponID, now)
	if err != nil {
		return nil, err
	}
	if promotion.Locked(*coupon, *campaign, now) {
		return nil, ErrCouponLocked
	}

	prefix := r.prefixes.For(sess.Entitlement)

	r.mu.Lock()
	r.dropByOwnerLocked(sess.CacheKey)

	var value string
	for {
		value = redemption.FormatValue(prefix, now, 1000+rand.IntN(9000))
		if _, taken := r.active[value]; !taken {
			break
		}
	}

	code := redemption.NewCode(value, coupon.ID, sess.Identifier, sess.Entitlement, branchName, now, r.ttl)
	entry := &activeRedemption{
		code:      code,
		countdown: redemption.NewCountdown(int(r.ttl/time.Second), r.tick),
		ownerKey:  sess.CacheKey,
		owner:     sess,
		coupon:    *coupon,
	}
	r.active[value] = entry
	r.mu.Unlock()

	entry.countdown.Start(func() {
		if entry.code.Expire() {
			r.recordFinal(entry, usage.StatusExpired)
		}
	})

	return &CodeView{
		Value:            value,
		CouponID:         coupon.ID,
		BranchName:       branchName,
		ExpiresAt:        code.ExpiresAt(),
		RemainingSeconds: entry.countdown.Remaining(),
	}, nil
}

// Confirm settles the code as Used. Exactly one of Confirm and the countdown
// expiry wins; the loser is a no-op. Confirming an already-used code succeeds
// idempotently, confirming an expired one reports the expiry.
func (r *redemptionUseCaseImpl) Confirm(ctx context.Context, sess shared.Session, value string) error {
	entry, err := r.lookup(sess, value)
	if err != nil {
		return err
	}

	if entry.code.Confirm() {
		entry.countdown.Cancel()
		r.recordFinal(entry, usage.StatusUsed)
		return nil
	}

	switch entry.code.State() {
	case redemption.StateUsed:
		return nil
	default:
		return ErrCodeExpired
	}
}

// Discard cancels the countdown and forgets the code. No ledger record is
// written for a discarded active code; discarding a finalized code just
// clears it from the registry.
func (r *redemptionUseCaseImpl) Discard(ctx context.Context, sess shared.Session, value string) error {
	entry, err := r.lookup(sess, value)
	if err != nil {
		return err
	}

	entry.countdown.Cancel()

	r.mu.Lock()
	delete(r.active, value)
	r.mu.Unlock()
	return nil
}

func (r *redemptionUseCaseImpl) lookup(sess shared.Session, value string) (*activeRedemption, error) {
	r.mu.RLock()
	entry, ok := r.active[value]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrCodeNotFound
	}
	if entry.ownerKey != sess.CacheKey {
		return nil, ErrCodeNotOwned
	}
	return entry, nil
}

// dropByOwnerLocked cancels and removes any code the owner already holds.
// Caller holds r.mu.
func (r *redemptionUseCaseImpl) dropByOwnerLocked(ownerKey string) {
	for value, entry := range r.active {
		if entry.ownerKey == ownerKey {
			entry.countdown.Cancel()
			delete(r.active, value)
		}
	}
}

// eligibleCoupon re-runs the eligibility filter for the session and digs out
// the requested coupon. The distinction between "already used" and "not
// eligible" matters to the client, so the used set is consulted separately.
func (r *redemptionUseCaseImpl) eligibleCoupon(ctx context.Context, sess shared.Session, couponID string, now time.Time) (*promotion.Campaign, *promotion.Coupon, error) {
	campaigns, err := r.promotions.ListCampaigns(ctx)
	if err != nil {
		return nil, nil, errs.Wrap(err, "list campaigns")
	}

	monthStart, monthEnd := promotion.MonthWindow(now)
	used := shared.ResolveUsedCouponIDs(ctx, sess, r.cache, r.usage, monthStart, monthEnd)
	if _, ok := used[couponID]; ok {
		return nil, nil, ErrCouponAlreadyUsed
	}

	eligible := promotion.SelectEligible(campaigns, sess.Entitlement, sess.Identifier, used, now)
	for i := range eligible {
		for j := range eligible[i].Coupons {
			if eligible[i].Coupons[j].ID == couponID {
				return &eligible[i], &eligible[i].Coupons[j], nil
			}
		}
	}
	return nil, nil, ErrCouponNotEligible
}

// recordFinal pushes the terminal transition to the ledger outbox and marks
// the coupon used in the session's cache. Called at most once per code.
func (r *redemptionUseCaseImpl) recordFinal(entry *activeRedemption, status usage.Status) {
	now := r.clock.Now().In(r.loc)

	branch := ""
	if b := entry.code.BranchName(); b != nil {
		branch = *b
	}

	r.ledger.Enqueue(usage.Record{
		ID:                uuid.New(),
		Identifier:        entry.owner.Identifier,
		MemberName:        entry.owner.DisplayName,
		CouponID:          entry.coupon.ID,
		CouponCode:        entry.code.Value(),
		CouponName:        entry.coupon.Name,
		CouponCardTitle:   entry.coupon.CardTitle,
		CouponDescription: entry.coupon.Description,
		CouponImageURL:    entry.coupon.ImageURL,
		BranchName:        branch,
		Status:            status,
		Timestamp:         now,
	})

	monthStart, monthEnd := promotion.MonthWindow(now)
	r.cache.Add(context.Background(), entry.ownerKey, monthStart, monthEnd, entry.coupon.ID)
}

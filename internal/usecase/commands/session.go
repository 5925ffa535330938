package commands

import (
	"context"
	"log/slog"
	"time"

	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/domain/promotion"
	"vista-ecoupon/internal/infra"
	"vista-ecoupon/internal/pkg/clock"
	"vista-ecoupon/internal/pkg/errs"
	"vista-ecoupon/internal/pkg/jwt"
	"vista-ecoupon/internal/usecase/shared"
)

var (
	ErrIdentifierRequired        = errs.New("identifier required")
	ErrIdentitySourceUnavailable = errs.New("identity source unavailable")
)

// SessionResult is what the client needs to start using the app: the signed
// token plus the resolved identity for immediate display.
type SessionResult struct {
	Token       string
	Identifier  string
	Entitlement member.Entitlement
	DisplayName string
}

type SessionCommands interface {
	Validate(ctx context.Context, identifier string) (*SessionResult, error)
	StartGuest(ctx context.Context) (*SessionResult, error)
}

type sessionUseCaseImpl struct {
	members shared.MemberReadStore
	usage   shared.UsageReadStore
	cache   shared.UsedCouponCache
	tokens  *jwt.Service
	clock   clock.Clock
	loc     *time.Location
}

func NewSessionUseCase(
	members shared.MemberReadStore,
	usage shared.UsageReadStore,
	cache shared.UsedCouponCache,
	tokens *jwt.Service,
	clock clock.Clock,
	loc *time.Location,
) SessionCommands {
	return &sessionUseCaseImpl{
		members: members,
		usage:   usage,
		cache:   cache,
		tokens:  tokens,
		clock:   clock,
		loc:     loc,
	}
}

// Validate resolves an identifier against the member store. "Not found" is a
// valid outcome (a non-member session); only a store outage is an error, so
// the client can tell "you are not a member" apart from "try again".
func (s *sessionUseCaseImpl) Validate(ctx context.Context, identifier string) (*SessionResult, error) {
	identifier = member.NormalizeIdentifier(identifier)
	if identifier == "" {
		return nil, ErrIdentifierRequired
	}

	ent := member.EntitlementNonMember
	displayName := ""

	m, err := s.members.FindByIdentifier(ctx, identifier)
	switch {
	case err == nil:
		ent = member.EntitlementMember
		displayName = m.DisplayName()
	case infra.IsKind(err, infra.KindNotFound):
		// keep NON_MEMBER
	default:
		return nil, errs.Mark(err, ErrIdentitySourceUnavailable)
	}

	token, err := s.tokens.GenerateSessionToken(identifier, ent, displayName)
	if err != nil {
		return nil, errs.Wrap(err, "sign session token")
	}

	s.seedUsedCoupons(ctx, identifier)

	return &SessionResult{
		Token:       token,
		Identifier:  identifier,
		Entitlement: ent,
		DisplayName: displayName,
	}, nil
}

// StartGuest issues an anonymous session. Guests share the "Guest" ledger
// identifier but each token gets its own used-coupon cache key, so one
// guest's redemptions never hide coupons from another.
func (s *sessionUseCaseImpl) StartGuest(ctx context.Context) (*SessionResult, error) {
	token, err := s.tokens.GenerateSessionToken(member.GuestIdentifier, member.EntitlementNonMember, "")
	if err != nil {
		return nil, errs.Wrap(err, "sign guest token")
	}

	return &SessionResult{
		Token:       token,
		Identifier:  member.GuestIdentifier,
		Entitlement: member.EntitlementNonMember,
	}, nil
}

// seedUsedCoupons warms the per-identifier cache from the ledger so the first
// promotions request after login does not pay the ledger query. Failures are
// logged and ignored; the read path falls back to the ledger anyway.
func (s *sessionUseCaseImpl) seedUsedCoupons(ctx context.Context, identifier string) {
	now := s.clock.Now().In(s.loc)
	start, end := promotion.MonthWindow(now)

	ids, err := s.usage.UsedCouponIDs(ctx, identifier, start, end)
	if err != nil {
		slog.Warn("used-coupon seed query failed", "identifier", identifier, "error", err)
		return
	}
	s.cache.Seed(ctx, identifier, start, end, ids)
}

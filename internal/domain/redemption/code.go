package redemption

import (
	"fmt"
	"sync"
	"time"

	"vista-ecoupon/internal/domain/member"
)

type State string

const (
	StateActive  State = "Active"
	StateUsed    State = "Used"
	StateExpired State = "Expired"
)

// Prefixes selects the code prefix per entitlement. The current deployment
// configures both to the same literal; the distinction is kept deliberately.
type Prefixes struct {
	Member string
	Guest  string
}

func (p Prefixes) For(ent member.Entitlement) string {
	if ent.IsMember() {
		return p.Member
	}
	return p.Guest
}

// FormatValue builds the code string <PREFIX><DD><MM>-<4 digits>. The suffix
// must be in [0, 10000); uniqueness is not checked here. The ledger append
// is the durability point, so a rare collision is tolerated.
func FormatValue(prefix string, now time.Time, suffix int) string {
	return fmt.Sprintf("%s%02d%02d-%04d", prefix, now.Day(), int(now.Month()), suffix)
}

// Code is a short-lived single-use redemption token. It is owned exclusively
// by the session that created it; the finalizing guard is the only mutual
// exclusion it needs.
type Code struct {
	value       string
	couponID    string
	identifier  string
	entitlement member.Entitlement
	branchName  *string
	createdAt   time.Time
	ttl         time.Duration

	mu        sync.Mutex
	state     State
	finalized bool
}

func NewCode(value, couponID, identifier string, ent member.Entitlement, branchName *string, createdAt time.Time, ttl time.Duration) *Code {
	return &Code{
		value:       value,
		couponID:    couponID,
		identifier:  identifier,
		entitlement: ent,
		branchName:  branchName,
		createdAt:   createdAt,
		ttl:         ttl,
		state:       StateActive,
	}
}

func (c *Code) Value() string                   { return c.value }
func (c *Code) CouponID() string                { return c.couponID }
func (c *Code) Identifier() string              { return c.identifier }
func (c *Code) Entitlement() member.Entitlement { return c.entitlement }
func (c *Code) BranchName() *string             { return c.branchName }
func (c *Code) CreatedAt() time.Time            { return c.createdAt }
func (c *Code) ExpiresAt() time.Time            { return c.createdAt.Add(c.ttl) }

func (c *Code) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Confirm transitions Active → Used. It returns true only for the call that
// performed the transition; once the code is finalized every further Confirm
// or Expire is a no-op.
func (c *Code) Confirm() bool {
	return c.finalize(StateUsed)
}

// Expire transitions Active → Expired under the same at-most-once guard.
func (c *Code) Expire() bool {
	return c.finalize(StateExpired)
}

func (c *Code) finalize(target State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.finalized {
		return false
	}
	c.finalized = true
	c.state = target
	return true
}

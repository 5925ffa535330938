package promotion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriod = errors.New("campaign start date must not be after end date")
	ErrNoCoupons     = errors.New("campaign must contain at least one coupon")
)

// Campaign is a time-boxed grouping of coupons with shared activation rules.
// Week is the legacy ordering field kept for documents that predate Priority.
type Campaign struct {
	ID        uuid.UUID `json:"id"`
	Period    string    `json:"period"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Coupons   []Coupon  `json:"coupons"`
	IsActive  *bool     `json:"isActive,omitempty"`
	Priority  *int      `json:"priority,omitempty"`
	Week      int       `json:"week,omitempty"`
}

// Active treats an absent isActive field as true (default-active).
func (c Campaign) Active() bool {
	return c.IsActive == nil || *c.IsActive
}

// EffectivePriority falls back to the legacy week number when priority is
// absent. Lower sorts first.
func (c Campaign) EffectivePriority() int {
	if c.Priority != nil {
		return *c.Priority
	}
	return c.Week
}

// HasValidDates guards the eligibility filter against malformed documents:
// zero or inverted boundaries exclude the campaign rather than raising.
func (c Campaign) HasValidDates() bool {
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return false
	}
	return !c.StartDate.After(c.EndDate)
}

// Validate enforces the invariants admin writes must satisfy.
func (c Campaign) Validate() error {
	if !c.HasValidDates() {
		return ErrInvalidPeriod
	}
	if len(c.Coupons) == 0 {
		return ErrNoCoupons
	}
	for _, cp := range c.Coupons {
		if err := cp.Validate(); err != nil {
			return err
		}
	}
	return nil
}

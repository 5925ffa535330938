package usage

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusUsed    Status = "Used"
	StatusExpired Status = "Expired"
)

// Record is one appended entry in the usage ledger: exactly one per
// finalized redemption code. Display fields are denormalized so the history
// screen and back-office exports need no joins against campaign documents
// that may since have changed.
type Record struct {
	ID                uuid.UUID
	Identifier        string
	MemberName        string
	CouponID          string
	CouponCode        string
	CouponName        string
	CouponCardTitle   string
	CouponDescription string
	CouponImageURL    string
	BranchName        string
	Status            Status
	Timestamp         time.Time
}

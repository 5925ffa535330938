package response

import (
	"time"

	"vista-ecoupon/internal/usecase/commands"
)

type CodeResponse struct {
	Value            string    `json:"value"`
	CouponID         string    `json:"couponId"`
	BranchName       *string   `json:"branchName,omitempty"`
	ExpiresAt        time.Time `json:"expiresAt"`
	RemainingSeconds int       `json:"remainingSeconds"`
}

func FromCodeView(v *commands.CodeView) *CodeResponse {
	return &CodeResponse{
		Value:            v.Value,
		CouponID:         v.CouponID,
		BranchName:       v.BranchName,
		ExpiresAt:        v.ExpiresAt,
		RemainingSeconds: v.RemainingSeconds,
	}
}

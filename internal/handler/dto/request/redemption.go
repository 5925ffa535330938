package request

import "strings"

type GenerateCodeRequest struct {
	CouponID   string  `json:"couponId" binding:"required"`
	BranchName *string `json:"branchName,omitempty"`
}

func (r GenerateCodeRequest) GetBranchName() *string {
	if r.BranchName == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.BranchName)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

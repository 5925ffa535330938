package request

import (
	"time"

	"vista-ecoupon/internal/domain/promotion"

	"github.com/google/uuid"
)

type CampaignRequest struct {
	Period    string             `json:"period" binding:"required"`
	StartDate time.Time          `json:"startDate" binding:"required"`
	EndDate   time.Time          `json:"endDate" binding:"required"`
	Coupons   []promotion.Coupon `json:"coupons" binding:"required"`
	IsActive  *bool              `json:"isActive,omitempty"`
	Priority  *int               `json:"priority,omitempty"`
	Week      int                `json:"week,omitempty"`
}

func (r CampaignRequest) ToDomain(id uuid.UUID) promotion.Campaign {
	return promotion.Campaign{
		ID:        id,
		Period:    r.Period,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Coupons:   r.Coupons,
		IsActive:  r.IsActive,
		Priority:  r.Priority,
		Week:      r.Week,
	}
}

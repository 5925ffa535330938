package commands

import (
	"context"

	"vista-ecoupon/internal/domain/promotion"
	"vista-ecoupon/internal/infra"
	"vista-ecoupon/internal/pkg/errs"
	"vista-ecoupon/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound        = errs.New("campaign not found")
	ErrInvalidCampaign         = errs.New("invalid campaign")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CampaignCommands interface {
	Create(ctx context.Context, c promotion.Campaign) (uuid.UUID, error)
	Update(ctx context.Context, c promotion.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type campaignUseCaseImpl struct {
	repo shared.PromotionRepository
}

func NewCampaignUseCase(repo shared.PromotionRepository) CampaignCommands {
	return &campaignUseCaseImpl{repo: repo}
}

func (c *campaignUseCaseImpl) Create(ctx context.Context, campaign promotion.Campaign) (uuid.UUID, error) {
	if err := campaign.Validate(); err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCampaign)
	}

	id, err := c.repo.Create(ctx, campaign)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *campaignUseCaseImpl) Update(ctx context.Context, campaign promotion.Campaign) error {
	if campaign.ID == uuid.Nil {
		return ErrCampaignNotFound
	}
	if err := campaign.Validate(); err != nil {
		return errs.Mark(err, ErrInvalidCampaign)
	}

	if err := c.repo.Update(ctx, campaign); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCampaignNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *campaignUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCampaignNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

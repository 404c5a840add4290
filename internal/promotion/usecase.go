package promotion

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/promotion/dto"
)

type UseCase interface {
	CreatePromotion(ctx context.Context, input *dto.PromotionInput) (*model.Promotion, error)
	UpdatePromotion(ctx context.Context, input *dto.PromotionInput) (*model.Promotion, error)
	GetPromotion(ctx context.Context, merchantID, id string) (*model.Promotion, error)
	ListPromotions(ctx context.Context, filters *dto.PromotionFilters) ([]model.Promotion, int, error)
	SetPromotionActive(ctx context.Context, merchantID, id string, active bool) (*model.Promotion, error)
	DeletePromotion(ctx context.Context, input *dto.DeletePromotionInput) error
}

package override

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/override/dto"
)

type Repository interface {
	Create(ctx context.Context, o *model.PriceOverride) error
	Update(ctx context.Context, o *model.PriceOverride) error
	Delete(ctx context.Context, merchantID, id string) error
	FindByID(ctx context.Context, merchantID, id string) (*model.PriceOverride, error)
	// FindByScope matches on (product, branch, channel) where a nil id means "all".
	FindByScope(ctx context.Context, merchantID, productID string, branchID, channelID *string) (*model.PriceOverride, error)
	FindAll(ctx context.Context, filters *dto.OverrideFilters) ([]model.PriceOverride, error)
	FindByProducts(ctx context.Context, merchantID string, productIDs []string) ([]model.PriceOverride, error)
}

type ProductReader interface {
	FindByID(ctx context.Context, merchantID, id string) (*model.Product, error)
}

type PromotionReader interface {
	FindActive(ctx context.Context, merchantID string) ([]model.Promotion, error)
}

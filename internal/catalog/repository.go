package catalog

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
)

// Repository reads products owned by the catalog service, joined with their category name.
type Repository interface {
	FindByID(ctx context.Context, merchantID, id string) (*model.Product, error)
	FindByIDs(ctx context.Context, merchantID string, ids []string) ([]model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
}

// OverrideReader loads the price overrides that take part in resolution.
type OverrideReader interface {
	FindByProducts(ctx context.Context, merchantID string, productIDs []string) ([]model.PriceOverride, error)
}

// PromotionReader loads the merchant's active promotions; validity by date and scope is
// decided by the resolver.
type PromotionReader interface {
	FindActive(ctx context.Context, merchantID string) ([]model.Promotion, error)
}

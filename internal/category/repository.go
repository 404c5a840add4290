package category

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/category/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
)

// Repository reads categories owned by the catalog service.
type Repository interface {
	FindByID(ctx context.Context, merchantID, id string) (*model.Category, error)
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	// FindByKeys returns the merchant's categories whose id or name is one of keys.
	FindByKeys(ctx context.Context, merchantID string, keys []string) ([]model.Category, error)
}

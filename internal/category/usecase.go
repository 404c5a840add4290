package category

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/category/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
)

type UseCase interface {
	GetCategory(ctx context.Context, merchantID, id string) (*model.Category, error)
	ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	// UnknownTargets returns the promotion category targets that match no category.
	UnknownTargets(ctx context.Context, merchantID string, targets []string) ([]string, error)
}

package catalog

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
)

type UseCase interface {
	GetProduct(ctx context.Context, merchantID, id string) (*model.Product, error)
	ListPricedProducts(ctx context.Context, filters *dto.PricedProductFilters) (*dto.PricedProductPage, error)
	ReindexProducts(ctx context.Context, merchantID string) (int, error)
}

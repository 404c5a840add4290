package override

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/override/dto"
)

type UseCase interface {
	UpsertOverride(ctx context.Context, input *dto.UpsertOverrideInput) (*model.PriceOverride, error)
	ListOverrides(ctx context.Context, filters *dto.OverrideFilters) ([]model.PriceOverride, error)
	DeleteOverride(ctx context.Context, input *dto.DeleteOverrideInput) error
	ResolvePrice(ctx context.Context, input *dto.ResolvePriceInput) (*dto.ResolvedPrice, error)
}

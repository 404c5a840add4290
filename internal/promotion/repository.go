package promotion

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/promotion/dto"
)

type Repository interface {
	Create(ctx context.Context, p *model.Promotion) error
	Update(ctx context.Context, p *model.Promotion) error
	SetActive(ctx context.Context, merchantID, id string, active bool, at time.Time) error
	Delete(ctx context.Context, merchantID, id string) error
	FindByID(ctx context.Context, merchantID, id string) (*model.Promotion, error)
	FindAll(ctx context.Context, filters *dto.PromotionFilters) ([]model.Promotion, int, error)
	// FindActive returns active promotions oldest first.
	FindActive(ctx context.Context, merchantID string) ([]model.Promotion, error)
}

// CategoryChecker reports category targets that match no category of the merchant.
type CategoryChecker interface {
	UnknownTargets(ctx context.Context, merchantID string, targets []string) ([]string, error)
}

package pin

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
)

type Repository interface {
	FindByUser(ctx context.Context, merchantID, userID string) (*model.UserPIN, error)
	Upsert(ctx context.Context, p *model.UserPIN) error
}

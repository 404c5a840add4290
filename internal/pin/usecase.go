package pin

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/pin/dto"
)

// Verifier re-authorizes sensitive operations (price overrides, promotion deletion).
type Verifier interface {
	Verify(ctx context.Context, merchantID, userID, pin string) (bool, error)
}

type UseCase interface {
	Verifier
	SetPIN(ctx context.Context, input *dto.SetPINInput) error
}

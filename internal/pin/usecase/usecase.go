package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pin"
	"github.com/fekuna/omnipos-pricing-service/internal/pin/dto"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/pkg/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type pinUseCase struct {
	repo   pin.Repository
	cost   int
	logger logger.ZapLogger
}

// NewPINUseCase hashes with the given bcrypt cost; 0 means bcrypt.DefaultCost.
func NewPINUseCase(repo pin.Repository, cost int, log logger.ZapLogger) pin.UseCase {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &pinUseCase{repo: repo, cost: cost, logger: log}
}

func (uc *pinUseCase) Verify(ctx context.Context, merchantID, userID, candidate string) (bool, error) {
	if merchantID == "" || userID == "" || candidate == "" {
		return false, nil
	}
	stored, err := uc.repo.FindByUser(ctx, merchantID, userID)
	if err != nil {
		return false, err
	}
	if stored == nil {
		return false, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(stored.PINHash), []byte(candidate))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.logger.Warn("pin mismatch", zap.String("merchant_id", merchantID), zap.String("user_id", userID))
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (uc *pinUseCase) SetPIN(ctx context.Context, input *dto.SetPINInput) error {
	if err := validation.Struct(input); err != nil {
		return apperr.Invalid("%v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.PIN), uc.cost)
	if err != nil {
		return err
	}

	return uc.repo.Upsert(ctx, &model.UserPIN{
		MerchantID: input.MerchantID,
		UserID:     input.UserID,
		PINHash:    string(hash),
		UpdatedAt:  time.Now(),
	})
}

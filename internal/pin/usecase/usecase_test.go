package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pin/dto"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memRepo struct {
	pins map[string]*model.UserPIN
}

func (m *memRepo) FindByUser(_ context.Context, merchantID, userID string) (*model.UserPIN, error) {
	return m.pins[merchantID+"/"+userID], nil
}

func (m *memRepo) Upsert(_ context.Context, p *model.UserPIN) error {
	m.pins[p.MerchantID+"/"+p.UserID] = p
	return nil
}

func TestPIN_SetAndVerify(t *testing.T) {
	repo := &memRepo{pins: map[string]*model.UserPIN{}}
	uc := NewPINUseCase(repo, bcrypt.MinCost, logger.NewNop())
	ctx := context.Background()

	ok, err := uc.Verify(ctx, "m1", "u1", "1234")
	require.NoError(t, err)
	assert.False(t, ok, "no stored pin")

	require.NoError(t, uc.SetPIN(ctx, &dto.SetPINInput{MerchantID: "m1", UserID: "u1", PIN: "1234"}))
	assert.NotEqual(t, "1234", repo.pins["m1/u1"].PINHash)

	ok, err = uc.Verify(ctx, "m1", "u1", "1234")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Verify(ctx, "m1", "u1", "4321")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.Verify(ctx, "m2", "u1", "1234")
	require.NoError(t, err)
	assert.False(t, ok, "pins are per merchant")
}

func TestPIN_SetRejectsBadFormat(t *testing.T) {
	uc := NewPINUseCase(&memRepo{pins: map[string]*model.UserPIN{}}, bcrypt.MinCost, logger.NewNop())
	for _, p := range []string{"", "123", "123456789", "12a4"} {
		err := uc.SetPIN(context.Background(), &dto.SetPINInput{MerchantID: "m1", UserID: "u1", PIN: p})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput, p)
	}
}

package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/promotion/dto"
	"github.com/fekuna/omnipos-pricing-service/pkg/cache"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu    sync.Mutex
	items []model.Promotion
}

func (m *memRepo) Create(_ context.Context, p *model.Promotion) error {
	m.items = append(m.items, *p)
	return nil
}

func (m *memRepo) Update(_ context.Context, p *model.Promotion) error {
	for i := range m.items {
		if m.items[i].ID == p.ID {
			m.items[i] = *p
		}
	}
	return nil
}

func (m *memRepo) SetActive(_ context.Context, _, id string, active bool, at time.Time) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].IsActive = active
			m.items[i].UpdatedAt = at
		}
	}
	return nil
}

func (m *memRepo) Delete(_ context.Context, _, id string) error {
	for i := range m.items {
		if m.items[i].ID == id && !m.items[i].IsActive {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memRepo) FindByID(_ context.Context, merchantID, id string) (*model.Promotion, error) {
	for _, p := range m.items {
		if p.ID == id && p.MerchantID == merchantID {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memRepo) FindAll(_ context.Context, f *dto.PromotionFilters) ([]model.Promotion, int, error) {
	var out []model.Promotion
	for _, p := range m.items {
		if !f.ActiveOnly || p.IsActive {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (m *memRepo) FindActive(ctx context.Context, merchantID string) ([]model.Promotion, error) {
	out, _, err := m.FindAll(ctx, &dto.PromotionFilters{MerchantID: merchantID, ActiveOnly: true})
	return out, err
}

type knownCategories map[string]bool

func (k knownCategories) UnknownTargets(_ context.Context, _ string, targets []string) ([]string, error) {
	var unknown []string
	for _, t := range targets {
		if !k[t] {
			unknown = append(unknown, t)
		}
	}
	return unknown, nil
}

type pinStub string

func (s pinStub) Verify(_ context.Context, _, _, candidate string) (bool, error) {
	return candidate == string(s), nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, string, any) error { return nil }

var today = time.Date(2026, 10, 19, 23, 30, 0, 0, time.FixedZone("COT", -5*3600))

func newUC() (*promotionUseCase, *memRepo, *cache.MemoryStore) {
	repo := &memRepo{}
	store := cache.NewMemoryStore()
	uc := NewPromotionUseCase(repo, knownCategories{"cat-bebidas": true, "Postres": true}, pinStub("2468"),
		store, nopPublisher{}, pricing.Options{Location: today.Location()}, logger.NewNop()).(*promotionUseCase)
	uc.now = func() time.Time { return today }
	return uc, repo, store
}

func discountInput(typ model.PromotionType) *dto.PromotionInput {
	return &dto.PromotionInput{
		MerchantID: "m1",
		Name:       "Happy hour",
		Type:       typ,
		Value:      decimal.NewFromInt(15),
		Config:     model.PromotionConfig{DiscountType: model.DiscountPercentage},
		StartDate:  "2026-10-01",
		EndDate:    "2026-10-31",
		IsActive:   true,
	}
}

func TestCreatePromotion(t *testing.T) {
	uc, repo, store := newUC()
	ctx := context.Background()
	require.NoError(t, store.SetJSON(ctx, "catalog:priced:m1:k", 1, time.Minute))

	in := discountInput(model.PromotionGlobalDiscount)
	in.ScopeChannels = []string{" X ", "X", ""}
	p, err := uc.CreatePromotion(ctx, in)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "2026-10-31", p.EndDate.String())
	assert.Equal(t, []string{"X"}, []string(p.ScopeChannels))
	assert.Len(t, repo.items, 1)
	assert.Empty(t, store.Keys())
}

func TestCreatePromotion_Validation(t *testing.T) {
	uc, _, _ := newUC()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.PromotionInput)
	}{
		{"missing name", func(in *dto.PromotionInput) { in.Name = "" }},
		{"unknown type", func(in *dto.PromotionInput) { in.Type = "bogo" }},
		{"negative value", func(in *dto.PromotionInput) { in.Value = decimal.NewFromInt(-5) }},
		{"bad start", func(in *dto.PromotionInput) { in.StartDate = "01/10/2026" }},
		{"end before start", func(in *dto.PromotionInput) { in.EndDate = "2026-09-30" }},
		{"missing discount kind", func(in *dto.PromotionInput) { in.Config.DiscountType = "" }},
		{"product discount without targets", func(in *dto.PromotionInput) { in.Type = model.PromotionProductDiscount }},
		{"category discount with unknown category", func(in *dto.PromotionInput) {
			in.Type = model.PromotionCategoryDiscount
			in.TargetCategories = []string{"cat-bebidas", "Panadería"}
		}},
		{"buy x get y without quantities", func(in *dto.PromotionInput) { in.Type = model.PromotionBuyXGetY }},
		{"combo without price", func(in *dto.PromotionInput) {
			in.Type = model.PromotionCombo
			in.Config.ComboProductIDs = []string{"p1", "p2"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := discountInput(model.PromotionGlobalDiscount)
			tt.mutate(in)
			_, err := uc.CreatePromotion(ctx, in)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		})
	}
}

func TestCreatePromotion_CategoryByIDOrName(t *testing.T) {
	uc, _, _ := newUC()
	in := discountInput(model.PromotionCategoryDiscount)
	in.TargetCategories = []string{"cat-bebidas", "Postres"}
	p, err := uc.CreatePromotion(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat-bebidas", "Postres"}, []string(p.TargetCategories))
}

func TestUpdatePromotion(t *testing.T) {
	uc, repo, _ := newUC()
	ctx := context.Background()
	p, err := uc.CreatePromotion(ctx, discountInput(model.PromotionGlobalDiscount))
	require.NoError(t, err)

	in := discountInput(model.PromotionBuyXGetY)
	in.ID = p.ID
	in.Config = model.PromotionConfig{BuyQty: 2, GetQty: 1}
	in.EndDate = ""
	updated, err := uc.UpdatePromotion(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, model.PromotionBuyXGetY, updated.Type)
	assert.Nil(t, updated.EndDate)
	assert.Equal(t, model.PromotionBuyXGetY, repo.items[0].Type)

	in.ID = "missing"
	_, err = uc.UpdatePromotion(ctx, in)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListPromotions_ValidNow(t *testing.T) {
	uc, repo, _ := newUC()
	day := func(d int) model.Date { return model.Date{Year: 2026, Month: time.October, Day: d} }
	end19, end18 := day(19), day(18)
	repo.items = []model.Promotion{
		{BaseModel: model.BaseModel{ID: "ends-today"}, MerchantID: "m1", IsActive: true, StartDate: day(1), EndDate: &end19},
		{BaseModel: model.BaseModel{ID: "ended"}, MerchantID: "m1", IsActive: true, StartDate: day(1), EndDate: &end18},
		{BaseModel: model.BaseModel{ID: "other-channel"}, MerchantID: "m1", IsActive: true, StartDate: day(1), ScopeChannels: []string{"Y"}},
		{BaseModel: model.BaseModel{ID: "inactive"}, MerchantID: "m1", IsActive: false, StartDate: day(1)},
		{BaseModel: model.BaseModel{ID: "open"}, MerchantID: "m1", IsActive: true, StartDate: day(19)},
	}

	got, total, err := uc.ListPromotions(context.Background(), &dto.PromotionFilters{MerchantID: "m1", ValidNow: true, ChannelID: "X", BranchID: "A"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, "ends-today", got[0].ID)
	assert.Equal(t, "open", got[1].ID)

	got, _, err = uc.ListPromotions(context.Background(), &dto.PromotionFilters{MerchantID: "m1", ValidNow: true, ChannelID: "X", PageSize: 1, Page: 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "open", got[0].ID)
}

func TestDeletePromotion(t *testing.T) {
	uc, repo, _ := newUC()
	ctx := context.Background()
	p, err := uc.CreatePromotion(ctx, discountInput(model.PromotionGlobalDiscount))
	require.NoError(t, err)

	del := &dto.DeletePromotionInput{MerchantID: "m1", UserID: "u1", ID: p.ID, PIN: "0000"}
	assert.ErrorIs(t, uc.DeletePromotion(ctx, del), apperr.ErrPINRejected)

	del.PIN = "2468"
	assert.ErrorIs(t, uc.DeletePromotion(ctx, del), apperr.ErrPromotionActive)

	toggled, err := uc.SetPromotionActive(ctx, "m1", p.ID, false)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	require.NoError(t, uc.DeletePromotion(ctx, del))
	assert.Empty(t, repo.items)

	assert.ErrorIs(t, uc.DeletePromotion(ctx, del), apperr.ErrNotFound)
}

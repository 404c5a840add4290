package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/override/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/pkg/cache"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	items []model.PriceOverride
}

func same(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (m *memRepo) Create(_ context.Context, o *model.PriceOverride) error {
	m.items = append(m.items, *o)
	return nil
}

func (m *memRepo) Update(_ context.Context, o *model.PriceOverride) error {
	for i := range m.items {
		if m.items[i].ID == o.ID {
			m.items[i] = *o
		}
	}
	return nil
}

func (m *memRepo) Delete(_ context.Context, _, id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memRepo) FindByID(_ context.Context, merchantID, id string) (*model.PriceOverride, error) {
	for _, o := range m.items {
		if o.ID == id && o.MerchantID == merchantID {
			return &o, nil
		}
	}
	return nil, nil
}

func (m *memRepo) FindByScope(_ context.Context, merchantID, productID string, branchID, channelID *string) (*model.PriceOverride, error) {
	for _, o := range m.items {
		if o.MerchantID == merchantID && o.ProductID == productID && same(o.BranchID, branchID) && same(o.ChannelID, channelID) {
			return &o, nil
		}
	}
	return nil, nil
}

func (m *memRepo) FindAll(_ context.Context, f *dto.OverrideFilters) ([]model.PriceOverride, error) {
	var out []model.PriceOverride
	for _, o := range m.items {
		if o.MerchantID == f.MerchantID && (f.ProductID == "" || o.ProductID == f.ProductID) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memRepo) FindByProducts(_ context.Context, merchantID string, _ []string) ([]model.PriceOverride, error) {
	return m.FindAll(context.Background(), &dto.OverrideFilters{MerchantID: merchantID})
}

type products map[string]model.Product

func (p products) FindByID(_ context.Context, merchantID, id string) (*model.Product, error) {
	if v, ok := p[id]; ok && v.MerchantID == merchantID {
		return &v, nil
	}
	return nil, nil
}

type promotions []model.Promotion

func (p promotions) FindActive(context.Context, string) ([]model.Promotion, error) { return p, nil }

type pinStub string

func (s pinStub) Verify(_ context.Context, _, _, candidate string) (bool, error) {
	return candidate == string(s), nil
}

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) Publish(_ context.Context, eventType, _, _ string, _ any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventType)
	return nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type fixture struct {
	uc    *overrideUseCase
	repo  *memRepo
	store *cache.MemoryStore
	pub   *recorder
}

func newFixture(promos promotions) *fixture {
	f := &fixture{repo: &memRepo{}, store: cache.NewMemoryStore(), pub: &recorder{}}
	catalog := products{"p1": {BaseModel: model.BaseModel{ID: "p1"}, MerchantID: "m1", BasePrice: decimal.NewFromInt(10000)}}
	f.uc = NewOverrideUseCase(f.repo, catalog, promos, pinStub("2468"), f.store, f.pub,
		pricing.Options{Location: time.UTC}, logger.NewNop()).(*overrideUseCase)
	f.uc.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	return f
}

func upsert(price int64, branch, channel string) *dto.UpsertOverrideInput {
	return &dto.UpsertOverrideInput{
		MerchantID: "m1",
		UserID:     "u1",
		ProductID:  "p1",
		BranchID:   branch,
		ChannelID:  channel,
		Price:      decimal.NewFromInt(price),
		IsActive:   true,
		PIN:        "2468",
	}
}

func TestUpsertOverride_CreatesThenUpdates(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	require.NoError(t, f.store.SetJSON(ctx, "catalog:priced:m1:abc", 1, time.Minute))

	created, err := f.uc.UpsertOverride(ctx, upsert(9000, "A", ""))
	require.NoError(t, err)
	assert.Equal(t, "A", created.BranchIDValue())
	assert.Nil(t, created.ChannelID)
	assert.Empty(t, f.store.Keys(), "priced listings are invalidated")

	updated, err := f.uc.UpsertOverride(ctx, upsert(8500, "A", ""))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	require.Len(t, f.repo.items, 1)
	assert.True(t, decimal.NewFromInt(8500).Equal(f.repo.items[0].Price))

	_, err = f.uc.UpsertOverride(ctx, upsert(8000, "A", "X"))
	require.NoError(t, err)
	assert.Len(t, f.repo.items, 2)

	assert.Eventually(t, func() bool { return len(f.pub.types()) == 3 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "price_override.upserted", f.pub.types()[0])
}

func TestUpsertOverride_Rejections(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	in := upsert(9000, "", "")
	in.PIN = "0000"
	_, err := f.uc.UpsertOverride(ctx, in)
	assert.ErrorIs(t, err, apperr.ErrPINRejected)

	_, err = f.uc.UpsertOverride(ctx, upsert(-1, "", ""))
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	in = upsert(9000, "", "")
	in.ProductID = "ghost"
	_, err = f.uc.UpsertOverride(ctx, in)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.Empty(t, f.repo.items)
}

func TestDeleteOverride(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	o, err := f.uc.UpsertOverride(ctx, upsert(9000, "", "X"))
	require.NoError(t, err)

	err = f.uc.DeleteOverride(ctx, &dto.DeleteOverrideInput{MerchantID: "m1", UserID: "u1", ID: o.ID, PIN: "1111"})
	assert.ErrorIs(t, err, apperr.ErrPINRejected)

	require.NoError(t, f.uc.DeleteOverride(ctx, &dto.DeleteOverrideInput{MerchantID: "m1", UserID: "u1", ID: o.ID, PIN: "2468"}))
	assert.Empty(t, f.repo.items)

	err = f.uc.DeleteOverride(ctx, &dto.DeleteOverrideInput{MerchantID: "m1", UserID: "u1", ID: o.ID, PIN: "2468"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestResolvePrice(t *testing.T) {
	promos := promotions{{
		BaseModel: model.BaseModel{ID: "promo"},
		Type:      model.PromotionFixedAmount,
		Value:     decimal.NewFromInt(1000),
		StartDate: model.Date{Year: 2026, Month: time.October, Day: 19},
		EndDate:   &model.Date{Year: 2026, Month: time.October, Day: 19},
		IsActive:  true,
	}}
	f := newFixture(promos)
	ctx := context.Background()
	_, err := f.uc.UpsertOverride(ctx, upsert(9000, "A", "X"))
	require.NoError(t, err)

	res, err := f.uc.ResolvePrice(ctx, &dto.ResolvePriceInput{MerchantID: "m1", ProductID: "p1", BranchID: "A", ChannelID: "X"})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8000).Equal(res.Price), res.Price.String())
	assert.True(t, decimal.NewFromInt(10000).Equal(res.BasePrice))
	require.NotNil(t, res.AppliedPromotion)
	assert.Equal(t, "promo", res.AppliedPromotion.ID)

	res, err = f.uc.ResolvePrice(ctx, &dto.ResolvePriceInput{MerchantID: "m1", ProductID: "p1", BranchID: "B", ChannelID: "X"})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(9000).Equal(res.Price), "base 10000 minus 1000")
	assert.Nil(t, res.Override)

	_, err = f.uc.ResolvePrice(ctx, &dto.ResolvePriceInput{MerchantID: "m1", ProductID: "nope"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

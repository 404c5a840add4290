package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/pkg/cache"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/pkg/search"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducts struct {
	products []model.Product
	findAll  int
}

func (f *fakeProducts) FindByID(_ context.Context, merchantID, id string) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID == id && p.MerchantID == merchantID {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) FindByIDs(_ context.Context, merchantID string, ids []string) ([]model.Product, error) {
	var out []model.Product
	for _, id := range ids {
		if p, _ := f.FindByID(context.Background(), merchantID, id); p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) FindAll(_ context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	f.findAll++
	start := (filters.Page - 1) * filters.PageSize
	if start >= len(f.products) {
		return nil, len(f.products), nil
	}
	end := min(start+filters.PageSize, len(f.products))
	return f.products[start:end], len(f.products), nil
}

type fakeOverrides []model.PriceOverride

func (f fakeOverrides) FindByProducts(context.Context, string, []string) ([]model.PriceOverride, error) {
	return f, nil
}

type fakePromotions []model.Promotion

func (f fakePromotions) FindActive(context.Context, string) ([]model.Promotion, error) {
	return f, nil
}

type fakeSearch struct {
	hits    []string
	err     error
	indexed []string
}

func (f *fakeSearch) CreateIndex(context.Context, string, string) error { return nil }

func (f *fakeSearch) Index(_ context.Context, _ string, id string, _ any) error {
	f.indexed = append(f.indexed, id)
	return nil
}

func (f *fakeSearch) Search(context.Context, string, map[string]any) (*search.SearchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	res := &search.SearchResponse{}
	res.Hits.Total.Value = len(f.hits)
	for _, id := range f.hits {
		res.Hits.Hits = append(res.Hits.Hits, struct {
			ID     string          `json:"_id"`
			Source json.RawMessage `json:"_source"`
		}{ID: id})
	}
	return res, nil
}

func (f *fakeSearch) Delete(context.Context, string, string) error { return nil }

func prod(id, price string) model.Product {
	return model.Product{
		BaseModel:  model.BaseModel{ID: id},
		MerchantID: "m1",
		Name:       "Producto " + id,
		BasePrice:  decimal.RequireFromString(price),
		IsActive:   true,
	}
}

func ptr(s string) *string { return &s }

var fixedNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

func newUC(repo *fakeProducts, ov fakeOverrides, promos fakePromotions, store cache.JSONStore, es search.Searcher) *catalogUseCase {
	uc := NewCatalogUseCase(repo, ov, promos, store, es, pricing.Options{Location: time.UTC}, logger.NewNop()).(*catalogUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func filters() *dto.PricedProductFilters {
	return &dto.PricedProductFilters{
		ProductFilters: dto.ProductFilters{MerchantID: "m1"},
		BranchID:       "A",
		ChannelID:      "X",
	}
}

func TestListPricedProducts_ResolvesEachProduct(t *testing.T) {
	repo := &fakeProducts{products: []model.Product{prod("p1", "10000"), prod("p2", "8000")}}
	overrides := fakeOverrides{
		{BaseModel: model.BaseModel{ID: "o1"}, ProductID: "p2", ChannelID: ptr("X"), Price: decimal.NewFromInt(7000), IsActive: true},
	}
	promos := fakePromotions{{
		BaseModel: model.BaseModel{ID: "promo"},
		Name:      "10% todo",
		Type:      model.PromotionPercentage,
		Value:     decimal.NewFromInt(10),
		StartDate: model.Date{Year: 2026, Month: time.October, Day: 1},
		IsActive:  true,
	}}

	page, err := newUC(repo, overrides, promos, nil, nil).ListPricedProducts(context.Background(), filters())
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Total)

	assert.True(t, decimal.NewFromInt(9000).Equal(page.Items[0].Price), page.Items[0].Price.String())
	assert.Equal(t, "promo", page.Items[0].AppliedPromotion.ID)

	assert.True(t, decimal.NewFromInt(6300).Equal(page.Items[1].Price), page.Items[1].Price.String())
	assert.Equal(t, "o1", page.Items[1].OverrideID)
}

func TestListPricedProducts_OnlySellable(t *testing.T) {
	repo := &fakeProducts{products: []model.Product{prod("p1", "10000"), prod("p2", "8000")}}
	overrides := fakeOverrides{
		{ProductID: "p1", BranchID: ptr("A"), ChannelID: ptr("X"), Price: decimal.NewFromInt(1), IsActive: false},
	}
	f := filters()
	f.OnlySellable = true

	page, err := newUC(repo, overrides, nil, nil, nil).ListPricedProducts(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "p2", page.Items[0].Product.ID)
	assert.Equal(t, 1, page.Total)
}

func TestListPricedProducts_Cached(t *testing.T) {
	repo := &fakeProducts{products: []model.Product{prod("p1", "10000")}}
	store := cache.NewMemoryStore()
	uc := newUC(repo, nil, nil, store, nil)

	first, err := uc.ListPricedProducts(context.Background(), filters())
	require.NoError(t, err)
	second, err := uc.ListPricedProducts(context.Background(), filters())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.findAll)
	assert.True(t, first.Items[0].Price.Equal(second.Items[0].Price))
	require.Len(t, store.Keys(), 1)
	assert.Contains(t, store.Keys()[0], "catalog:priced:m1:")
}

func TestListPricedProducts_SearchAndFallback(t *testing.T) {
	repo := &fakeProducts{products: []model.Product{prod("p1", "10000"), prod("p2", "8000"), prod("p3", "500")}}
	es := &fakeSearch{hits: []string{"p3", "p1"}}
	f := filters()
	f.SearchQuery = "prod"

	page, err := newUC(repo, nil, nil, nil, es).ListPricedProducts(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "p3", page.Items[0].Product.ID)
	assert.Equal(t, 0, repo.findAll)

	es.err = errors.New("cluster unavailable")
	f = filters()
	f.SearchQuery = "prod"
	page, err = newUC(repo, nil, nil, nil, es).ListPricedProducts(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 1, repo.findAll)
}

func TestListPricedProducts_RequiresMerchant(t *testing.T) {
	_, err := newUC(&fakeProducts{}, nil, nil, nil, nil).ListPricedProducts(context.Background(), &dto.PricedProductFilters{})
	assert.ErrorIs(t, err, apperr.ErrMissingMerchant)
}

func TestGetProduct_NotFound(t *testing.T) {
	_, err := newUC(&fakeProducts{}, nil, nil, nil, nil).GetProduct(context.Background(), "m1", "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReindexProducts(t *testing.T) {
	var products []model.Product
	for i := 0; i < reindexPageSize+5; i++ {
		products = append(products, prod(fmt.Sprintf("p%d", i), "1"))
	}
	es := &fakeSearch{}
	n, err := newUC(&fakeProducts{products: products}, nil, nil, nil, es).ReindexProducts(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, reindexPageSize+5, n)
	assert.Len(t, es.indexed, reindexPageSize+5)

	_, err = newUC(&fakeProducts{}, nil, nil, nil, nil).ReindexProducts(context.Background(), "m1")
	assert.ErrorIs(t, err, apperr.ErrBusy)
}

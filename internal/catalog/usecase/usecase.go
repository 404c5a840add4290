package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/pkg/cache"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/pkg/metrics"
	"github.com/fekuna/omnipos-pricing-service/pkg/search"
	"go.uber.org/zap"
)

const (
	pricedCacheTTL  = 5 * time.Minute
	defaultPageSize = 20
	maxPageSize     = 100
	reindexPageSize = 200
)

var errSearchDisabled = fmt.Errorf("%w: search is not configured", apperr.ErrBusy)

const productMapping = `{
	"mappings": {
		"properties": {
			"merchant_id": { "type": "keyword" },
			"category_id": { "type": "keyword" },
			"name": { "type": "text" },
			"description": { "type": "text" },
			"sku": { "type": "keyword" },
			"barcode": { "type": "keyword" },
			"base_price": { "type": "double" },
			"is_active": { "type": "boolean" },
			"created_at": { "type": "date" }
		}
	}
}`

type catalogUseCase struct {
	repo       catalog.Repository
	overrides  catalog.OverrideReader
	promotions catalog.PromotionReader
	cache      cache.JSONStore
	es         search.Searcher
	opts       pricing.Options
	now        func() time.Time
	logger     logger.ZapLogger
}

// NewCatalogUseCase builds the priced catalog. store and es may be nil; listings are then
// neither cached nor searched through Elasticsearch.
func NewCatalogUseCase(
	repo catalog.Repository,
	overrides catalog.OverrideReader,
	promotions catalog.PromotionReader,
	store cache.JSONStore,
	es search.Searcher,
	opts pricing.Options,
	log logger.ZapLogger,
) catalog.UseCase {
	return &catalogUseCase{
		repo:       repo,
		overrides:  overrides,
		promotions: promotions,
		cache:      store,
		es:         es,
		opts:       opts,
		now:        time.Now,
		logger:     log,
	}
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, merchantID, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product")
	}
	return p, nil
}

func (uc *catalogUseCase) ListPricedProducts(ctx context.Context, filters *dto.PricedProductFilters) (*dto.PricedProductPage, error) {
	if filters.MerchantID == "" {
		return nil, apperr.ErrMissingMerchant
	}
	normalizePage(&filters.ProductFilters)

	// 1. Cache
	cacheKey, err := catalog.PricedCacheKey(filters.MerchantID, filters)
	if err == nil && uc.cache != nil {
		var cached dto.PricedProductPage
		hit, err := uc.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			uc.logger.Warn("priced catalog cache read failed", zap.Error(err))
		}
		if hit {
			return &cached, nil
		}
	}

	// 2. Products: Elasticsearch for text queries, database otherwise or on search failure
	products, total, err := uc.findProducts(ctx, &filters.ProductFilters)
	if err != nil {
		return nil, err
	}

	// 3. Resolution inputs for this page
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	overrides, err := uc.overrides.FindByProducts(ctx, filters.MerchantID, ids)
	if err != nil {
		return nil, err
	}
	promotions, err := uc.promotions.FindActive(ctx, filters.MerchantID)
	if err != nil {
		return nil, err
	}

	rctx := uc.opts.Context(filters.BranchID, filters.ChannelID, uc.now())
	page := &dto.PricedProductPage{Items: make([]dto.PricedProduct, 0, len(products)), Total: total}
	for i := range products {
		res := pricing.Resolve(&products[i], overrides, promotions, rctx)
		observe(res)
		if filters.OnlySellable && !res.Sellable {
			page.Total--
			continue
		}
		item := dto.PricedProduct{
			Product:          products[i],
			Price:            res.Price,
			AppliedPromotion: res.AppliedPromotion,
			Sellable:         res.Sellable,
		}
		if res.Override != nil {
			item.OverrideID = res.Override.ID
		}
		page.Items = append(page.Items, item)
	}

	// 4. Cache
	if cacheKey != "" && uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, cacheKey, page, pricedCacheTTL); err != nil {
			uc.logger.Warn("priced catalog cache write failed", zap.Error(err))
		}
	}
	return page, nil
}

func (uc *catalogUseCase) findProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	if f.SearchQuery != "" && uc.es != nil {
		products, total, err := uc.searchProducts(ctx, f)
		if err == nil {
			return products, total, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}
	return uc.repo.FindAll(ctx, f)
}

func (uc *catalogUseCase) searchProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	must := []map[string]any{
		{
			"query_string": map[string]any{
				"query":  fmt.Sprintf("*%s*", f.SearchQuery),
				"fields": []string{"name^3", "sku", "barcode", "description"},
			},
		},
		{"term": map[string]any{"merchant_id": f.MerchantID}},
	}
	if f.CategoryID != "" {
		must = append(must, map[string]any{"term": map[string]any{"category_id": f.CategoryID}})
	}
	if f.IsActive != nil {
		must = append(must, map[string]any{"term": map[string]any{"is_active": *f.IsActive}})
	}
	q := map[string]any{
		"query": map[string]any{"bool": map[string]any{"must": must}},
		"from":  (f.Page - 1) * f.PageSize,
		"size":  f.PageSize,
	}

	res, err := uc.es.Search(ctx, catalog.ProductIndex, q)
	if err != nil {
		return nil, 0, err
	}

	// Hits only rank; prices and names come from the database.
	ids := make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		ids = append(ids, hit.ID)
	}
	products, err := uc.repo.FindByIDs(ctx, f.MerchantID, ids)
	if err != nil {
		return nil, 0, err
	}
	return products, res.Hits.Total.Value, nil
}

func (uc *catalogUseCase) ReindexProducts(ctx context.Context, merchantID string) (int, error) {
	if uc.es == nil {
		return 0, errSearchDisabled
	}
	if err := uc.es.CreateIndex(ctx, catalog.ProductIndex, productMapping); err != nil {
		return 0, fmt.Errorf("create product index: %w", err)
	}

	indexed := 0
	filters := &dto.ProductFilters{MerchantID: merchantID, Page: 1, PageSize: reindexPageSize}
	for {
		products, _, err := uc.repo.FindAll(ctx, filters)
		if err != nil {
			return indexed, err
		}
		for i := range products {
			if err := uc.es.Index(ctx, catalog.ProductIndex, products[i].ID, &products[i]); err != nil {
				return indexed, fmt.Errorf("index product %s: %w", products[i].ID, err)
			}
			indexed++
		}
		if len(products) < filters.PageSize {
			break
		}
		filters.Page++
	}

	uc.logger.Info("products reindexed", zap.String("merchant_id", merchantID), zap.Int("count", indexed))
	return indexed, nil
}

func normalizePage(f *dto.ProductFilters) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = defaultPageSize
	}
	f.PageSize = min(f.PageSize, maxPageSize)
}

func observe(res pricing.Result) {
	promoType := ""
	if res.AppliedPromotion != nil {
		promoType = string(res.AppliedPromotion.Type)
	}
	metrics.ObservePriceResolution(res.Override != nil, promoType)
}


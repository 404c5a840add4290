package handler

import (
	"context"

	pricingv1 "github.com/fekuna/omnipos-pricing-service/api/pricingv1"
	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/auth"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/category"
	catDTO "github.com/fekuna/omnipos-pricing-service/internal/category/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
)

type CatalogHandler struct {
	pricingv1.UnimplementedCatalogServiceServer

	uc         catalog.UseCase
	categoryUC category.UseCase
	logger     logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, categoryUC category.UseCase, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		uc:         uc,
		categoryUC: categoryUC,
		logger:     log,
	}
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *pricingv1.GetProductRequest) (*pricingv1.ProductResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	p, err := h.uc.GetProduct(ctx, merchantID, req.ID)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.ProductResponse{Product: MapProduct(p)}, nil
}

func (h *CatalogHandler) ListPricedProducts(ctx context.Context, req *pricingv1.ListPricedProductsRequest) (*pricingv1.ListPricedProductsResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	active := true
	filters := &dto.PricedProductFilters{
		ProductFilters: dto.ProductFilters{
			MerchantID:  merchantID,
			CategoryID:  req.CategoryID,
			IsActive:    &active,
			SearchQuery: req.Query,
			Page:        int(req.Page),
			PageSize:    int(req.PageSize),
		},
		BranchID:     req.BranchID,
		ChannelID:    req.ChannelID,
		OnlySellable: req.OnlySellable,
	}

	page, err := h.uc.ListPricedProducts(ctx, filters)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}

	items := make([]*pricingv1.PricedProduct, len(page.Items))
	for i := range page.Items {
		it := &page.Items[i]
		items[i] = &pricingv1.PricedProduct{
			Product:          MapProduct(&it.Product),
			Price:            it.Price,
			DisplayPrice:     catalog.DisplayPrice(it.Price),
			OverrideID:       it.OverrideID,
			AppliedPromotion: MapAppliedPromotion(it.AppliedPromotion),
			Sellable:         it.Sellable,
		}
	}

	return &pricingv1.ListPricedProductsResponse{
		Items:    items,
		Total:    int32(page.Total),
		Page:     int32(filters.Page),
		PageSize: int32(filters.PageSize),
	}, nil
}

func (h *CatalogHandler) ReindexProducts(ctx context.Context, _ *pricingv1.ReindexProductsRequest) (*pricingv1.ReindexProductsResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	n, err := h.uc.ReindexProducts(ctx, merchantID)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.ReindexProductsResponse{Indexed: int32(n)}, nil
}

func (h *CatalogHandler) ListCategories(ctx context.Context, req *pricingv1.ListCategoriesRequest) (*pricingv1.ListCategoriesResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	filters := &catDTO.CategoryFilters{MerchantID: merchantID}
	if req.ActiveOnly {
		b := true
		filters.IsActive = &b
	}

	categories, _, err := h.categoryUC.ListCategories(ctx, filters)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}

	out := make([]*pricingv1.Category, len(categories))
	for i := range categories {
		out[i] = mapCategory(&categories[i])
	}
	return &pricingv1.ListCategoriesResponse{Categories: out}, nil
}

// MapProduct converts a product to its wire form.
func MapProduct(m *model.Product) *pricingv1.Product {
	if m == nil {
		return nil
	}
	return &pricingv1.Product{
		ID:           m.ID,
		MerchantID:   m.MerchantID,
		CategoryID:   m.CategoryIDValue(),
		CategoryName: m.CategoryNameValue(),
		SKU:          m.SKU,
		Barcode:      deref(m.Barcode),
		Name:         m.Name,
		Description:  deref(m.Description),
		BasePrice:    m.BasePrice,
		CostPrice:    m.CostPrice,
		TaxRate:      m.TaxRate,
		ImageURL:     deref(m.ImageURL),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func MapAppliedPromotion(p *model.Promotion) *pricingv1.AppliedPromotion {
	if p == nil {
		return nil
	}
	return &pricingv1.AppliedPromotion{
		ID:       p.ID,
		Name:     p.Name,
		Type:     string(p.Type),
		Priority: p.Priority,
	}
}

func mapCategory(c *model.Category) *pricingv1.Category {
	return &pricingv1.Category{
		ID:          c.ID,
		ParentID:    deref(c.ParentID),
		Name:        c.Name,
		Description: deref(c.Description),
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

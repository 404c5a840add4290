package handler

import (
	"context"

	pricingv1 "github.com/fekuna/omnipos-pricing-service/api/pricingv1"
	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/auth"
	"github.com/fekuna/omnipos-pricing-service/internal/inventory"
	"github.com/fekuna/omnipos-pricing-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/wac"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
)

type InventoryHandler struct {
	pricingv1.UnimplementedInventoryServiceServer
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) CreateInventoryItem(ctx context.Context, req *pricingv1.CreateInventoryItemRequest) (*pricingv1.InventoryItemResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	item, err := h.uc.CreateItem(ctx, &dto.CreateItemInput{
		MerchantID:   merchantID,
		SKU:          req.SKU,
		Name:         req.Name,
		Presentation: presentation(req.Presentation),
		PackageCost:  req.PackageCost,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.InventoryItemResponse{Item: mapItem(item)}, nil
}

func (h *InventoryHandler) UpdateInventoryPresentation(ctx context.Context, req *pricingv1.UpdateInventoryPresentationRequest) (*pricingv1.InventoryItemResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	item, err := h.uc.UpdatePresentation(ctx, &dto.UpdatePresentationInput{
		MerchantID:   merchantID,
		ID:           req.ID,
		Presentation: presentation(req.Presentation),
		PackageCost:  req.PackageCost,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.InventoryItemResponse{Item: mapItem(item)}, nil
}

func (h *InventoryHandler) GetInventoryItem(ctx context.Context, req *pricingv1.GetInventoryItemRequest) (*pricingv1.InventoryItemResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	item, err := h.uc.GetItem(ctx, merchantID, req.ID)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.InventoryItemResponse{Item: mapItem(item)}, nil
}

func (h *InventoryHandler) ListInventoryItems(ctx context.Context, req *pricingv1.ListInventoryItemsRequest) (*pricingv1.ListInventoryItemsResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	items, count, err := h.uc.ListItems(ctx, &dto.ItemFilters{
		MerchantID: merchantID,
		Query:      req.Query,
		Page:       int(req.Page),
		PageSize:   int(req.PageSize),
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}

	out := make([]*pricingv1.InventoryItem, len(items))
	for i := range items {
		out[i] = mapItem(&items[i])
	}
	return &pricingv1.ListInventoryItemsResponse{Items: out, Total: int32(count)}, nil
}

func (h *InventoryHandler) PreviewUnitConversion(ctx context.Context, req *pricingv1.PreviewUnitConversionRequest) (*pricingv1.UnitConversion, error) {
	if req.PackageCost != nil && req.PackageCost.IsNegative() {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.Invalid("package_cost must be >= 0"))
	}
	conv := h.uc.PreviewConversion(presentation(req.Presentation), req.PackageCost)
	return &pricingv1.UnitConversion{
		BuyingUnit:       conv.BuyingUnit,
		ConversionFactor: conv.ConversionFactor,
		UsageUnit:        string(conv.UsageUnit),
		UnitCost:         conv.UnitCost,
	}, nil
}

func (h *InventoryHandler) AdjustBranchStock(ctx context.Context, req *pricingv1.AdjustBranchStockRequest) (*pricingv1.BranchStock, error) {
	user := auth.GetUserContext(ctx)
	if user.MerchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	input := &dto.AdjustStockInput{
		MerchantID:     user.MerchantID,
		BranchID:       req.BranchID,
		IngredientID:   req.IngredientID,
		QuantityChange: req.QuantityChange,
		Reason:         req.Reason,
		ReferenceID:    req.ReferenceID,
		UserID:         user.UserID,
	}
	if req.ReferenceID != "" {
		input.ReferenceType = "manual_adjustment"
	}

	stock, err := h.uc.AdjustStock(ctx, input)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return mapStock(stock), nil
}

func (h *InventoryHandler) ReceivePurchase(ctx context.Context, req *pricingv1.ReceivePurchaseRequest) (*pricingv1.ReceivePurchaseResponse, error) {
	user := auth.GetUserContext(ctx)
	if user.MerchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	stock, unitCost, err := h.uc.ReceivePurchase(ctx, &dto.ReceivePurchaseInput{
		MerchantID:   user.MerchantID,
		BranchID:     req.BranchID,
		IngredientID: req.IngredientID,
		Packages:     req.Packages,
		PackageCost:  req.PackageCost,
		ReferenceID:  req.ReferenceID,
		Notes:        req.Notes,
		UserID:       user.UserID,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.ReceivePurchaseResponse{Stock: mapStock(stock), UnitCost: unitCost}, nil
}

func (h *InventoryHandler) ListLowStock(ctx context.Context, req *pricingv1.ListLowStockRequest) (*pricingv1.ListLowStockResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	items, count, err := h.uc.ListLowStock(ctx, &dto.StockFilters{
		MerchantID: merchantID,
		BranchID:   req.BranchID,
		Page:       int(req.Page),
		PageSize:   int(req.PageSize),
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}

	entries := make([]*pricingv1.BranchStock, len(items))
	for i := range items {
		entries[i] = mapStock(&items[i])
	}
	return &pricingv1.ListLowStockResponse{Items: entries, Total: int32(count)}, nil
}

func (h *InventoryHandler) ListInventoryMovements(ctx context.Context, req *pricingv1.ListInventoryMovementsRequest) (*pricingv1.ListInventoryMovementsResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	movements, count, err := h.uc.ListMovements(ctx, &dto.MovementFilters{
		MerchantID:   merchantID,
		BranchID:     req.BranchID,
		IngredientID: req.IngredientID,
		MovementType: req.MovementType,
		Page:         int(req.Page),
		PageSize:     int(req.PageSize),
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}

	out := make([]*pricingv1.InventoryMovement, len(movements))
	for i := range movements {
		out[i] = mapMovement(&movements[i])
	}
	return &pricingv1.ListInventoryMovementsResponse{Movements: out, Total: int32(count)}, nil
}

func (h *InventoryHandler) SetRecipe(ctx context.Context, req *pricingv1.SetRecipeRequest) (*pricingv1.RecipeResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	lines := make([]model.RecipeLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = model.RecipeLine{IngredientID: l.IngredientID, QuantityRequired: l.QuantityRequired}
	}
	saved, err := h.uc.SetRecipe(ctx, &dto.SetRecipeInput{MerchantID: merchantID, ProductID: req.ProductID, Lines: lines})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return mapRecipe(req.ProductID, saved), nil
}

func (h *InventoryHandler) GetRecipe(ctx context.Context, req *pricingv1.GetRecipeRequest) (*pricingv1.RecipeResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	lines, err := h.uc.GetRecipe(ctx, merchantID, req.ProductID)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return mapRecipe(req.ProductID, lines), nil
}

func (h *InventoryHandler) GetTheoreticalStock(ctx context.Context, req *pricingv1.GetTheoreticalStockRequest) (*pricingv1.TheoreticalStockResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}
	if req.BranchID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.Invalid("branch_id is required"))
	}

	units, err := h.uc.TheoreticalStock(ctx, merchantID, req.ProductID, req.BranchID)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.TheoreticalStockResponse{ProductID: req.ProductID, BranchID: req.BranchID, Units: int32(units)}, nil
}

func presentation(p pricingv1.Presentation) wac.Presentation {
	return wac.Presentation{Name: p.Name, Content: p.Content, Unit: p.Unit}
}

func mapItem(item *model.InventoryItem) *pricingv1.InventoryItem {
	p := wac.PresentationOf(item)
	return &pricingv1.InventoryItem{
		ID:               item.ID,
		SKU:              item.SKU,
		Name:             item.Name,
		UsageUnit:        string(item.UsageUnit),
		BuyingUnit:       item.BuyingUnit,
		Presentation:     pricingv1.Presentation{Name: p.Name, Content: p.Content, Unit: p.Unit},
		ConversionFactor: item.ConversionFactor,
		UnitCost:         item.UnitCost,
		IsActive:         item.IsActive,
		UpdatedAt:        item.UpdatedAt,
	}
}

func mapStock(s *model.BranchIngredient) *pricingv1.BranchStock {
	return &pricingv1.BranchStock{
		ID:            s.ID,
		BranchID:      s.BranchID,
		IngredientID:  s.IngredientID,
		CurrentStock:  s.CurrentStock,
		MinStockAlert: s.MinStockAlert,
		IsActive:      s.IsActive,
		UpdatedAt:     s.UpdatedAt,
	}
}

func mapMovement(m *model.InventoryMovement) *pricingv1.InventoryMovement {
	return &pricingv1.InventoryMovement{
		ID:             m.ID,
		BranchID:       m.BranchID,
		IngredientID:   m.IngredientID,
		MovementType:   m.MovementType,
		QuantityChange: m.QuantityChange,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		UnitCost:       m.UnitCost,
		ReferenceType:  deref(m.ReferenceType),
		ReferenceID:    deref(m.ReferenceID),
		Notes:          m.Notes,
		CreatedBy:      deref(m.CreatedBy),
		CreatedAt:      m.CreatedAt,
	}
}

func mapRecipe(productID string, lines []model.RecipeLine) *pricingv1.RecipeResponse {
	out := make([]pricingv1.RecipeLine, len(lines))
	for i, l := range lines {
		out[i] = pricingv1.RecipeLine{IngredientID: l.IngredientID, QuantityRequired: l.QuantityRequired}
	}
	return &pricingv1.RecipeResponse{ProductID: productID, Lines: out}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

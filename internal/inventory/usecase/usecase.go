package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/events"
	"github.com/fekuna/omnipos-pricing-service/internal/inventory"
	"github.com/fekuna/omnipos-pricing-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/recipe"
	"github.com/fekuna/omnipos-pricing-service/internal/wac"
	"github.com/fekuna/omnipos-pricing-service/pkg/cache"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/pkg/metrics"
	"github.com/fekuna/omnipos-pricing-service/pkg/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	lockAttempts   = 3
	lockRetryDelay = 100 * time.Millisecond
	lockTTL        = 5 * time.Second
)

type inventoryUseCase struct {
	repo      inventory.Repository
	products  inventory.ProductReader
	locker    cache.Locker
	publisher events.Publisher
	now       func() time.Time
	logger    logger.ZapLogger
}

func NewInventoryUseCase(
	repo inventory.Repository,
	products inventory.ProductReader,
	locker cache.Locker,
	publisher events.Publisher,
	log logger.ZapLogger,
) inventory.UseCase {
	return &inventoryUseCase{
		repo:      repo,
		products:  products,
		locker:    locker,
		publisher: publisher,
		now:       time.Now,
		logger:    log,
	}
}

func (uc *inventoryUseCase) CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.InventoryItem, error) {
	if err := validation.Struct(input); err != nil {
		return nil, apperr.Invalid("%v", err)
	}
	if err := checkPackageCost(input.PackageCost); err != nil {
		return nil, err
	}

	sku := strings.TrimSpace(input.SKU)
	existing, err := uc.repo.FindItemBySKU(ctx, input.MerchantID, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrSKUExists
	}

	now := uc.now()
	item := &model.InventoryItem{
		BaseModel:  model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		MerchantID: input.MerchantID,
		SKU:        sku,
		Name:       strings.TrimSpace(input.Name),
		IsActive:   true,
	}
	wac.Apply(item, input.Presentation, wac.ComputePresentation(input.Presentation, input.PackageCost))

	if err := uc.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	uc.publish(item.MerchantID, events.InventoryItemChanged, item.ID, item)
	return item, nil
}

// UpdatePresentation recomputes the conversion of an item. The unit cost only moves when a
// package cost comes with the new presentation.
func (uc *inventoryUseCase) UpdatePresentation(ctx context.Context, input *dto.UpdatePresentationInput) (*model.InventoryItem, error) {
	if err := validation.Struct(input); err != nil {
		return nil, apperr.Invalid("%v", err)
	}
	if err := checkPackageCost(input.PackageCost); err != nil {
		return nil, err
	}

	item, err := uc.GetItem(ctx, input.MerchantID, input.ID)
	if err != nil {
		return nil, err
	}

	wac.Apply(item, input.Presentation, wac.ComputePresentation(input.Presentation, input.PackageCost))
	item.UpdatedAt = uc.now()

	if err := uc.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	uc.publish(item.MerchantID, events.InventoryItemChanged, item.ID, item)
	return item, nil
}

func (uc *inventoryUseCase) GetItem(ctx context.Context, merchantID, id string) (*model.InventoryItem, error) {
	item, err := uc.repo.FindItemByID(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("inventory item")
	}
	return item, nil
}

func (uc *inventoryUseCase) ListItems(ctx context.Context, filters *dto.ItemFilters) ([]model.InventoryItem, int, error) {
	return uc.repo.FindItems(ctx, filters)
}

func (uc *inventoryUseCase) PreviewConversion(p wac.Presentation, packageCost *decimal.Decimal) wac.Conversion {
	return wac.ComputePresentation(p, packageCost)
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.BranchIngredient, error) {
	if err := validation.Struct(input); err != nil {
		return nil, apperr.Invalid("%v", err)
	}
	movementType := input.MovementType
	if movementType == "" {
		movementType = model.MovementAdjustment
	}

	var stock *model.BranchIngredient
	err := uc.withLock(ctx, input.MerchantID, input.BranchID, input.IngredientID, func() error {
		if _, err := uc.GetItem(ctx, input.MerchantID, input.IngredientID); err != nil {
			return err
		}

		current, err := uc.loadStock(ctx, input.MerchantID, input.BranchID, input.IngredientID)
		if err != nil {
			return err
		}

		before := current.CurrentStock
		after := before + input.QuantityChange
		if after < 0 {
			return fmt.Errorf("%w: %s has %g, change %g", apperr.ErrInsufficientStock, input.IngredientID, before, input.QuantityChange)
		}

		now := uc.now()
		current.CurrentStock = after
		current.UpdatedAt = now

		movement := &model.InventoryMovement{
			ID:             uuid.New().String(),
			MerchantID:     input.MerchantID,
			BranchID:       input.BranchID,
			IngredientID:   input.IngredientID,
			MovementType:   movementType,
			QuantityChange: input.QuantityChange,
			QuantityBefore: before,
			QuantityAfter:  after,
			ReferenceType:  optional(input.ReferenceType),
			ReferenceID:    optional(input.ReferenceID),
			Notes:          input.Reason,
			CreatedBy:      createdBy(input.UserID),
			CreatedAt:      now,
		}
		if err := uc.repo.AdjustStockWithMovement(ctx, current, movement, nil); err != nil {
			return err
		}
		stock = current
		return nil
	})
	metrics.StockAdjustments.WithLabelValues(movementType, outcome(err)).Inc()
	if err != nil {
		return nil, err
	}
	return stock, nil
}

// ReceivePurchase books packages of an ingredient into branch stock and blends the package's
// per-usage-unit cost into the item's weighted average cost.
func (uc *inventoryUseCase) ReceivePurchase(ctx context.Context, input *dto.ReceivePurchaseInput) (*model.BranchIngredient, decimal.Decimal, error) {
	if err := validation.Struct(input); err != nil {
		return nil, decimal.Zero, apperr.Invalid("%v", err)
	}

	var (
		stock    *model.BranchIngredient
		unitCost decimal.Decimal
	)
	err := uc.withLock(ctx, input.MerchantID, input.BranchID, input.IngredientID, func() error {
		item, err := uc.GetItem(ctx, input.MerchantID, input.IngredientID)
		if err != nil {
			return err
		}
		conv := wac.ComputePresentation(wac.PresentationOf(item), &input.PackageCost)
		if !conv.ConversionFactor.IsPositive() {
			return apperr.Invalid("inventory item %s has no usable presentation", item.SKU)
		}

		current, err := uc.loadStock(ctx, input.MerchantID, input.BranchID, input.IngredientID)
		if err != nil {
			return err
		}

		received := decimal.NewFromFloat(input.Packages).Mul(conv.ConversionFactor).InexactFloat64()
		before := current.CurrentStock
		now := uc.now()

		if conv.UnitCost != nil {
			item.UnitCost = wac.WeightedAverage(before, item.UnitCost, received, *conv.UnitCost)
		}
		item.UpdatedAt = now

		current.CurrentStock = before + received
		current.UpdatedAt = now

		movement := &model.InventoryMovement{
			ID:             uuid.New().String(),
			MerchantID:     input.MerchantID,
			BranchID:       input.BranchID,
			IngredientID:   input.IngredientID,
			MovementType:   model.MovementPurchase,
			QuantityChange: received,
			QuantityBefore: before,
			QuantityAfter:  current.CurrentStock,
			UnitCost:       conv.UnitCost,
			ReferenceType:  optional(model.MovementPurchase),
			ReferenceID:    optional(input.ReferenceID),
			Notes:          input.Notes,
			CreatedBy:      createdBy(input.UserID),
			CreatedAt:      now,
		}
		if err := uc.repo.AdjustStockWithMovement(ctx, current, movement, item); err != nil {
			return err
		}
		stock, unitCost = current, item.UnitCost
		return nil
	})
	metrics.StockAdjustments.WithLabelValues(model.MovementPurchase, outcome(err)).Inc()
	if err != nil {
		return nil, decimal.Zero, err
	}
	return stock, unitCost, nil
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context, filters *dto.StockFilters) ([]model.BranchIngredient, int, error) {
	return uc.repo.FindLowStock(ctx, filters)
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}

// SetRecipe replaces the recipe of a product. Every ingredient must exist and appear once.
func (uc *inventoryUseCase) SetRecipe(ctx context.Context, input *dto.SetRecipeInput) ([]model.RecipeLine, error) {
	if err := validation.Struct(input); err != nil {
		return nil, apperr.Invalid("%v", err)
	}
	p, err := uc.products.FindByID(ctx, input.MerchantID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product")
	}

	now := uc.now()
	lines := make([]model.RecipeLine, 0, len(input.Lines))
	ids := make([]string, 0, len(input.Lines))
	seen := make(map[string]struct{}, len(input.Lines))
	for _, l := range input.Lines {
		id := strings.TrimSpace(l.IngredientID)
		if id == "" {
			return nil, apperr.Invalid("recipe line without ingredient_id")
		}
		if l.QuantityRequired < 0 {
			return nil, apperr.Invalid("quantity_required for %s must be >= 0", id)
		}
		if _, dup := seen[id]; dup {
			return nil, apperr.Invalid("ingredient %s appears twice", id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
		lines = append(lines, model.RecipeLine{
			MerchantID:       input.MerchantID,
			ProductID:        input.ProductID,
			IngredientID:     id,
			QuantityRequired: l.QuantityRequired,
			UpdatedAt:        now,
		})
	}

	found, err := uc.repo.FindItemsByIDs(ctx, input.MerchantID, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		known := make(map[string]struct{}, len(found))
		for _, it := range found {
			known[it.ID] = struct{}{}
		}
		var missing []string
		for _, id := range ids {
			if _, ok := known[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, apperr.Invalid("unknown ingredients: %s", strings.Join(missing, ", "))
	}

	if err := uc.repo.ReplaceRecipe(ctx, input.MerchantID, input.ProductID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (uc *inventoryUseCase) GetRecipe(ctx context.Context, merchantID, productID string) ([]model.RecipeLine, error) {
	return uc.repo.FindRecipe(ctx, merchantID, productID)
}

func (uc *inventoryUseCase) TheoreticalStock(ctx context.Context, merchantID, productID, branchID string) (int, error) {
	lines, err := uc.repo.FindRecipe(ctx, merchantID, productID)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, nil
	}

	ids := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.IngredientID
	}
	stocks, err := uc.repo.BranchStockFor(ctx, merchantID, branchID, ids)
	if err != nil {
		return 0, err
	}

	byIngredient := make(map[string]float64, len(stocks))
	for _, s := range stocks {
		byIngredient[s.IngredientID] = s.CurrentStock
	}
	return recipe.TheoreticalStock(lines, byIngredient), nil
}

// DeductSale takes a sold order line out of branch stock through the product's recipe.
// Products without a recipe are not stock tracked. Every ingredient is checked before anything
// is written, and all movements of the sale commit together.
func (uc *inventoryUseCase) DeductSale(ctx context.Context, input *dto.SaleInput) error {
	if input.Quantity <= 0 {
		return nil
	}
	lines, err := uc.repo.FindRecipe(ctx, input.MerchantID, input.ProductID)
	if err != nil {
		return err
	}
	needs := recipe.Requirements(lines, input.Quantity)
	if len(needs) == 0 {
		uc.logger.Debug("product has no recipe, nothing to deduct", zap.String("product_id", input.ProductID))
		return nil
	}

	ids := make([]string, 0, len(needs))
	for id := range needs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	err = uc.withLocks(ctx, input.MerchantID, input.BranchID, ids, func() error {
		found, err := uc.repo.FindItemsByIDs(ctx, input.MerchantID, ids)
		if err != nil {
			return err
		}
		if len(found) != len(ids) {
			return apperr.NotFound("inventory item")
		}

		now := uc.now()
		changes := make([]inventory.StockChange, 0, len(ids))
		for _, id := range ids {
			current, err := uc.loadStock(ctx, input.MerchantID, input.BranchID, id)
			if err != nil {
				return err
			}
			before := current.CurrentStock
			after := before - needs[id]
			if after < 0 {
				return fmt.Errorf("%w: %s has %g, needs %g", apperr.ErrInsufficientStock, id, before, needs[id])
			}
			current.CurrentStock = after
			current.UpdatedAt = now

			changes = append(changes, inventory.StockChange{
				Stock: current,
				Movement: &model.InventoryMovement{
					ID:             uuid.New().String(),
					MerchantID:     input.MerchantID,
					BranchID:       input.BranchID,
					IngredientID:   id,
					MovementType:   model.MovementSale,
					QuantityChange: -needs[id],
					QuantityBefore: before,
					QuantityAfter:  after,
					ReferenceType:  optional(model.MovementSale),
					ReferenceID:    optional(input.OrderID),
					Notes:          "Order Sale",
					CreatedBy:      createdBy("system"),
					CreatedAt:      now,
				},
			})
		}
		return uc.repo.ApplyMovements(ctx, changes)
	})
	metrics.StockAdjustments.WithLabelValues(model.MovementSale, outcome(err)).Inc()
	if err != nil {
		return fmt.Errorf("deduct sale of product %s: %w", input.ProductID, err)
	}
	return nil
}

// withLocks holds the stock locks of several ingredients at one branch. ingredientIDs must be
// sorted so concurrent sales take locks in the same order.
func (uc *inventoryUseCase) withLocks(ctx context.Context, merchantID, branchID string, ingredientIDs []string, fn func() error) error {
	if len(ingredientIDs) == 0 {
		return fn()
	}
	return uc.withLock(ctx, merchantID, branchID, ingredientIDs[0], func() error {
		return uc.withLocks(ctx, merchantID, branchID, ingredientIDs[1:], fn)
	})
}

// withLock runs fn while holding the stock lock of one ingredient at one branch.
func (uc *inventoryUseCase) withLock(ctx context.Context, merchantID, branchID, ingredientID string, fn func() error) error {
	lockKey := fmt.Sprintf("lock:inventory:%s:%s:%s", merchantID, branchID, ingredientID)
	lockValue := uuid.New().String()

	acquired := false
	for i := 0; i < lockAttempts; i++ {
		ok, err := uc.locker.AcquireLock(ctx, lockKey, lockValue, lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire lock redis error", zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		if i == lockAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
	if !acquired {
		return apperr.ErrBusy
	}
	defer func() {
		if err := uc.locker.ReleaseLock(context.Background(), lockKey, lockValue); err != nil {
			uc.logger.Warn("failed to release stock lock", zap.String("key", lockKey), zap.Error(err))
		}
	}()

	return fn()
}

func (uc *inventoryUseCase) loadStock(ctx context.Context, merchantID, branchID, ingredientID string) (*model.BranchIngredient, error) {
	stock, err := uc.repo.GetBranchStock(ctx, merchantID, branchID, ingredientID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		stock = &model.BranchIngredient{
			ID:           uuid.New().String(),
			MerchantID:   merchantID,
			BranchID:     branchID,
			IngredientID: ingredientID,
			IsActive:     true,
		}
	}
	return stock, nil
}

func (uc *inventoryUseCase) publish(merchantID, eventType, entityID string, payload any) {
	go func() {
		_ = uc.publisher.Publish(context.Background(), eventType, merchantID, entityID, payload)
	}()
}

func checkPackageCost(cost *decimal.Decimal) error {
	if cost != nil && cost.IsNegative() {
		return apperr.Invalid("package_cost must be >= 0")
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func createdBy(userID string) *string {
	if userID == "" || userID == "unknown" {
		return nil
	}
	return &userID
}

func outcome(err error) string {
	if err != nil {
		return "rejected"
	}
	return "ok"
}

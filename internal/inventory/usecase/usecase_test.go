package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/inventory"
	"github.com/fekuna/omnipos-pricing-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/wac"
	"github.com/fekuna/omnipos-pricing-service/pkg/cache"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu        sync.Mutex
	items     map[string]*model.InventoryItem
	stock     map[string]*model.BranchIngredient
	movements []model.InventoryMovement
	recipes   map[string][]model.RecipeLine
}

func newMemRepo() *memRepo {
	return &memRepo{
		items:   map[string]*model.InventoryItem{},
		stock:   map[string]*model.BranchIngredient{},
		recipes: map[string][]model.RecipeLine{},
	}
}

func stockKey(branchID, ingredientID string) string { return branchID + "/" + ingredientID }

func (m *memRepo) CreateItem(_ context.Context, item *model.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *memRepo) UpdateItem(ctx context.Context, item *model.InventoryItem) error {
	return m.CreateItem(ctx, item)
}

func (m *memRepo) FindItemByID(_ context.Context, _, id string) (*model.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if it, ok := m.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (m *memRepo) FindItemBySKU(_ context.Context, _, sku string) (*model.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.SKU == sku {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRepo) FindItemsByIDs(ctx context.Context, merchantID string, ids []string) ([]model.InventoryItem, error) {
	var out []model.InventoryItem
	for _, id := range ids {
		if it, _ := m.FindItemByID(ctx, merchantID, id); it != nil {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (m *memRepo) FindItems(context.Context, *dto.ItemFilters) ([]model.InventoryItem, int, error) {
	return nil, 0, nil
}

func (m *memRepo) GetBranchStock(_ context.Context, _, branchID, ingredientID string) (*model.BranchIngredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stock[stockKey(branchID, ingredientID)]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (m *memRepo) BranchStockFor(ctx context.Context, merchantID, branchID string, ids []string) ([]model.BranchIngredient, error) {
	var out []model.BranchIngredient
	for _, id := range ids {
		if s, _ := m.GetBranchStock(ctx, merchantID, branchID, id); s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memRepo) FindLowStock(context.Context, *dto.StockFilters) ([]model.BranchIngredient, int, error) {
	return nil, 0, nil
}

func (m *memRepo) ListMovements(context.Context, *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return m.movements, len(m.movements), nil
}

func (m *memRepo) AdjustStockWithMovement(_ context.Context, stock *model.BranchIngredient, movement *model.InventoryMovement, item *model.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *stock
	m.stock[stockKey(stock.BranchID, stock.IngredientID)] = &cp
	m.movements = append(m.movements, *movement)
	if item != nil {
		m.items[item.ID].UnitCost = item.UnitCost
	}
	return nil
}

func (m *memRepo) ApplyMovements(_ context.Context, changes []inventory.StockChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range changes {
		cp := *c.Stock
		m.stock[stockKey(c.Stock.BranchID, c.Stock.IngredientID)] = &cp
		m.movements = append(m.movements, *c.Movement)
	}
	return nil
}

func (m *memRepo) ReplaceRecipe(_ context.Context, _, productID string, lines []model.RecipeLine) error {
	m.recipes[productID] = lines
	return nil
}

func (m *memRepo) FindRecipe(_ context.Context, _, productID string) ([]model.RecipeLine, error) {
	return m.recipes[productID], nil
}

type products map[string]bool

func (p products) FindByID(_ context.Context, merchantID, id string) (*model.Product, error) {
	if !p[id] {
		return nil, nil
	}
	return &model.Product{BaseModel: model.BaseModel{ID: id}, MerchantID: merchantID}, nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, string, any) error { return nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func newUC() (*inventoryUseCase, *memRepo, *cache.MemoryStore) {
	repo := newMemRepo()
	store := cache.NewMemoryStore()
	uc := NewInventoryUseCase(repo, products{"arepa": true}, store, nopPublisher{}, logger.NewNop()).(*inventoryUseCase)
	uc.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }
	return uc, repo, store
}

func createFlour(t *testing.T, uc *inventoryUseCase) *model.InventoryItem {
	t.Helper()
	item, err := uc.CreateItem(context.Background(), &dto.CreateItemInput{
		MerchantID:   "m1",
		SKU:          "HAR-01",
		Name:         "Harina",
		Presentation: wac.Presentation{Name: "Bulto", Content: dec("50"), Unit: "kg"},
		PackageCost:  ptr(dec("100000")),
	})
	require.NoError(t, err)
	return item
}

func TestCreateItem(t *testing.T) {
	uc, _, _ := newUC()
	item := createFlour(t, uc)

	assert.Equal(t, model.UsageUnitGram, item.UsageUnit)
	assert.Equal(t, "Bulto 50kg", item.BuyingUnit)
	assert.True(t, item.ConversionFactor.Equal(dec("50000")))
	assert.True(t, item.UnitCost.Equal(dec("2")))

	_, err := uc.CreateItem(context.Background(), &dto.CreateItemInput{
		MerchantID: "m1", SKU: "HAR-01", Name: "Otra harina",
		Presentation: wac.Presentation{Name: "Bolsa", Content: dec("1"), Unit: "kg"},
	})
	assert.ErrorIs(t, err, apperr.ErrSKUExists)

	_, err = uc.CreateItem(context.Background(), &dto.CreateItemInput{MerchantID: "m1", Name: "Sin sku"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestUpdatePresentation_KeepsCostWithoutPackageCost(t *testing.T) {
	uc, _, _ := newUC()
	item := createFlour(t, uc)

	updated, err := uc.UpdatePresentation(context.Background(), &dto.UpdatePresentationInput{
		MerchantID:   "m1",
		ID:           item.ID,
		Presentation: wac.Presentation{Name: "Bolsa", Content: dec("5"), Unit: "lb"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bolsa 5lb", updated.BuyingUnit)
	assert.True(t, updated.ConversionFactor.Equal(dec("2267.95")))
	assert.True(t, updated.UnitCost.Equal(dec("2")))

	_, err = uc.UpdatePresentation(context.Background(), &dto.UpdatePresentationInput{MerchantID: "m1", ID: "nope"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAdjustStock(t *testing.T) {
	uc, repo, _ := newUC()
	item := createFlour(t, uc)
	ctx := context.Background()

	stock, err := uc.AdjustStock(ctx, &dto.AdjustStockInput{
		MerchantID: "m1", BranchID: "b1", IngredientID: item.ID, QuantityChange: 1200, UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, stock.CurrentStock)

	stock, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{
		MerchantID: "m1", BranchID: "b1", IngredientID: item.ID, QuantityChange: -200,
	})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, stock.CurrentStock)

	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{
		MerchantID: "m1", BranchID: "b1", IngredientID: item.ID, QuantityChange: -1000.5,
	})
	assert.ErrorIs(t, err, apperr.ErrInsufficientStock)

	require.Len(t, repo.movements, 2)
	m := repo.movements[1]
	assert.Equal(t, model.MovementAdjustment, m.MovementType)
	assert.Equal(t, 1200.0, m.QuantityBefore)
	assert.Equal(t, 1000.0, m.QuantityAfter)
	assert.Nil(t, m.CreatedBy)
	assert.Equal(t, "u1", *repo.movements[0].CreatedBy)

	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{
		MerchantID: "m1", BranchID: "b1", IngredientID: "ghost", QuantityChange: 1,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAdjustStock_LockHeld(t *testing.T) {
	uc, _, store := newUC()
	item := createFlour(t, uc)
	ctx := context.Background()

	ok, err := store.AcquireLock(ctx, "lock:inventory:m1:b1:"+item.ID, "other", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{
		MerchantID: "m1", BranchID: "b1", IngredientID: item.ID, QuantityChange: 1,
	})
	assert.ErrorIs(t, err, apperr.ErrBusy)

	// another branch is not blocked
	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{
		MerchantID: "m1", BranchID: "b2", IngredientID: item.ID, QuantityChange: 1,
	})
	assert.NoError(t, err)
}

func TestReceivePurchase_WeightedAverage(t *testing.T) {
	uc, repo, store := newUC()
	item := createFlour(t, uc)
	ctx := context.Background()

	_, err := uc.AdjustStock(ctx, &dto.AdjustStockInput{
		MerchantID: "m1", BranchID: "b1", IngredientID: item.ID, QuantityChange: 50000,
	})
	require.NoError(t, err)

	// 1 sack at 150000 -> 3 per gram; (50000*2 + 50000*3) / 100000 = 2.5
	stock, cost, err := uc.ReceivePurchase(ctx, &dto.ReceivePurchaseInput{
		MerchantID: "m1", BranchID: "b1", IngredientID: item.ID, Packages: 1, PackageCost: dec("150000"),
		ReferenceID: "po-7",
	})
	require.NoError(t, err)
	assert.Equal(t, 100000.0, stock.CurrentStock)
	assert.True(t, cost.Equal(dec("2.5")), cost.String())
	assert.True(t, repo.items[item.ID].UnitCost.Equal(dec("2.5")))

	last := repo.movements[len(repo.movements)-1]
	assert.Equal(t, model.MovementPurchase, last.MovementType)
	assert.Equal(t, 50000.0, last.QuantityChange)
	require.NotNil(t, last.UnitCost)
	assert.True(t, last.UnitCost.Equal(dec("3")))
	assert.Equal(t, "po-7", *last.ReferenceID)
	assert.Empty(t, store.Keys(), "lock released")
}

func TestRecipeAndTheoreticalStock(t *testing.T) {
	uc, _, _ := newUC()
	flour := createFlour(t, uc)
	ctx := context.Background()

	_, err := uc.SetRecipe(ctx, &dto.SetRecipeInput{MerchantID: "m1", ProductID: "ghost"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = uc.SetRecipe(ctx, &dto.SetRecipeInput{MerchantID: "m1", ProductID: "arepa", Lines: []model.RecipeLine{
		{IngredientID: flour.ID, QuantityRequired: 120},
		{IngredientID: "queso", QuantityRequired: 30},
	}})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = uc.SetRecipe(ctx, &dto.SetRecipeInput{MerchantID: "m1", ProductID: "arepa", Lines: []model.RecipeLine{
		{IngredientID: flour.ID, QuantityRequired: 120},
		{IngredientID: flour.ID, QuantityRequired: 10},
	}})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	lines, err := uc.SetRecipe(ctx, &dto.SetRecipeInput{MerchantID: "m1", ProductID: "arepa", Lines: []model.RecipeLine{
		{IngredientID: flour.ID, QuantityRequired: 120},
	}})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "arepa", lines[0].ProductID)

	units, err := uc.TheoreticalStock(ctx, "m1", "arepa", "b1")
	require.NoError(t, err)
	assert.Equal(t, 0, units)

	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{MerchantID: "m1", BranchID: "b1", IngredientID: flour.ID, QuantityChange: 1000})
	require.NoError(t, err)

	units, err = uc.TheoreticalStock(ctx, "m1", "arepa", "b1")
	require.NoError(t, err)
	assert.Equal(t, 8, units)
}

func TestDeductSale(t *testing.T) {
	uc, repo, _ := newUC()
	flour := createFlour(t, uc)
	ctx := context.Background()

	_, err := uc.SetRecipe(ctx, &dto.SetRecipeInput{MerchantID: "m1", ProductID: "arepa", Lines: []model.RecipeLine{
		{IngredientID: flour.ID, QuantityRequired: 120},
	}})
	require.NoError(t, err)
	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{MerchantID: "m1", BranchID: "b1", IngredientID: flour.ID, QuantityChange: 1000})
	require.NoError(t, err)

	require.NoError(t, uc.DeductSale(ctx, &dto.SaleInput{MerchantID: "m1", BranchID: "b1", OrderID: "o-1", ProductID: "arepa", Quantity: 3}))
	s, _ := repo.GetBranchStock(ctx, "m1", "b1", flour.ID)
	assert.Equal(t, 640.0, s.CurrentStock)

	last := repo.movements[len(repo.movements)-1]
	assert.Equal(t, model.MovementSale, last.MovementType)
	assert.Equal(t, "o-1", *last.ReferenceID)
	assert.Equal(t, model.MovementSale, *last.ReferenceType)
	assert.Equal(t, -360.0, last.QuantityChange)
	assert.Equal(t, "system", *last.CreatedBy)

	// no recipe, nothing happens
	require.NoError(t, uc.DeductSale(ctx, &dto.SaleInput{MerchantID: "m1", BranchID: "b1", ProductID: "empanada", Quantity: 2}))

	err = uc.DeductSale(ctx, &dto.SaleInput{MerchantID: "m1", BranchID: "b1", ProductID: "arepa", Quantity: 10})
	assert.ErrorIs(t, err, apperr.ErrInsufficientStock)
}

func TestDeductSale_ShortIngredientLeavesStockUntouched(t *testing.T) {
	uc, repo, store := newUC()
	flour := createFlour(t, uc)
	cheese, err := uc.CreateItem(context.Background(), &dto.CreateItemInput{
		MerchantID:   "m1",
		SKU:          "QUE-01",
		Name:         "Queso",
		Presentation: wac.Presentation{Name: "Bloque", Content: dec("1"), Unit: "kg"},
	})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = uc.SetRecipe(ctx, &dto.SetRecipeInput{MerchantID: "m1", ProductID: "arepa", Lines: []model.RecipeLine{
		{IngredientID: flour.ID, QuantityRequired: 100},
		{IngredientID: cheese.ID, QuantityRequired: 50},
	}})
	require.NoError(t, err)
	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{MerchantID: "m1", BranchID: "b1", IngredientID: flour.ID, QuantityChange: 1000})
	require.NoError(t, err)
	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{MerchantID: "m1", BranchID: "b1", IngredientID: cheese.ID, QuantityChange: 10})
	require.NoError(t, err)
	movements := len(repo.movements)

	err = uc.DeductSale(ctx, &dto.SaleInput{MerchantID: "m1", BranchID: "b1", OrderID: "o-2", ProductID: "arepa", Quantity: 2})
	assert.ErrorIs(t, err, apperr.ErrInsufficientStock)

	f, _ := repo.GetBranchStock(ctx, "m1", "b1", flour.ID)
	c, _ := repo.GetBranchStock(ctx, "m1", "b1", cheese.ID)
	assert.Equal(t, 1000.0, f.CurrentStock)
	assert.Equal(t, 10.0, c.CurrentStock)
	assert.Len(t, repo.movements, movements)
	assert.Empty(t, store.Keys(), "locks released")

	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{MerchantID: "m1", BranchID: "b1", IngredientID: cheese.ID, QuantityChange: 90})
	require.NoError(t, err)
	require.NoError(t, uc.DeductSale(ctx, &dto.SaleInput{MerchantID: "m1", BranchID: "b1", OrderID: "o-2", ProductID: "arepa", Quantity: 2}))

	f, _ = repo.GetBranchStock(ctx, "m1", "b1", flour.ID)
	c, _ = repo.GetBranchStock(ctx, "m1", "b1", cheese.ID)
	assert.Equal(t, 800.0, f.CurrentStock)
	assert.Equal(t, 0.0, c.CurrentStock)
	assert.Len(t, repo.movements, movements+3)
}

func TestDeductSale_LockHeldOnAnyIngredient(t *testing.T) {
	uc, repo, store := newUC()
	flour := createFlour(t, uc)
	ctx := context.Background()

	_, err := uc.SetRecipe(ctx, &dto.SetRecipeInput{MerchantID: "m1", ProductID: "arepa", Lines: []model.RecipeLine{
		{IngredientID: flour.ID, QuantityRequired: 100},
	}})
	require.NoError(t, err)
	_, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{MerchantID: "m1", BranchID: "b1", IngredientID: flour.ID, QuantityChange: 1000})
	require.NoError(t, err)

	ok, err := store.AcquireLock(ctx, "lock:inventory:m1:b1:"+flour.ID, "other", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	err = uc.DeductSale(ctx, &dto.SaleInput{MerchantID: "m1", BranchID: "b1", ProductID: "arepa", Quantity: 1})
	assert.ErrorIs(t, err, apperr.ErrBusy)
	s, _ := repo.GetBranchStock(ctx, "m1", "b1", flour.ID)
	assert.Equal(t, 1000.0, s.CurrentStock)
}

package inventory

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
)

type Repository interface {
	// Ingredients
	CreateItem(ctx context.Context, item *model.InventoryItem) error
	UpdateItem(ctx context.Context, item *model.InventoryItem) error
	FindItemByID(ctx context.Context, merchantID, id string) (*model.InventoryItem, error)
	FindItemBySKU(ctx context.Context, merchantID, sku string) (*model.InventoryItem, error)
	FindItemsByIDs(ctx context.Context, merchantID string, ids []string) ([]model.InventoryItem, error)
	FindItems(ctx context.Context, filters *dto.ItemFilters) ([]model.InventoryItem, int, error)

	// Branch stock
	GetBranchStock(ctx context.Context, merchantID, branchID, ingredientID string) (*model.BranchIngredient, error)
	BranchStockFor(ctx context.Context, merchantID, branchID string, ingredientIDs []string) ([]model.BranchIngredient, error)
	FindLowStock(ctx context.Context, filters *dto.StockFilters) ([]model.BranchIngredient, int, error)

	// Movements / Audit
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)

	// Transaction support. item is optional and only its unit cost is written.
	AdjustStockWithMovement(ctx context.Context, stock *model.BranchIngredient, movement *model.InventoryMovement, item *model.InventoryItem) error
	// ApplyMovements writes every change in one transaction, or none of them.
	ApplyMovements(ctx context.Context, changes []StockChange) error

	// Recipes
	ReplaceRecipe(ctx context.Context, merchantID, productID string, lines []model.RecipeLine) error
	FindRecipe(ctx context.Context, merchantID, productID string) ([]model.RecipeLine, error)
}

// StockChange is a branch stock row with the movement that produced it.
type StockChange struct {
	Stock    *model.BranchIngredient
	Movement *model.InventoryMovement
}

type ProductReader interface {
	FindByID(ctx context.Context, merchantID, id string) (*model.Product, error)
}

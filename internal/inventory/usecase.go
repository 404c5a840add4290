package inventory

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/wac"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.InventoryItem, error)
	UpdatePresentation(ctx context.Context, input *dto.UpdatePresentationInput) (*model.InventoryItem, error)
	GetItem(ctx context.Context, merchantID, id string) (*model.InventoryItem, error)
	ListItems(ctx context.Context, filters *dto.ItemFilters) ([]model.InventoryItem, int, error)
	PreviewConversion(p wac.Presentation, packageCost *decimal.Decimal) wac.Conversion

	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.BranchIngredient, error)
	ReceivePurchase(ctx context.Context, input *dto.ReceivePurchaseInput) (*model.BranchIngredient, decimal.Decimal, error)
	ListLowStock(ctx context.Context, filters *dto.StockFilters) ([]model.BranchIngredient, int, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)

	SetRecipe(ctx context.Context, input *dto.SetRecipeInput) ([]model.RecipeLine, error)
	GetRecipe(ctx context.Context, merchantID, productID string) ([]model.RecipeLine, error)
	TheoreticalStock(ctx context.Context, merchantID, productID, branchID string) (int, error)
	DeductSale(ctx context.Context, input *dto.SaleInput) error
}

package dto

import (
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/wac"
	"github.com/shopspring/decimal"
)

type CreateItemInput struct {
	MerchantID   string           `json:"merchant_id" validate:"required"`
	SKU          string           `json:"sku" validate:"required,max=64"`
	Name         string           `json:"name" validate:"required,max=120"`
	Presentation wac.Presentation `json:"presentation"`
	PackageCost  *decimal.Decimal `json:"package_cost"`
}

type UpdatePresentationInput struct {
	MerchantID   string           `json:"merchant_id" validate:"required"`
	ID           string           `json:"id" validate:"required"`
	Presentation wac.Presentation `json:"presentation"`
	PackageCost  *decimal.Decimal `json:"package_cost"` // nil keeps the stored unit cost
}

type AdjustStockInput struct {
	MerchantID     string  `json:"merchant_id" validate:"required"`
	BranchID       string  `json:"branch_id" validate:"required"`
	IngredientID   string  `json:"ingredient_id" validate:"required"`
	QuantityChange float64 `json:"quantity_change" validate:"ne=0"`
	MovementType   string  `json:"movement_type"` // defaults to adjustment
	Reason         string  `json:"reason" validate:"max=255"`
	ReferenceID    string  `json:"reference_id"`
	ReferenceType  string  `json:"reference_type"` // 'manual_adjustment', 'sale'
	UserID         string  `json:"user_id"`
}

type ReceivePurchaseInput struct {
	MerchantID   string          `json:"merchant_id" validate:"required"`
	BranchID     string          `json:"branch_id" validate:"required"`
	IngredientID string          `json:"ingredient_id" validate:"required"`
	Packages     float64         `json:"packages" validate:"gt=0"`
	PackageCost  decimal.Decimal `json:"package_cost" validate:"gte=0"`
	ReferenceID  string          `json:"reference_id"`
	Notes        string          `json:"notes" validate:"max=255"`
	UserID       string          `json:"user_id"`
}

type SetRecipeInput struct {
	MerchantID string             `json:"merchant_id" validate:"required"`
	ProductID  string             `json:"product_id" validate:"required"`
	Lines      []model.RecipeLine `json:"lines"`
}

// SaleInput is one sold order line to be deducted from branch stock through its recipe.
type SaleInput struct {
	MerchantID string
	BranchID   string
	OrderID    string
	ProductID  string
	Quantity   float64
}

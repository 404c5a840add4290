package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type UsageUnit string

const (
	UsageUnitGram       UsageUnit = "g"
	UsageUnitMilliliter UsageUnit = "ml"
	UsageUnitUnit       UsageUnit = "unidad"
)

// InventoryItem is an ingredient bought in presentations (sack, jug, box) and consumed by
// recipes in its usage unit.
type InventoryItem struct {
	BaseModel
	MerchantID          string           `db:"merchant_id" json:"merchant_id"`
	SKU                 string           `db:"sku" json:"sku"`
	Name                string           `db:"name" json:"name"`
	UsageUnit           UsageUnit        `db:"usage_unit" json:"usage_unit"`
	BuyingUnit          string           `db:"buying_unit" json:"buying_unit"` // display only
	PresentationName    *string          `db:"presentation_name" json:"presentation_name"`
	PresentationContent *decimal.Decimal `db:"presentation_content" json:"presentation_content"`
	PresentationUnit    *string          `db:"presentation_unit" json:"presentation_unit"`
	ConversionFactor    decimal.Decimal  `db:"conversion_factor" json:"conversion_factor"`
	UnitCost            decimal.Decimal  `db:"unit_cost" json:"unit_cost"` // per usage unit
	IsActive            bool             `db:"is_active" json:"is_active"`
}

// BranchIngredient is the stock of one ingredient at one branch, in usage units.
type BranchIngredient struct {
	ID            string    `db:"id" json:"id"`
	MerchantID    string    `db:"merchant_id" json:"merchant_id"`
	BranchID      string    `db:"branch_id" json:"branch_id"`
	IngredientID  string    `db:"ingredient_id" json:"ingredient_id"`
	CurrentStock  float64   `db:"current_stock" json:"current_stock"`
	MinStockAlert float64   `db:"min_stock_alert" json:"min_stock_alert"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

const (
	MovementAdjustment = "adjustment"
	MovementPurchase   = "purchase"
	MovementSale       = "sale"
)

type InventoryMovement struct {
	ID             string           `db:"id" json:"id"`
	MerchantID     string           `db:"merchant_id" json:"merchant_id"`
	BranchID       string           `db:"branch_id" json:"branch_id"`
	IngredientID   string           `db:"ingredient_id" json:"ingredient_id"`
	MovementType   string           `db:"movement_type" json:"movement_type"`
	QuantityChange float64          `db:"quantity_change" json:"quantity_change"`
	QuantityBefore float64          `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  float64          `db:"quantity_after" json:"quantity_after"`
	UnitCost       *decimal.Decimal `db:"unit_cost" json:"unit_cost"`
	ReferenceType  *string          `db:"reference_type" json:"reference_type"`
	ReferenceID    *string          `db:"reference_id" json:"reference_id"`
	Notes          string           `db:"notes" json:"notes"`
	CreatedBy      *string          `db:"created_by" json:"created_by"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
}

package pricingv1

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Shared ---

type Product struct {
	ID           string           `json:"id"`
	MerchantID   string           `json:"merchant_id"`
	CategoryID   string           `json:"category_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	SKU          string           `json:"sku"`
	Barcode      string           `json:"barcode,omitempty"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	BasePrice    decimal.Decimal  `json:"base_price"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	TaxRate      decimal.Decimal  `json:"tax_rate"`
	ImageURL     string           `json:"image_url,omitempty"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type Category struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parent_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type PriceOverride struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	BranchID         string          `json:"branch_id,omitempty"`
	ChannelID        string          `json:"channel_id,omitempty"`
	Price            decimal.Decimal `json:"price"`
	IsActive         bool            `json:"is_active"`
	IgnorePromotions bool            `json:"ignore_promotions"`
	CreatedBy        string          `json:"created_by,omitempty"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type PromotionConfig struct {
	DiscountType    string           `json:"discount_type,omitempty"`
	BuyQty          int              `json:"buy_qty,omitempty"`
	GetQty          int              `json:"get_qty,omitempty"`
	ComboPrice      *decimal.Decimal `json:"combo_price,omitempty"`
	ComboProductIDs []string         `json:"combo_product_ids,omitempty"`
}

type Promotion struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	Value            decimal.Decimal `json:"value"`
	Config           PromotionConfig `json:"config"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date,omitempty"`
	ScopeChannels    []string        `json:"scope_channels"`
	ScopeBranches    []string        `json:"scope_branches"`
	Priority         int             `json:"priority"`
	IsActive         bool            `json:"is_active"`
	TargetProductIDs []string        `json:"target_product_ids"`
	TargetCategories []string        `json:"target_categories"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type AppliedPromotion struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Priority int    `json:"priority"`
}

// --- PriceService ---

type ResolvePriceRequest struct {
	ProductID string `json:"product_id"`
	BranchID  string `json:"branch_id"`
	ChannelID string `json:"channel_id"`
}

type ResolvePriceResponse struct {
	ProductID        string            `json:"product_id"`
	BasePrice        decimal.Decimal   `json:"base_price"`
	Price            decimal.Decimal   `json:"price"`
	DisplayPrice     string            `json:"display_price"`
	OverrideID       string            `json:"override_id,omitempty"`
	AppliedPromotion *AppliedPromotion `json:"applied_promotion"`
	Sellable         bool              `json:"sellable"`
}

type UpsertPriceOverrideRequest struct {
	ProductID        string          `json:"product_id"`
	BranchID         string          `json:"branch_id,omitempty"`
	ChannelID        string          `json:"channel_id,omitempty"`
	Price            decimal.Decimal `json:"price"`
	IsActive         bool            `json:"is_active"`
	IgnorePromotions bool            `json:"ignore_promotions"`
	PIN              string          `json:"pin"`
}

type PriceOverrideResponse struct {
	Override *PriceOverride `json:"override"`
}

type ListPriceOverridesRequest struct {
	ProductID string `json:"product_id,omitempty"`
	BranchID  string `json:"branch_id,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
}

type ListPriceOverridesResponse struct {
	Overrides []*PriceOverride `json:"overrides"`
}

type DeletePriceOverrideRequest struct {
	ID  string `json:"id"`
	PIN string `json:"pin"`
}

// --- PromotionService ---

type CreatePromotionRequest struct {
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	Value            decimal.Decimal `json:"value"`
	Config           PromotionConfig `json:"config"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date,omitempty"`
	ScopeChannels    []string        `json:"scope_channels,omitempty"`
	ScopeBranches    []string        `json:"scope_branches,omitempty"`
	Priority         int             `json:"priority"`
	IsActive         bool            `json:"is_active"`
	TargetProductIDs []string        `json:"target_product_ids,omitempty"`
	TargetCategories []string        `json:"target_categories,omitempty"`
}

type UpdatePromotionRequest struct {
	ID string `json:"id"`
	CreatePromotionRequest
}

type PromotionResponse struct {
	Promotion *Promotion `json:"promotion"`
}

type GetPromotionRequest struct {
	ID string `json:"id"`
}

type ListPromotionsRequest struct {
	ActiveOnly bool `json:"active_only,omitempty"`
	// ValidNow keeps promotions valid today for the channel and branch below.
	ValidNow  bool   `json:"valid_now,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
	BranchID  string `json:"branch_id,omitempty"`
	Page      int32  `json:"page,omitempty"`
	PageSize  int32  `json:"page_size,omitempty"`
}

type ListPromotionsResponse struct {
	Promotions []*Promotion `json:"promotions"`
	Total      int32        `json:"total"`
}

type SetPromotionActiveRequest struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

type DeletePromotionRequest struct {
	ID  string `json:"id"`
	PIN string `json:"pin"`
}

// --- CatalogService ---

type GetProductRequest struct {
	ID string `json:"id"`
}

type ProductResponse struct {
	Product *Product `json:"product"`
}

type ListPricedProductsRequest struct {
	BranchID     string `json:"branch_id"`
	ChannelID    string `json:"channel_id"`
	CategoryID   string `json:"category_id,omitempty"`
	Query        string `json:"query,omitempty"`
	OnlySellable bool   `json:"only_sellable,omitempty"`
	Page         int32  `json:"page,omitempty"`
	PageSize     int32  `json:"page_size,omitempty"`
}

type PricedProduct struct {
	Product          *Product          `json:"product"`
	Price            decimal.Decimal   `json:"price"`
	DisplayPrice     string            `json:"display_price"`
	OverrideID       string            `json:"override_id,omitempty"`
	AppliedPromotion *AppliedPromotion `json:"applied_promotion"`
	Sellable         bool              `json:"sellable"`
}

type ListPricedProductsResponse struct {
	Items    []*PricedProduct `json:"items"`
	Total    int32            `json:"total"`
	Page     int32            `json:"page"`
	PageSize int32            `json:"page_size"`
}

type ReindexProductsRequest struct{}

type ReindexProductsResponse struct {
	Indexed int32 `json:"indexed"`
}

type ListCategoriesRequest struct {
	ActiveOnly bool `json:"active_only,omitempty"`
}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

// --- InventoryService ---

type Presentation struct {
	Name    string          `json:"name"`
	Content decimal.Decimal `json:"content"`
	Unit    string          `json:"unit"`
}

type InventoryItem struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	UsageUnit        string          `json:"usage_unit"`
	BuyingUnit       string          `json:"buying_unit"`
	Presentation     Presentation    `json:"presentation"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	IsActive         bool            `json:"is_active"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type CreateInventoryItemRequest struct {
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	Presentation Presentation     `json:"presentation"`
	PackageCost  *decimal.Decimal `json:"package_cost,omitempty"`
}

type UpdateInventoryPresentationRequest struct {
	ID           string           `json:"id"`
	Presentation Presentation     `json:"presentation"`
	PackageCost  *decimal.Decimal `json:"package_cost,omitempty"`
}

type InventoryItemResponse struct {
	Item *InventoryItem `json:"item"`
}

type GetInventoryItemRequest struct {
	ID string `json:"id"`
}

type ListInventoryItemsRequest struct {
	Query    string `json:"query,omitempty"`
	Page     int32  `json:"page,omitempty"`
	PageSize int32  `json:"page_size,omitempty"`
}

type ListInventoryItemsResponse struct {
	Items []*InventoryItem `json:"items"`
	Total int32            `json:"total"`
}

type PreviewUnitConversionRequest struct {
	Presentation Presentation     `json:"presentation"`
	PackageCost  *decimal.Decimal `json:"package_cost,omitempty"`
}

type UnitConversion struct {
	BuyingUnit       string           `json:"buying_unit"`
	ConversionFactor decimal.Decimal  `json:"conversion_factor"`
	UsageUnit        string           `json:"usage_unit"`
	UnitCost         *decimal.Decimal `json:"unit_cost,omitempty"`
}

type BranchStock struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branch_id"`
	IngredientID  string    `json:"ingredient_id"`
	CurrentStock  float64   `json:"current_stock"`
	MinStockAlert float64   `json:"min_stock_alert"`
	IsActive      bool      `json:"is_active"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AdjustBranchStockRequest struct {
	BranchID       string  `json:"branch_id"`
	IngredientID   string  `json:"ingredient_id"`
	QuantityChange float64 `json:"quantity_change"`
	Reason         string  `json:"reason"`
	ReferenceID    string  `json:"reference_id,omitempty"`
}

type ReceivePurchaseRequest struct {
	BranchID     string          `json:"branch_id"`
	IngredientID string          `json:"ingredient_id"`
	Packages     float64         `json:"packages"`
	PackageCost  decimal.Decimal `json:"package_cost"`
	ReferenceID  string          `json:"reference_id,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

type ReceivePurchaseResponse struct {
	Stock    *BranchStock    `json:"stock"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

type ListLowStockRequest struct {
	BranchID string `json:"branch_id"`
	Page     int32  `json:"page,omitempty"`
	PageSize int32  `json:"page_size,omitempty"`
}

type ListLowStockResponse struct {
	Items []*BranchStock `json:"items"`
	Total int32          `json:"total"`
}

type ListInventoryMovementsRequest struct {
	BranchID     string `json:"branch_id,omitempty"`
	IngredientID string `json:"ingredient_id,omitempty"`
	MovementType string `json:"movement_type,omitempty"`
	Page         int32  `json:"page,omitempty"`
	PageSize     int32  `json:"page_size,omitempty"`
}

type InventoryMovement struct {
	ID             string           `json:"id"`
	BranchID       string           `json:"branch_id"`
	IngredientID   string           `json:"ingredient_id"`
	MovementType   string           `json:"movement_type"`
	QuantityChange float64          `json:"quantity_change"`
	QuantityBefore float64          `json:"quantity_before"`
	QuantityAfter  float64          `json:"quantity_after"`
	UnitCost       *decimal.Decimal `json:"unit_cost,omitempty"`
	ReferenceType  string           `json:"reference_type,omitempty"`
	ReferenceID    string           `json:"reference_id,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	CreatedBy      string           `json:"created_by,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

type ListInventoryMovementsResponse struct {
	Movements []*InventoryMovement `json:"movements"`
	Total     int32                `json:"total"`
}

type RecipeLine struct {
	IngredientID     string  `json:"ingredient_id"`
	QuantityRequired float64 `json:"quantity_required"`
}

type SetRecipeRequest struct {
	ProductID string       `json:"product_id"`
	Lines     []RecipeLine `json:"lines"`
}

type GetRecipeRequest struct {
	ProductID string `json:"product_id"`
}

type RecipeResponse struct {
	ProductID string       `json:"product_id"`
	Lines     []RecipeLine `json:"lines"`
}

type GetTheoreticalStockRequest struct {
	ProductID string `json:"product_id"`
	BranchID  string `json:"branch_id"`
}

type TheoreticalStockResponse struct {
	ProductID string `json:"product_id"`
	BranchID  string `json:"branch_id"`
	Units     int32  `json:"units"`
}

// --- AuthorizationService ---

type VerifyPINRequest struct {
	PIN string `json:"pin"`
}

type VerifyPINResponse struct {
	Valid bool `json:"valid"`
}

type SetPINRequest struct {
	PIN string `json:"pin"`
}

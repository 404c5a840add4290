package dto

import (
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/shopspring/decimal"
)

type ProductFilters struct {
	MerchantID  string `json:"merchant_id"`
	CategoryID  string `json:"category_id,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
	SearchQuery string `json:"search_query,omitempty"` // For name, sku, barcode search
	SortBy      string `json:"sort_by,omitempty"`      // name, price, created_at
	SortOrder   string `json:"sort_order,omitempty"`   // asc, desc
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
}

type PricedProductFilters struct {
	ProductFilters
	BranchID     string `json:"branch_id"`
	ChannelID    string `json:"channel_id"`
	OnlySellable bool   `json:"only_sellable,omitempty"`
}

type PricedProduct struct {
	Product          model.Product    `json:"product"`
	Price            decimal.Decimal  `json:"price"`
	OverrideID       string           `json:"override_id,omitempty"`
	AppliedPromotion *model.Promotion `json:"applied_promotion,omitempty"`
	Sellable         bool             `json:"sellable"`
}

type PricedProductPage struct {
	Items []PricedProduct `json:"items"`
	Total int             `json:"total"`
}

package model

import "github.com/shopspring/decimal"

// Product is owned by the catalog service; this service only reads it.
type Product struct {
	BaseModel
	MerchantID   string           `db:"merchant_id" json:"merchant_id"`
	CategoryID   *string          `db:"category_id" json:"category_id"`
	CategoryName *string          `db:"category_name" json:"category_name"` // Joined data
	SKU          string           `db:"sku" json:"sku"`
	Barcode      *string          `db:"barcode" json:"barcode"`
	Name         string           `db:"name" json:"name"`
	Description  *string          `db:"description" json:"description"`
	BasePrice    decimal.Decimal  `db:"base_price" json:"base_price"`
	CostPrice    *decimal.Decimal `db:"cost_price" json:"cost_price"`
	TaxRate      decimal.Decimal  `db:"tax_rate" json:"tax_rate"`
	ImageURL     *string          `db:"image_url" json:"image_url"`
	IsActive     bool             `db:"is_active" json:"is_active"`
}

func (p *Product) CategoryIDValue() string {
	if p.CategoryID == nil {
		return ""
	}
	return *p.CategoryID
}

func (p *Product) CategoryNameValue() string {
	if p.CategoryName == nil {
		return ""
	}
	return *p.CategoryName
}

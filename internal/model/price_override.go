package model

import "github.com/shopspring/decimal"

// PriceOverride replaces a product's base price. A nil BranchID or ChannelID means the override
// applies to every branch or channel respectively.
type PriceOverride struct {
	BaseModel
	MerchantID       string          `db:"merchant_id" json:"merchant_id"`
	ProductID        string          `db:"product_id" json:"product_id"`
	BranchID         *string         `db:"branch_id" json:"branch_id"`
	ChannelID        *string         `db:"channel_id" json:"channel_id"`
	Price            decimal.Decimal `db:"price" json:"price"`
	IsActive         bool            `db:"is_active" json:"is_active"`
	IgnorePromotions bool            `db:"ignore_promotions" json:"ignore_promotions"`
	CreatedBy        *string         `db:"created_by" json:"created_by"`
}

func (o *PriceOverride) BranchIDValue() string {
	if o.BranchID == nil {
		return ""
	}
	return *o.BranchID
}

func (o *PriceOverride) ChannelIDValue() string {
	if o.ChannelID == nil {
		return ""
	}
	return *o.ChannelID
}

package dto

import "github.com/shopspring/decimal"

type UpsertOverrideInput struct {
	MerchantID       string          `json:"merchant_id" validate:"required"`
	UserID           string          `json:"user_id"`
	ProductID        string          `json:"product_id" validate:"required"`
	BranchID         string          `json:"branch_id"`  // empty: every branch
	ChannelID        string          `json:"channel_id"` // empty: every channel
	Price            decimal.Decimal `json:"price" validate:"gte=0"`
	IsActive         bool            `json:"is_active"`
	IgnorePromotions bool            `json:"ignore_promotions"`
	PIN              string          `json:"pin"`
}

type DeleteOverrideInput struct {
	MerchantID string `json:"merchant_id" validate:"required"`
	UserID     string `json:"user_id"`
	ID         string `json:"id" validate:"required"`
	PIN        string `json:"pin"`
}

type ResolvePriceInput struct {
	MerchantID string `json:"merchant_id" validate:"required"`
	ProductID  string `json:"product_id" validate:"required"`
	BranchID   string `json:"branch_id"`
	ChannelID  string `json:"channel_id"`
}

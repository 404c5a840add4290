package dto

import (
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/shopspring/decimal"
)

// PromotionInput carries both creation (ID empty) and full updates.
type PromotionInput struct {
	ID               string                `json:"id"`
	MerchantID       string                `json:"merchant_id" validate:"required"`
	Name             string                `json:"name" validate:"required,max=120"`
	Type             model.PromotionType   `json:"type" validate:"required"`
	Value            decimal.Decimal       `json:"value" validate:"gte=0"`
	Config           model.PromotionConfig `json:"config"`
	StartDate        string                `json:"start_date" validate:"required"`
	EndDate          string                `json:"end_date"`
	ScopeChannels    []string              `json:"scope_channels"`
	ScopeBranches    []string              `json:"scope_branches"`
	Priority         int                   `json:"priority"`
	IsActive         bool                  `json:"is_active"`
	TargetProductIDs []string              `json:"target_product_ids"`
	TargetCategories []string              `json:"target_categories"`
}

type DeletePromotionInput struct {
	MerchantID string `json:"merchant_id" validate:"required"`
	UserID     string `json:"user_id"`
	ID         string `json:"id" validate:"required"`
	PIN        string `json:"pin"`
}

package dto

import (
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
)

type OverrideFilters struct {
	MerchantID string
	ProductID  string
	BranchID   string
	ChannelID  string
}

type ResolvedPrice struct {
	Product *model.Product
	pricing.Result
}

package dto

type PromotionFilters struct {
	MerchantID string
	ActiveOnly bool
	// ValidNow keeps promotions valid today for ChannelID and BranchID.
	ValidNow  bool
	ChannelID string
	BranchID  string
	Page      int
	PageSize  int
}

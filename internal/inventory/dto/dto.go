package dto

type ItemFilters struct {
	MerchantID string
	Query      string // matches name or sku
	Page       int
	PageSize   int
}

type StockFilters struct {
	MerchantID string
	BranchID   string
	Page       int
	PageSize   int
}

type MovementFilters struct {
	MerchantID   string
	BranchID     string
	IngredientID string
	MovementType string
	Page         int
	PageSize     int
}

package dto

type SetPINInput struct {
	MerchantID string `json:"merchant_id" validate:"required"`
	UserID     string `json:"user_id" validate:"required"`
	PIN        string `json:"pin" validate:"required,number,min=4,max=8"`
}

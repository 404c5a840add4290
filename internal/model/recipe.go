package model

import "time"

type RecipeLine struct {
	MerchantID       string    `db:"merchant_id" json:"-"`
	ProductID        string    `db:"product_id" json:"product_id"`
	IngredientID     string    `db:"ingredient_id" json:"ingredient_id"`
	QuantityRequired float64   `db:"quantity_required" json:"quantity_required"` // usage units
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

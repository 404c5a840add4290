package model

import "time"

type UserPIN struct {
	MerchantID string    `db:"merchant_id"`
	UserID     string    `db:"user_id"`
	PINHash    string    `db:"pin_hash"`
	UpdatedAt  time.Time `db:"updated_at"`
}

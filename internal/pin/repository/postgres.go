package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByUser(ctx context.Context, merchantID, userID string) (*model.UserPIN, error) {
	var p model.UserPIN
	query := `SELECT merchant_id, user_id, pin_hash, updated_at FROM user_pins WHERE merchant_id = $1 AND user_id = $2`
	err := r.DB.GetContext(ctx, &p, query, merchantID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find pin: %w", err)
	}
	return &p, nil
}

func (r *PGRepository) Upsert(ctx context.Context, p *model.UserPIN) error {
	query := `
        INSERT INTO user_pins (merchant_id, user_id, pin_hash, updated_at)
        VALUES (:merchant_id, :user_id, :pin_hash, :updated_at)
        ON CONFLICT (merchant_id, user_id)
        DO UPDATE SET pin_hash = EXCLUDED.pin_hash, updated_at = EXCLUDED.updated_at
    `
	if _, err := r.DB.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("upsert pin: %w", err)
	}
	return nil
}

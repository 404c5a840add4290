package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/promotion/dto"
	"github.com/jmoiron/sqlx"
)

const promotionColumns = `id, merchant_id, name, type, value, config, start_date, end_date, scope_channels,
    scope_branches, priority, is_active, target_product_ids, target_categories, created_at, updated_at`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Promotion) error {
	query := `
        INSERT INTO promotions (` + promotionColumns + `)
        VALUES (
            :id, :merchant_id, :name, :type, :value, :config, :start_date, :end_date, :scope_channels,
            :scope_branches, :priority, :is_active, :target_product_ids, :target_categories,
            :created_at, :updated_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("create promotion: %w", err)
	}
	return nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Promotion) error {
	query := `
        UPDATE promotions
        SET name = :name,
            type = :type,
            value = :value,
            config = :config,
            start_date = :start_date,
            end_date = :end_date,
            scope_channels = :scope_channels,
            scope_branches = :scope_branches,
            priority = :priority,
            is_active = :is_active,
            target_product_ids = :target_product_ids,
            target_categories = :target_categories,
            updated_at = :updated_at
        WHERE id = :id AND merchant_id = :merchant_id
    `
	if _, err := r.DB.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("update promotion: %w", err)
	}
	return nil
}

func (r *PGRepository) SetActive(ctx context.Context, merchantID, id string, active bool, at time.Time) error {
	query := `UPDATE promotions SET is_active = $1, updated_at = $2 WHERE id = $3 AND merchant_id = $4`
	if _, err := r.DB.ExecContext(ctx, query, active, at, id, merchantID); err != nil {
		return fmt.Errorf("toggle promotion: %w", err)
	}
	return nil
}

// Delete only removes inactive promotions.
func (r *PGRepository) Delete(ctx context.Context, merchantID, id string) error {
	query := `DELETE FROM promotions WHERE id = $1 AND merchant_id = $2 AND is_active = false`
	if _, err := r.DB.ExecContext(ctx, query, id, merchantID); err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, merchantID, id string) (*model.Promotion, error) {
	var p model.Promotion
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1 AND merchant_id = $2`
	if err := r.DB.GetContext(ctx, &p, query, id, merchantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find promotion: %w", err)
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.PromotionFilters) ([]model.Promotion, int, error) {
	promotions := []model.Promotion{}
	var count int

	conditions := []string{"merchant_id = :merchant_id"}
	args := map[string]interface{}{"merchant_id": f.MerchantID}
	if f.ActiveOnly {
		conditions = append(conditions, "is_active = true")
	}
	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM promotions"+whereClause, args)
	if err != nil {
		return nil, 0, fmt.Errorf("count promotions: %w", err)
	}
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			rows.Close()
			return nil, 0, err
		}
	}
	rows.Close()

	query := "SELECT " + promotionColumns + " FROM promotions" + whereClause + " ORDER BY priority DESC, created_at ASC"
	if f.PageSize > 0 {
		offset := (max(f.Page, 1) - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &promotions, args); err != nil {
		return nil, 0, fmt.Errorf("list promotions: %w", err)
	}
	return promotions, count, nil
}

func (r *PGRepository) FindActive(ctx context.Context, merchantID string) ([]model.Promotion, error) {
	promotions := []model.Promotion{}
	query := `SELECT ` + promotionColumns + ` FROM promotions
        WHERE merchant_id = $1 AND is_active = true
        ORDER BY created_at ASC`
	if err := r.DB.SelectContext(ctx, &promotions, query, merchantID); err != nil {
		return nil, fmt.Errorf("find active promotions: %w", err)
	}
	return promotions, nil
}

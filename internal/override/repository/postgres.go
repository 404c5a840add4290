package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/override/dto"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const overrideColumns = `id, merchant_id, product_id, branch_id, channel_id, price, is_active, ignore_promotions, created_by, created_at, updated_at`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, o *model.PriceOverride) error {
	query := `
        INSERT INTO price_overrides (` + overrideColumns + `)
        VALUES (
            :id, :merchant_id, :product_id, :branch_id, :channel_id, :price, :is_active,
            :ignore_promotions, :created_by, :created_at, :updated_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, o); err != nil {
		return fmt.Errorf("create price override: %w", err)
	}
	return nil
}

func (r *PGRepository) Update(ctx context.Context, o *model.PriceOverride) error {
	query := `
        UPDATE price_overrides
        SET price = :price,
            is_active = :is_active,
            ignore_promotions = :ignore_promotions,
            updated_at = :updated_at
        WHERE id = :id AND merchant_id = :merchant_id
    `
	if _, err := r.DB.NamedExecContext(ctx, query, o); err != nil {
		return fmt.Errorf("update price override: %w", err)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, merchantID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM price_overrides WHERE id = $1 AND merchant_id = $2", id, merchantID)
	if err != nil {
		return fmt.Errorf("delete price override: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, merchantID, id string) (*model.PriceOverride, error) {
	var o model.PriceOverride
	query := `SELECT ` + overrideColumns + ` FROM price_overrides WHERE id = $1 AND merchant_id = $2`
	if err := r.DB.GetContext(ctx, &o, query, id, merchantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find price override: %w", err)
	}
	return &o, nil
}

func (r *PGRepository) FindByScope(ctx context.Context, merchantID, productID string, branchID, channelID *string) (*model.PriceOverride, error) {
	var o model.PriceOverride
	query := `SELECT ` + overrideColumns + ` FROM price_overrides
        WHERE merchant_id = $1 AND product_id = $2
          AND branch_id IS NOT DISTINCT FROM $3
          AND channel_id IS NOT DISTINCT FROM $4
        ORDER BY created_at ASC
        LIMIT 1`
	if err := r.DB.GetContext(ctx, &o, query, merchantID, productID, branchID, channelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find price override by scope: %w", err)
	}
	return &o, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.OverrideFilters) ([]model.PriceOverride, error) {
	overrides := []model.PriceOverride{}

	conditions := []string{"merchant_id = :merchant_id"}
	args := map[string]interface{}{"merchant_id": f.MerchantID}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.BranchID != "" {
		conditions = append(conditions, "branch_id = :branch_id")
		args["branch_id"] = f.BranchID
	}
	if f.ChannelID != "" {
		conditions = append(conditions, "channel_id = :channel_id")
		args["channel_id"] = f.ChannelID
	}

	query := "SELECT " + overrideColumns + " FROM price_overrides WHERE " +
		strings.Join(conditions, " AND ") + " ORDER BY created_at ASC"

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &overrides, args); err != nil {
		return nil, fmt.Errorf("list price overrides: %w", err)
	}
	return overrides, nil
}

// FindByProducts returns overrides in creation order, the order the resolver breaks ties by.
func (r *PGRepository) FindByProducts(ctx context.Context, merchantID string, productIDs []string) ([]model.PriceOverride, error) {
	overrides := []model.PriceOverride{}
	if len(productIDs) == 0 {
		return overrides, nil
	}
	query := `SELECT ` + overrideColumns + ` FROM price_overrides
        WHERE merchant_id = $1 AND product_id::text = ANY($2)
        ORDER BY created_at ASC`
	if err := r.DB.SelectContext(ctx, &overrides, query, merchantID, pq.Array(productIDs)); err != nil {
		return nil, fmt.Errorf("find price overrides: %w", err)
	}
	return overrides, nil
}

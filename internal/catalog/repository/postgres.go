package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const productSelect = `
    SELECT p.id, p.merchant_id, p.category_id, c.name AS category_name, p.sku, p.barcode, p.name,
           p.description, p.base_price, p.cost_price, p.tax_rate, p.image_url, p.is_active,
           p.created_at, p.updated_at
    FROM products p
    LEFT JOIN categories c ON c.id = p.category_id`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByID(ctx context.Context, merchantID, id string) (*model.Product, error) {
	var product model.Product
	query := productSelect + ` WHERE p.id = $1 AND p.merchant_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id, merchantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

// FindByIDs keeps the order of ids; unknown ids are skipped.
func (r *PGRepository) FindByIDs(ctx context.Context, merchantID string, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []model.Product
	query := productSelect + ` WHERE p.merchant_id = $1 AND p.id::text = ANY($2)`
	if err := r.DB.SelectContext(ctx, &products, query, merchantID, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	ordered := make([]model.Product, 0, len(products))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.MerchantID != "" {
		conditions = append(conditions, "p.merchant_id = :merchant_id")
		args["merchant_id"] = f.MerchantID
	}
	if f.CategoryID != "" {
		conditions = append(conditions, "p.category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.IsActive != nil {
		conditions = append(conditions, "p.is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(p.name ILIKE :search OR p.sku ILIKE :search OR p.barcode ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products p" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			rows.Close()
			return nil, 0, err
		}
	}
	rows.Close()

	orderBy := "p.name ASC"
	if f.SortBy != "" {
		// Whitelisted to keep user input out of the query.
		switch f.SortBy {
		case "price":
			orderBy = "p.base_price"
		case "created_at":
			orderBy = "p.created_at"
		default:
			orderBy = "p.name"
		}
		if strings.ToLower(f.SortOrder) == "desc" {
			orderBy += " DESC"
		} else {
			orderBy += " ASC"
		}
	}

	query := fmt.Sprintf("%s%s ORDER BY %s", productSelect, whereClause, orderBy)
	if f.PageSize > 0 {
		offset := (max(f.Page, 1) - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, count, nil
}

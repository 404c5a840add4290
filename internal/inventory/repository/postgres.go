package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-pricing-service/internal/inventory"
	"github.com/fekuna/omnipos-pricing-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	itemColumns = `id, merchant_id, sku, name, usage_unit, buying_unit, presentation_name, presentation_content,
        presentation_unit, conversion_factor, unit_cost, is_active, created_at, updated_at`
	stockColumns    = `id, merchant_id, branch_id, ingredient_id, current_stock, min_stock_alert, is_active, updated_at`
	movementColumns = `id, merchant_id, branch_id, ingredient_id, movement_type, quantity_change, quantity_before,
        quantity_after, unit_cost, reference_type, reference_id, notes, created_by, created_at`
	recipeColumns = `merchant_id, product_id, ingredient_id, quantity_required, updated_at`
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateItem(ctx context.Context, item *model.InventoryItem) error {
	query := `
        INSERT INTO inventory_items (` + itemColumns + `)
        VALUES (
            :id, :merchant_id, :sku, :name, :usage_unit, :buying_unit, :presentation_name,
            :presentation_content, :presentation_unit, :conversion_factor, :unit_cost, :is_active,
            :created_at, :updated_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create inventory item: %w", err)
	}
	return nil
}

func (r *PGRepository) UpdateItem(ctx context.Context, item *model.InventoryItem) error {
	query := `
        UPDATE inventory_items
        SET name = :name,
            usage_unit = :usage_unit,
            buying_unit = :buying_unit,
            presentation_name = :presentation_name,
            presentation_content = :presentation_content,
            presentation_unit = :presentation_unit,
            conversion_factor = :conversion_factor,
            unit_cost = :unit_cost,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND merchant_id = :merchant_id
    `
	if _, err := r.DB.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

func (r *PGRepository) FindItemByID(ctx context.Context, merchantID, id string) (*model.InventoryItem, error) {
	return r.findItem(ctx, "id = $2", merchantID, id)
}

func (r *PGRepository) FindItemBySKU(ctx context.Context, merchantID, sku string) (*model.InventoryItem, error) {
	return r.findItem(ctx, "sku = $2", merchantID, sku)
}

func (r *PGRepository) findItem(ctx context.Context, cond, merchantID, value string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	query := "SELECT " + itemColumns + " FROM inventory_items WHERE merchant_id = $1 AND " + cond
	if err := r.DB.GetContext(ctx, &item, query, merchantID, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find inventory item: %w", err)
	}
	return &item, nil
}

func (r *PGRepository) FindItemsByIDs(ctx context.Context, merchantID string, ids []string) ([]model.InventoryItem, error) {
	if len(ids) == 0 {
		return []model.InventoryItem{}, nil
	}
	var items []model.InventoryItem
	query := "SELECT " + itemColumns + " FROM inventory_items WHERE merchant_id = $1 AND id = ANY($2)"
	if err := r.DB.SelectContext(ctx, &items, query, merchantID, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("find inventory items: %w", err)
	}
	return items, nil
}

func (r *PGRepository) FindItems(ctx context.Context, f *dto.ItemFilters) ([]model.InventoryItem, int, error) {
	conditions := []string{"merchant_id = :merchant_id"}
	args := map[string]interface{}{"merchant_id": f.MerchantID}

	if q := strings.TrimSpace(f.Query); q != "" {
		conditions = append(conditions, "(name ILIKE :query OR sku ILIKE :query)")
		args["query"] = "%" + q + "%"
	}

	where := " WHERE " + strings.Join(conditions, " AND ")
	query := "SELECT " + itemColumns + " FROM inventory_items" + where + " ORDER BY name ASC"

	var items []model.InventoryItem
	count, err := r.page(ctx, "inventory_items", where, query, args, f.Page, f.PageSize, &items)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory items: %w", err)
	}
	return items, count, nil
}

func (r *PGRepository) GetBranchStock(ctx context.Context, merchantID, branchID, ingredientID string) (*model.BranchIngredient, error) {
	var stock model.BranchIngredient
	query := "SELECT " + stockColumns + " FROM branch_ingredients WHERE merchant_id = $1 AND branch_id = $2 AND ingredient_id = $3"
	if err := r.DB.GetContext(ctx, &stock, query, merchantID, branchID, ingredientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch stock: %w", err)
	}
	return &stock, nil
}

func (r *PGRepository) BranchStockFor(ctx context.Context, merchantID, branchID string, ingredientIDs []string) ([]model.BranchIngredient, error) {
	if len(ingredientIDs) == 0 {
		return []model.BranchIngredient{}, nil
	}
	var stocks []model.BranchIngredient
	query := "SELECT " + stockColumns + " FROM branch_ingredients WHERE merchant_id = $1 AND branch_id = $2 AND ingredient_id = ANY($3)"
	if err := r.DB.SelectContext(ctx, &stocks, query, merchantID, branchID, pq.Array(ingredientIDs)); err != nil {
		return nil, fmt.Errorf("branch stock: %w", err)
	}
	return stocks, nil
}

func (r *PGRepository) FindLowStock(ctx context.Context, f *dto.StockFilters) ([]model.BranchIngredient, int, error) {
	conditions := []string{
		"merchant_id = :merchant_id",
		"is_active = true",
		"min_stock_alert > 0",
		"current_stock <= min_stock_alert",
	}
	args := map[string]interface{}{"merchant_id": f.MerchantID}
	if f.BranchID != "" {
		conditions = append(conditions, "branch_id = :branch_id")
		args["branch_id"] = f.BranchID
	}

	where := " WHERE " + strings.Join(conditions, " AND ")
	query := "SELECT " + stockColumns + " FROM branch_ingredients" + where + " ORDER BY current_stock - min_stock_alert ASC"

	var stocks []model.BranchIngredient
	count, err := r.page(ctx, "branch_ingredients", where, query, args, f.Page, f.PageSize, &stocks)
	if err != nil {
		return nil, 0, fmt.Errorf("list low stock: %w", err)
	}
	return stocks, count, nil
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	conditions := []string{"merchant_id = :merchant_id"}
	args := map[string]interface{}{"merchant_id": f.MerchantID}

	if f.BranchID != "" {
		conditions = append(conditions, "branch_id = :branch_id")
		args["branch_id"] = f.BranchID
	}
	if f.IngredientID != "" {
		conditions = append(conditions, "ingredient_id = :ingredient_id")
		args["ingredient_id"] = f.IngredientID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}

	where := " WHERE " + strings.Join(conditions, " AND ")
	query := "SELECT " + movementColumns + " FROM inventory_movements" + where + " ORDER BY created_at DESC"

	var movements []model.InventoryMovement
	count, err := r.page(ctx, "inventory_movements", where, query, args, f.Page, f.PageSize, &movements)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	return movements, count, nil
}

// page counts the rows matching where, then selects one page of query into dest.
func (r *PGRepository) page(ctx context.Context, table, where, query string, args map[string]interface{}, page, pageSize int, dest interface{}) (int, error) {
	var count int
	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM "+table+where, args)
	if err != nil {
		return 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return 0, err
	}

	if pageSize > 0 {
		offset := (max(page, 1) - 1) * pageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, dest, args); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PGRepository) AdjustStockWithMovement(ctx context.Context, stock *model.BranchIngredient, movement *model.InventoryMovement, item *model.InventoryItem) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := writeStockChange(ctx, tx, stock, movement); err != nil {
		return err
	}

	if item != nil {
		costQuery := `UPDATE inventory_items SET unit_cost = :unit_cost, updated_at = :updated_at WHERE id = :id AND merchant_id = :merchant_id`
		if _, err := tx.NamedExecContext(ctx, costQuery, item); err != nil {
			return fmt.Errorf("failed to update unit cost: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) ApplyMovements(ctx context.Context, changes []inventory.StockChange) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range changes {
		if err := writeStockChange(ctx, tx, c.Stock, c.Movement); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func writeStockChange(ctx context.Context, tx *sqlx.Tx, stock *model.BranchIngredient, movement *model.InventoryMovement) error {
	upsertQuery := `
        INSERT INTO branch_ingredients (` + stockColumns + `)
        VALUES (
            :id, :merchant_id, :branch_id, :ingredient_id, :current_stock, :min_stock_alert,
            :is_active, :updated_at
        )
        ON CONFLICT (merchant_id, branch_id, ingredient_id)
        DO UPDATE SET
            current_stock = EXCLUDED.current_stock,
            updated_at = EXCLUDED.updated_at
    `
	if _, err := tx.NamedExecContext(ctx, upsertQuery, stock); err != nil {
		return fmt.Errorf("failed to update branch stock: %w", err)
	}

	insertLogQuery := `
        INSERT INTO inventory_movements (` + movementColumns + `)
        VALUES (
            :id, :merchant_id, :branch_id, :ingredient_id, :movement_type, :quantity_change,
            :quantity_before, :quantity_after, :unit_cost, :reference_type, :reference_id, :notes,
            :created_by, :created_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, insertLogQuery, movement); err != nil {
		return fmt.Errorf("failed to log movement: %w", err)
	}
	return nil
}

func (r *PGRepository) ReplaceRecipe(ctx context.Context, merchantID, productID string, lines []model.RecipeLine) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_lines WHERE merchant_id = $1 AND product_id = $2", merchantID, productID); err != nil {
		return fmt.Errorf("clear recipe: %w", err)
	}
	if len(lines) > 0 {
		query := `INSERT INTO recipe_lines (` + recipeColumns + `)
            VALUES (:merchant_id, :product_id, :ingredient_id, :quantity_required, :updated_at)`
		if _, err := tx.NamedExecContext(ctx, query, lines); err != nil {
			return fmt.Errorf("insert recipe lines: %w", err)
		}
	}
	return tx.Commit()
}

func (r *PGRepository) FindRecipe(ctx context.Context, merchantID, productID string) ([]model.RecipeLine, error) {
	lines := []model.RecipeLine{}
	query := "SELECT " + recipeColumns + " FROM recipe_lines WHERE merchant_id = $1 AND product_id = $2 ORDER BY ingredient_id"
	if err := r.DB.SelectContext(ctx, &lines, query, merchantID, productID); err != nil {
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return lines, nil
}

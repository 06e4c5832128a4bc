package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mworx/stockroom/internal/models"
)

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

const itemColumns = `id, product_id, name, category, quantity, unit_price, reorder_point,
	supplier, description, location, barcode, last_updated, created_at, updated_by`

func scanItem(row interface{ Scan(...any) error }) (models.InventoryItem, error) {
	var it models.InventoryItem
	err := row.Scan(&it.ID, &it.ProductID, &it.Name, &it.Category, &it.Quantity,
		&it.UnitPrice, &it.ReorderPoint, &it.Supplier, &it.Description,
		&it.Location, &it.Barcode, &it.LastUpdated, &it.CreatedAt, &it.UpdatedBy)
	return it, err
}

func (r *PostgresItemRepository) Create(it models.InventoryItem) (models.InventoryItem, error) {
	query := `INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, it.ID, it.ProductID, it.Name, it.Category,
		it.Quantity, it.UnitPrice, it.ReorderPoint, it.Supplier, it.Description,
		it.Location, it.Barcode, it.LastUpdated, it.CreatedAt, it.UpdatedBy)
	if err != nil && strings.Contains(err.Error(), "unique constraint") {
		return models.InventoryItem{}, ErrDuplicateProductID
	}
	return it, err
}

func (r *PostgresItemRepository) GetAll() ([]models.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at, id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresItemRepository) GetByID(id string) (models.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return it, err
}

func (r *PostgresItemRepository) Update(it models.InventoryItem) (models.InventoryItem, error) {
	query := `UPDATE items SET product_id = $1, name = $2, category = $3, quantity = $4,
		unit_price = $5, reorder_point = $6, supplier = $7, description = $8,
		location = $9, barcode = $10, last_updated = $11, updated_by = $12
		WHERE id = $13`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, it.ProductID, it.Name, it.Category,
		it.Quantity, it.UnitPrice, it.ReorderPoint, it.Supplier, it.Description,
		it.Location, it.Barcode, it.LastUpdated, it.UpdatedBy, it.ID)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return models.InventoryItem{}, ErrDuplicateProductID
		}
		return models.InventoryItem{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return it, nil
}

func (r *PostgresItemRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresItemRepository) Filter(f ItemFilter) ([]models.InventoryItem, int, error) {
	conditions, args, argIdx := itemFilterConditions(f)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM items WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE 1=1` + conditions + ` ORDER BY created_at, id`
	if f.Limit != nil && *f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *f.Limit)
		argIdx++
	}
	if f.Offset != nil && *f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	return items, totalCount, rows.Err()
}

func itemFilterConditions(f ItemFilter) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	if f.Name != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+f.Name+"%")
		argIdx++
	}
	if f.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, f.Category)
		argIdx++
	}
	if f.MinQty != nil {
		query += fmt.Sprintf(" AND quantity >= $%d", argIdx)
		args = append(args, *f.MinQty)
		argIdx++
	}
	if f.MaxQty != nil {
		query += fmt.Sprintf(" AND quantity <= $%d", argIdx)
		args = append(args, *f.MaxQty)
		argIdx++
	}

	return query, args, argIdx
}

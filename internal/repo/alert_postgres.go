package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mworx/stockroom/internal/models"
)

type PostgresAlertRepository struct {
	db *sql.DB
}

func NewPostgresAlertRepository(db *sql.DB) *PostgresAlertRepository {
	return &PostgresAlertRepository{db: db}
}

// ReplaceAll swaps the stored alert set inside one transaction so readers
// never observe a half-replaced set.
func (r *PostgresAlertRepository) ReplaceAll(alerts []models.InventoryAlert) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM alerts`); err != nil {
		return err
	}
	const insert = `INSERT INTO alerts (id, item_id, item_name, type, message,
		current_quantity, reorder_point, severity, created_at, acknowledged)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, a := range alerts {
		if _, err := tx.ExecContext(ctx, insert, a.ID, a.ItemID, a.ItemName, a.Type,
			a.Message, a.CurrentQuantity, a.ReorderPoint, a.Severity, a.CreatedAt,
			a.Acknowledged); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PostgresAlertRepository) GetAll() ([]models.InventoryAlert, error) {
	query := `SELECT id, item_id, item_name, type, message, current_quantity,
		reorder_point, severity, created_at, acknowledged FROM alerts ORDER BY created_at, id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []models.InventoryAlert
	for rows.Next() {
		var a models.InventoryAlert
		if err := rows.Scan(&a.ID, &a.ItemID, &a.ItemName, &a.Type, &a.Message,
			&a.CurrentQuantity, &a.ReorderPoint, &a.Severity, &a.CreatedAt,
			&a.Acknowledged); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *PostgresAlertRepository) Acknowledge(id string) (models.InventoryAlert, error) {
	query := `UPDATE alerts SET acknowledged = TRUE WHERE id = $1
		RETURNING id, item_id, item_name, type, message, current_quantity,
		reorder_point, severity, created_at, acknowledged`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var a models.InventoryAlert
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.ItemID, &a.ItemName,
		&a.Type, &a.Message, &a.CurrentQuantity, &a.ReorderPoint, &a.Severity,
		&a.CreatedAt, &a.Acknowledged)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryAlert{}, ErrAlertNotFound
	}
	return a, err
}

package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/mworx/stockroom/internal/models"
)

type PostgresActivityRepository struct {
	db *sql.DB
}

func NewPostgresActivityRepository(db *sql.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Append(entry models.ActivityLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	const insert = `INSERT INTO activities (id, user_id, user_name, action, item_id,
		item_name, details, timestamp) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.ExecContext(ctx, insert, entry.ID, entry.UserID, entry.UserName,
		entry.Action, entry.ItemID, entry.ItemName, entry.Details, entry.Timestamp); err != nil {
		return err
	}

	// Drop everything past the retention cap.
	const trim = `DELETE FROM activities WHERE id NOT IN (
		SELECT id FROM activities ORDER BY timestamp DESC, id DESC LIMIT $1)`
	_, err := r.db.ExecContext(ctx, trim, models.ActivityCap)
	return err
}

func (r *PostgresActivityRepository) Recent(limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > models.ActivityCap {
		limit = models.ActivityCap
	}
	query := `SELECT id, user_id, user_name, action, item_id, item_name, details, timestamp
		FROM activities ORDER BY timestamp DESC, id DESC LIMIT $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityLog
	for rows.Next() {
		var e models.ActivityLog
		var itemID, itemName sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.UserName, &e.Action, &itemID,
			&itemName, &e.Details, &e.Timestamp); err != nil {
			return nil, err
		}
		e.ItemID = itemID.String
		e.ItemName = itemName.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mworx/stockroom/internal/models"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByEmail(email string) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var u models.User
	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, name, role, password_hash, last_login, is_active FROM users WHERE email = $1`,
		email).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &lastLogin, &u.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	u.LastLogin = lastLogin.Time
	return u, err
}

func (r *PostgresUserRepository) Upsert(u models.User) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	const query = `INSERT INTO users (id, email, name, role, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name, role = EXCLUDED.role,
			password_hash = EXCLUDED.password_hash, is_active = EXCLUDED.is_active`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.Name, u.Role, u.PasswordHash, u.IsActive)
	return u, err
}

func (r *PostgresUserRepository) TouchLastLogin(id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login = $1 WHERE id = $2`, at, id)
	return err
}

package repo

import (
	"time"

	"github.com/mworx/stockroom/internal/models"
)

// UserRepository holds the fixed demo user set. Upsert exists only for
// startup seeding; there is no user-management surface.
type UserRepository interface {
	GetByEmail(email string) (models.User, error)
	Upsert(u models.User) (models.User, error)
	TouchLastLogin(id string, at time.Time) error
}

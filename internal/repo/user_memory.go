package repo

import (
	"sync"
	"time"

	"github.com/mworx/stockroom/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	mu    sync.Mutex
	users []models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{}
}

func (r *InMemoryUserRepository) GetByEmail(email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) Upsert(u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.users {
		if existing.Email == u.Email {
			u.LastLogin = existing.LastLogin
			r.users[i] = u
			return u, nil
		}
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) TouchLastLogin(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].LastLogin = at
			return nil
		}
	}
	return ErrUserNotFound
}

package repo

import (
	"sync"

	"github.com/mworx/stockroom/internal/models"
)

// InMemoryActivityRepository is an in-memory implementation of
// ActivityRepository, newest entries first.
type InMemoryActivityRepository struct {
	mu      sync.Mutex
	entries []models.ActivityLog
}

func NewInMemoryActivityRepository() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{}
}

func (r *InMemoryActivityRepository) Append(entry models.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]models.ActivityLog{entry}, r.entries...)
	if len(r.entries) > models.ActivityCap {
		r.entries = r.entries[:models.ActivityCap]
	}
	return nil
}

func (r *InMemoryActivityRepository) Recent(limit int) ([]models.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]models.ActivityLog, limit)
	copy(out, r.entries[:limit])
	return out, nil
}

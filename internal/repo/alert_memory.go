package repo

import (
	"sync"

	"github.com/mworx/stockroom/internal/models"
)

// InMemoryAlertRepository is an in-memory implementation of AlertRepository.
type InMemoryAlertRepository struct {
	mu     sync.Mutex
	alerts []models.InventoryAlert
}

func NewInMemoryAlertRepository() *InMemoryAlertRepository {
	return &InMemoryAlertRepository{}
}

func (r *InMemoryAlertRepository) ReplaceAll(alerts []models.InventoryAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alerts = make([]models.InventoryAlert, len(alerts))
	copy(r.alerts, alerts)
	return nil
}

func (r *InMemoryAlertRepository) GetAll() ([]models.InventoryAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.InventoryAlert, len(r.alerts))
	copy(out, r.alerts)
	return out, nil
}

func (r *InMemoryAlertRepository) Acknowledge(id string) (models.InventoryAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts[i].Acknowledged = true
			return r.alerts[i], nil
		}
	}
	return models.InventoryAlert{}, ErrAlertNotFound
}

package repo

import "github.com/mworx/stockroom/internal/models"

// AlertRepository stores the derived alert set. ReplaceAll swaps the whole
// set atomically; there is no incremental update path.
type AlertRepository interface {
	ReplaceAll(alerts []models.InventoryAlert) error
	GetAll() ([]models.InventoryAlert, error)
	Acknowledge(id string) (models.InventoryAlert, error)
}

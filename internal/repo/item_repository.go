package repo

import "github.com/mworx/stockroom/internal/models"

// ItemFilter narrows an item search. Nil pointer fields are ignored.
type ItemFilter struct {
	Name     string
	Category string
	MinQty   *int
	MaxQty   *int
	Offset   *int
	Limit    *int
}

// ItemRepository defines the persistence operations for inventory items.
// GetAll returns the snapshot in creation order; that order is what the
// alert deriver and dashboard aggregator iterate.
type ItemRepository interface {
	Create(item models.InventoryItem) (models.InventoryItem, error)
	GetAll() ([]models.InventoryItem, error)
	GetByID(id string) (models.InventoryItem, error)
	Update(item models.InventoryItem) (models.InventoryItem, error)
	Delete(id string) error
	Filter(f ItemFilter) ([]models.InventoryItem, int, error)
}

package repo

import (
	"strings"
	"sync"

	"github.com/mworx/stockroom/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
// Items keep insertion order, which is the snapshot order downstream
// computations rely on.
type InMemoryItemRepository struct {
	mu    sync.Mutex
	items []models.InventoryItem
}

func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{}
}

func (r *InMemoryItemRepository) Create(it models.InventoryItem) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ProductID == it.ProductID {
			return models.InventoryItem{}, ErrDuplicateProductID
		}
	}
	r.items = append(r.items, it)
	return it, nil
}

func (r *InMemoryItemRepository) GetAll() ([]models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.InventoryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryItemRepository) GetByID(id string) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Update(it models.InventoryItem) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ProductID == it.ProductID && existing.ID != it.ID {
			return models.InventoryItem{}, ErrDuplicateProductID
		}
	}
	for i, existing := range r.items {
		if existing.ID == it.ID {
			r.items[i] = it
			return it, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryItemRepository) Filter(f ItemFilter) ([]models.InventoryItem, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []models.InventoryItem
	for _, it := range r.items {
		if matchesItemFilter(it, f) {
			filtered = append(filtered, it)
		}
	}
	total := len(filtered)

	if f.Offset != nil && *f.Offset > 0 {
		if *f.Offset >= len(filtered) {
			filtered = nil
		} else {
			filtered = filtered[*f.Offset:]
		}
	}
	if f.Limit != nil && *f.Limit > 0 && *f.Limit < len(filtered) {
		filtered = filtered[:*f.Limit]
	}
	return filtered, total, nil
}

func matchesItemFilter(it models.InventoryItem, f ItemFilter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Category != "" && it.Category != f.Category {
		return false
	}
	if f.MinQty != nil && it.Quantity < *f.MinQty {
		return false
	}
	if f.MaxQty != nil && it.Quantity > *f.MaxQty {
		return false
	}
	return true
}

// Reset drops all items. Test helper.
func (r *InMemoryItemRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

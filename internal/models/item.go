package models

import "time"

// InventoryItem represents a stocked product in the inventory system.
type InventoryItem struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	ReorderPoint int       `json:"reorder_point"`
	Supplier     string    `json:"supplier"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`
	Barcode      string    `json:"barcode,omitempty"`
	LastUpdated  time.Time `json:"last_updated"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedBy    string    `json:"updated_by"`
}

// Categories is the fixed set of item categories carried by the business.
var Categories = []string{
	"Paper",
	"Ink & Toners",
	"Equipment",
	"Finishing Materials",
	"Software",
	"Maintenance Supplies",
	"Office Supplies",
	"Other",
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

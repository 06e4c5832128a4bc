package models

import "time"

// Alert types, from most to least urgent.
const (
	AlertOutOfStock    = "out_of_stock"
	AlertReorderNeeded = "reorder_needed"
	AlertLowStock      = "low_stock"
)

// Alert severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// InventoryAlert is derived from an inventory snapshot, never authored
// directly. CurrentQuantity and ReorderPoint are captured at derivation time.
type InventoryAlert struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	ItemName        string    `json:"item_name"`
	Type            string    `json:"type"`
	Message         string    `json:"message"`
	CurrentQuantity int       `json:"current_quantity"`
	ReorderPoint    int       `json:"reorder_point"`
	Severity        string    `json:"severity"`
	CreatedAt       time.Time `json:"created_at"`
	Acknowledged    bool      `json:"acknowledged"`
}

// Package alerts derives stock alerts from an inventory snapshot.
//
// Derivation is a pure function: it has no memory of prior alert sets and
// its output fully replaces whatever was persisted before. Acknowledgement
// state survives replacement only through Reconcile.
package alerts

import (
	"fmt"
	"time"

	"github.com/mworx/stockroom/internal/models"
)

// Derive scans the snapshot in order and produces the complete set of active
// alerts. Per item the first matching rule wins:
//
//	quantity == 0                       -> out_of_stock / high
//	quantity <= reorderPoint/2          -> reorder_needed / high
//	quantity <= reorderPoint            -> low_stock / medium
//	otherwise                           -> no alert
//
// The midpoint comparison is evaluated in floating point, not floor
// division: reorderPoint=25, quantity=13 is above 12.5 and therefore
// low_stock, while quantity=12 is reorder_needed.
func Derive(items []models.InventoryItem, now time.Time) []models.InventoryAlert {
	out := make([]models.InventoryAlert, 0, len(items))
	for _, item := range items {
		if item.Quantity == 0 {
			out = append(out, newAlert(item, models.AlertOutOfStock, models.SeverityHigh,
				fmt.Sprintf("%s is out of stock", item.Name), now))
			continue
		}
		if item.Quantity > item.ReorderPoint {
			continue
		}
		message := fmt.Sprintf("%s is running low (%d remaining)", item.Name, item.Quantity)
		if float64(item.Quantity) <= float64(item.ReorderPoint)/2 {
			out = append(out, newAlert(item, models.AlertReorderNeeded, models.SeverityHigh, message, now))
		} else {
			out = append(out, newAlert(item, models.AlertLowStock, models.SeverityMedium, message, now))
		}
	}
	return out
}

// Reconcile carries acknowledged flags from the previously persisted alert
// set onto a freshly derived one, keyed by (item, type). An alert that is
// still active after a recomputation stays acknowledged; an alert that
// disappeared and later reappears starts unacknowledged again.
func Reconcile(prev, next []models.InventoryAlert) []models.InventoryAlert {
	if len(prev) == 0 || len(next) == 0 {
		return next
	}
	acked := make(map[string]bool, len(prev))
	for _, a := range prev {
		if a.Acknowledged {
			acked[a.ID] = true
		}
	}
	for i := range next {
		if acked[next[i].ID] {
			next[i].Acknowledged = true
		}
	}
	return next
}

// newAlert builds an alert with an ID deterministic per (item, type) so that
// successive derivations of the same condition are reconcilable.
func newAlert(item models.InventoryItem, kind, severity, message string, now time.Time) models.InventoryAlert {
	return models.InventoryAlert{
		ID:              fmt.Sprintf("alert-%s-%s", item.ID, kind),
		ItemID:          item.ID,
		ItemName:        item.Name,
		Type:            kind,
		Message:         message,
		CurrentQuantity: item.Quantity,
		ReorderPoint:    item.ReorderPoint,
		Severity:        severity,
		CreatedAt:       now,
	}
}

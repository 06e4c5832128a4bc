package alerts

import (
	"testing"
	"time"

	"github.com/mworx/stockroom/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, name string, quantity, reorderPoint int) models.InventoryItem {
	return models.InventoryItem{
		ID:           id,
		ProductID:    "P-" + id,
		Name:         name,
		Category:     "Paper",
		Quantity:     quantity,
		ReorderPoint: reorderPoint,
	}
}

func TestDerive_OutOfStock(t *testing.T) {
	now := time.Now()
	got := Derive([]models.InventoryItem{item("1", "A4 Premium Paper", 0, 50)}, now)

	require.Len(t, got, 1)
	assert.Equal(t, models.AlertOutOfStock, got[0].Type)
	assert.Equal(t, models.SeverityHigh, got[0].Severity)
	assert.Equal(t, "A4 Premium Paper is out of stock", got[0].Message)
	assert.Equal(t, 0, got[0].CurrentQuantity)
	assert.Equal(t, 50, got[0].ReorderPoint)
	assert.Equal(t, now, got[0].CreatedAt)
	assert.False(t, got[0].Acknowledged)
}

func TestDerive_NoAlertAboveReorderPoint(t *testing.T) {
	got := Derive([]models.InventoryItem{
		item("1", "Paper", 51, 50),
		item("2", "Toner", 250, 50),
	}, time.Now())

	assert.Empty(t, got)
}

func TestDerive_MidpointBoundary(t *testing.T) {
	// reorderPoint 25: midpoint is 12.5, not 12. Quantity 13 stays above
	// it while 12 falls at or below.
	now := time.Now()

	got := Derive([]models.InventoryItem{item("1", "Toner", 13, 25)}, now)
	require.Len(t, got, 1)
	assert.Equal(t, models.AlertLowStock, got[0].Type)
	assert.Equal(t, models.SeverityMedium, got[0].Severity)
	assert.Equal(t, "Toner is running low (13 remaining)", got[0].Message)

	got = Derive([]models.InventoryItem{item("1", "Toner", 12, 25)}, now)
	require.Len(t, got, 1)
	assert.Equal(t, models.AlertReorderNeeded, got[0].Type)
	assert.Equal(t, models.SeverityHigh, got[0].Severity)
	assert.Equal(t, "Toner is running low (12 remaining)", got[0].Message)

	// An even reorder point: the exact midpoint still reorders, one above
	// it is only low stock.
	got = Derive([]models.InventoryItem{item("1", "Toner", 25, 50)}, now)
	require.Len(t, got, 1)
	assert.Equal(t, models.AlertReorderNeeded, got[0].Type)

	got = Derive([]models.InventoryItem{item("1", "Toner", 26, 50)}, now)
	require.Len(t, got, 1)
	assert.Equal(t, models.AlertLowStock, got[0].Type)
}

func TestDerive_AtReorderPoint(t *testing.T) {
	got := Derive([]models.InventoryItem{item("1", "Ink", 50, 50)}, time.Now())

	require.Len(t, got, 1)
	assert.Equal(t, models.AlertLowStock, got[0].Type)
}

func TestDerive_ExactlyOneAlertPerItem(t *testing.T) {
	// An out-of-stock item must not additionally raise reorder_needed even
	// though 0 <= reorderPoint/2.
	got := Derive([]models.InventoryItem{item("1", "Ink", 0, 50)}, time.Now())

	require.Len(t, got, 1)
	assert.Equal(t, models.AlertOutOfStock, got[0].Type)
}

func TestDerive_SnapshotOrder(t *testing.T) {
	snapshot := []models.InventoryItem{
		item("b", "Second", 0, 10),
		item("a", "First", 3, 10),
		item("c", "Third", 0, 10),
	}

	got := Derive(snapshot, time.Now())

	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ItemID)
	assert.Equal(t, "a", got[1].ItemID)
	assert.Equal(t, "c", got[2].ItemID)
}

func TestDerive_EndToEndScenario(t *testing.T) {
	snapshot := []models.InventoryItem{
		item("1", "Glossy Paper", 0, 50),
		item("2", "A4 Paper", 250, 50),
	}

	got := Derive(snapshot, time.Now())

	require.Len(t, got, 1)
	assert.Equal(t, models.AlertOutOfStock, got[0].Type)
	assert.Equal(t, models.SeverityHigh, got[0].Severity)
	assert.Equal(t, "1", got[0].ItemID)
}

func TestReconcile_PreservesAcknowledgement(t *testing.T) {
	now := time.Now()
	prev := Derive([]models.InventoryItem{
		item("1", "Toner", 0, 50),
		item("2", "Ink", 20, 50),
	}, now)
	prev[0].Acknowledged = true

	next := Reconcile(prev, Derive([]models.InventoryItem{
		item("1", "Toner", 0, 50),
		item("2", "Ink", 20, 50),
	}, now.Add(time.Minute)))

	require.Len(t, next, 2)
	assert.True(t, next[0].Acknowledged, "still-active alert must stay acknowledged")
	assert.False(t, next[1].Acknowledged)
}

func TestReconcile_TypeChangeResetsAcknowledgement(t *testing.T) {
	now := time.Now()
	prev := Derive([]models.InventoryItem{item("1", "Toner", 30, 50)}, now)
	require.Equal(t, models.AlertLowStock, prev[0].Type)
	prev[0].Acknowledged = true

	// Quantity dropped past the midpoint; the alert escalates to a new type
	// and must come back unacknowledged.
	next := Reconcile(prev, Derive([]models.InventoryItem{item("1", "Toner", 10, 50)}, now))

	require.Len(t, next, 1)
	assert.Equal(t, models.AlertReorderNeeded, next[0].Type)
	assert.False(t, next[0].Acknowledged)
}

func TestReconcile_EmptySets(t *testing.T) {
	next := Derive([]models.InventoryItem{item("1", "Toner", 0, 50)}, time.Now())

	assert.Equal(t, next, Reconcile(nil, next))
	assert.Empty(t, Reconcile(next, nil))
}

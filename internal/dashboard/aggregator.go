// Package dashboard reduces an inventory snapshot and activity history into
// the summary shown on the dashboard.
package dashboard

import (
	"sort"

	"github.com/mworx/stockroom/internal/models"
)

// RecentActivityLimit bounds the activity entries included in the summary.
const RecentActivityLimit = 10

// Compute reduces the snapshot in a single pass. Activities are expected
// newest-first (repository order) and are only truncated here.
func Compute(items []models.InventoryItem, activities []models.ActivityLog) models.DashboardStats {
	stats := models.DashboardStats{TotalItems: len(items)}

	byCategory := make(map[string]*models.CategoryStat)
	var seen []string // category names in first-seen snapshot order

	for _, item := range items {
		value := float64(item.Quantity) * item.UnitPrice
		stats.TotalValue += value

		switch {
		case item.Quantity == 0:
			stats.OutOfStockItems++
		case item.Quantity <= item.ReorderPoint:
			stats.LowStockItems++
		}

		agg, ok := byCategory[item.Category]
		if !ok {
			agg = &models.CategoryStat{Name: item.Category}
			byCategory[item.Category] = agg
			seen = append(seen, item.Category)
		}
		agg.Count++
		agg.Value += value
	}

	stats.CategoriesCount = len(seen)
	stats.TopCategories = make([]models.CategoryStat, len(seen))
	for i, name := range seen {
		stats.TopCategories[i] = *byCategory[name]
	}
	// Descending by summed value; the stable sort keeps ties in first-seen
	// snapshot order so the result is deterministic per call.
	sort.SliceStable(stats.TopCategories, func(a, b int) bool {
		return stats.TopCategories[a].Value > stats.TopCategories[b].Value
	})

	if len(activities) > RecentActivityLimit {
		activities = activities[:RecentActivityLimit]
	}
	stats.RecentActivities = activities

	return stats
}

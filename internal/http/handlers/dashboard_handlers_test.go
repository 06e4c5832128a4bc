package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mworx/stockroom/internal/models"
)

func TestGetDashboardStatsHandler_Empty(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := tokenFor(t, adminUser)

	w := doJSON(r, http.MethodGet, "/dashboard/stats", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var stats models.DashboardStats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if stats.TotalItems != 0 || stats.TotalValue != 0 || stats.CategoriesCount != 0 {
		t.Errorf("expected zeroed stats for empty inventory, got %+v", stats)
	}
}

func TestGetDashboardStatsHandler_Scenario(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := tokenFor(t, adminUser)

	outOfStock := validItemRequest("MWX-001", 0, 50)
	healthy := validItemRequest("MWX-002", 250, 50)
	createItem(r, token, outOfStock)
	createItem(r, token, healthy)

	w := doJSON(r, http.MethodGet, "/dashboard/stats", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var stats models.DashboardStats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if stats.TotalItems != 2 {
		t.Errorf("expected 2 total items, got %d", stats.TotalItems)
	}
	if stats.OutOfStockItems != 1 {
		t.Errorf("expected 1 out of stock item, got %d", stats.OutOfStockItems)
	}
	if stats.LowStockItems != 0 {
		t.Errorf("expected 0 low stock items, got %d", stats.LowStockItems)
	}
	if stats.CategoriesCount != 1 || len(stats.TopCategories) != 1 {
		t.Errorf("expected a single 'Paper' category entry, got %+v", stats.TopCategories)
	}
	if want := 250 * 12.99; stats.TotalValue != want {
		t.Errorf("expected total value %v, got %v", want, stats.TotalValue)
	}
	// The two create calls are the most recent activities.
	if len(stats.RecentActivities) != 2 {
		t.Errorf("expected 2 recent activities, got %d", len(stats.RecentActivities))
	}
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mworx/stockroom/internal/models"
)

func TestGetAlertsHandler_EmptyInventory(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := tokenFor(t, adminUser)

	w := doJSON(r, http.MethodGet, "/alerts", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var alerts []models.InventoryAlert
	if err := json.NewDecoder(w.Body).Decode(&alerts); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("expected no alerts, got %d", len(alerts))
	}
}

func TestGetAlertsHandler_AfterMutation(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := tokenFor(t, adminUser)

	outOfStock := validItemRequest("MWX-001", 0, 50)
	healthy := validItemRequest("MWX-002", 250, 50)
	createItem(r, token, outOfStock)
	createItem(r, token, healthy)

	w := doJSON(r, http.MethodGet, "/alerts", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var alerts []models.InventoryAlert
	if err := json.NewDecoder(w.Body).Decode(&alerts); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected exactly 1 alert, got %d", len(alerts))
	}
	if alerts[0].Type != models.AlertOutOfStock {
		t.Errorf("expected out_of_stock, got %q", alerts[0].Type)
	}
	if alerts[0].Severity != models.SeverityHigh {
		t.Errorf("expected high severity, got %q", alerts[0].Severity)
	}
	if alerts[0].CurrentQuantity != 0 || alerts[0].ReorderPoint != 50 {
		t.Errorf("expected quantity snapshot 0/50, got %d/%d",
			alerts[0].CurrentQuantity, alerts[0].ReorderPoint)
	}
}

func TestAcknowledgeAlertHandler(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := tokenFor(t, adminUser)

	createItem(r, token, validItemRequest("MWX-001", 0, 50))

	w := doJSON(r, http.MethodGet, "/alerts", token, nil)
	var alerts []models.InventoryAlert
	if err := json.NewDecoder(w.Body).Decode(&alerts); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}

	w = doJSON(r, http.MethodPost, "/alerts/"+alerts[0].ID+"/acknowledge", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var acked models.InventoryAlert
	if err := json.NewDecoder(w.Body).Decode(&acked); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !acked.Acknowledged {
		t.Error("expected alert to be acknowledged")
	}
}

func TestAcknowledgeAlertHandler_NotFound(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := tokenFor(t, adminUser)

	w := doJSON(r, http.MethodPost, "/alerts/nonexistent/acknowledge", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mworx/stockroom/internal/models"
	"github.com/mworx/stockroom/internal/repo"
)

// GetAlertsHandler godoc
// @Summary List the current derived alert set
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.InventoryAlert
// @Failure 500 {string} string "Internal error"
// @Router /alerts [get]
func GetAlertsHandler(w http.ResponseWriter, r *http.Request) {
	alerts, err := svc.Alerts()
	if err != nil {
		http.Error(w, "could not fetch alerts", http.StatusInternalServerError)
		return
	}
	if alerts == nil {
		alerts = []models.InventoryAlert{}
	}
	writeJSON(w, http.StatusOK, alerts)
}

// AcknowledgeAlertHandler godoc
// @Summary Acknowledge an alert
// @Description Marks the alert as handled. The flag survives subsequent
// @Description derivations for as long as the same alert stays active.
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} models.InventoryAlert
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /alerts/{id}/acknowledge [post]
func AcknowledgeAlertHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	alert, err := svc.AcknowledgeAlert(id)
	if err != nil {
		if errors.Is(err, repo.ErrAlertNotFound) {
			http.Error(w, "alert not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not acknowledge alert", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, alert)
}

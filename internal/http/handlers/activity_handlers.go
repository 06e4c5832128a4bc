package handlers

import (
	"net/http"

	"github.com/mworx/stockroom/internal/models"
)

// GetActivitiesHandler godoc
// @Summary Recent activity log entries, newest first
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries to return (default 50)"
// @Success 200 {array} models.ActivityLog
// @Failure 400 {string} string "Invalid limit"
// @Failure 500 {string} string "Internal error"
// @Router /activities [get]
func GetActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	limit := models.ActivityCap
	if v := parseIntPtr(r.URL.Query().Get("limit")); v != nil {
		if *v <= 0 {
			http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
			return
		}
		limit = *v
	}

	activities, err := svc.RecentActivities(limit)
	if err != nil {
		http.Error(w, "could not fetch activities", http.StatusInternalServerError)
		return
	}
	if activities == nil {
		activities = []models.ActivityLog{}
	}
	writeJSON(w, http.StatusOK, activities)
}

package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// GetDashboardStatsHandler godoc
// @Summary Dashboard summary statistics
// @Description Totals, per-category breakdown and recent activity reduced
// @Description from the current inventory snapshot
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/stats [get]
func GetDashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := svc.Stats()
	if err != nil {
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, stats); err != nil {
		log.Error().Err(err).Msg("failed to write JSON response")
	}
}

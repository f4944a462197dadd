package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Fleet dashboard stats
// @Description  Driver and log counts, compliance rate, activity windows, and top violations.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dashboard/stats [get]
// @Security     BearerAuth
func (h *Handler) getDashboardStats(c *gin.Context) {
	stats, err := h.services.Stats.DashboardStats(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err, "dashboard_stats_failed")
		return
	}
	respondData(c, http.StatusOK, stats, "")
}

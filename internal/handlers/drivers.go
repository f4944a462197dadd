package handlers

import (
	"net/http"
	"strconv"

	"driverlogs/internal/models"
	"driverlogs/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating and updating drivers.
type driverRequest struct {
	Name              string `json:"name" binding:"required"`
	LicenseNumber     string `json:"licenseNumber" binding:"required"`
	HomeTerminal      string `json:"homeTerminal"`
	MainOfficeAddress string `json:"mainOfficeAddress"`
}

func (r driverRequest) toModel() models.Driver {
	return models.Driver{
		Name:              r.Name,
		LicenseNumber:     r.LicenseNumber,
		HomeTerminal:      r.HomeTerminal,
		MainOfficeAddress: r.MainOfficeAddress,
	}
}

// queryInt reads an integer query parameter, falling back on bad input.
func queryInt(c *gin.Context, name string, fallback int) int {
	if s := c.Query(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}

// listMeta is the pagination block attached to list responses. The reported
// pageSize is the one the service actually applied, not the raw query value.
func listMeta(items any, total, page, pageSize int) gin.H {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = service.DefaultPageSize
	}
	if pageSize > service.MaxPageSize {
		pageSize = service.MaxPageSize
	}
	return gin.H{
		"items":    items,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	}
}

// @Summary      List drivers
// @Tags         drivers
// @Produce      json
// @Param        search    query  string  false  "Name or license substring"
// @Param        page      query  int     false  "1-based page"
// @Param        pageSize  query  int     false  "Page size"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/drivers [get]
// @Security     BearerAuth
func (h *Handler) listDrivers(c *gin.Context) {
	filter := service.DriverFilter{
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 0),
	}
	drivers, total, err := h.services.Drivers.List(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, err, "drivers_list_failed")
		return
	}
	respondData(c, http.StatusOK, listMeta(drivers, total, filter.Page, filter.PageSize), "")
}

// @Summary      Create driver
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Param        body  body   driverRequest  true  "Driver payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/drivers [post]
// @Security     BearerAuth
func (h *Handler) createDriver(c *gin.Context) {
	var req driverRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	d, err := h.services.Drivers.Create(c.Request.Context(), req.toModel())
	if err != nil {
		h.respondServiceError(c, err, "driver_create_failed")
		return
	}
	respondData(c, http.StatusCreated, d, "driver created")
}

// @Summary      Get driver
// @Tags         drivers
// @Produce      json
// @Param        id  path  string  true  "Driver ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/drivers/{id} [get]
// @Security     BearerAuth
func (h *Handler) getDriver(c *gin.Context) {
	d, err := h.services.Drivers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "driver_get_failed", "id", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, d, "")
}

// @Summary      Update driver
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "Driver ID"
// @Param        body  body  driverRequest  true  "Driver payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/drivers/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateDriver(c *gin.Context) {
	var req driverRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	d := req.toModel()
	d.ID = c.Param("id")
	updated, err := h.services.Drivers.Update(c.Request.Context(), d)
	if err != nil {
		h.respondServiceError(c, err, "driver_update_failed", "id", d.ID)
		return
	}
	respondData(c, http.StatusOK, updated, "driver updated")
}

// @Summary      Delete driver
// @Tags         drivers
// @Produce      json
// @Param        id  path  string  true  "Driver ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/drivers/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteDriver(c *gin.Context) {
	if err := h.services.Drivers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err, "driver_delete_failed", "id", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, nil, "driver deleted")
}

// @Summary      List one driver's logs
// @Tags         drivers
// @Produce      json
// @Param        id         path   string  true   "Driver ID"
// @Param        startDate  query  string  false  "YYYY-MM-DD, inclusive"
// @Param        endDate    query  string  false  "YYYY-MM-DD, inclusive"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/drivers/{id}/logs [get]
// @Security     BearerAuth
func (h *Handler) listDriverLogs(c *gin.Context) {
	driverID := c.Param("id")

	// 404 for unknown drivers, not an empty list.
	if _, err := h.services.Drivers.Get(c.Request.Context(), driverID); err != nil {
		h.respondServiceError(c, err, "driver_logs_failed", "id", driverID)
		return
	}

	filter := service.LogFilter{
		DriverID:  driverID,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Page:      queryInt(c, "page", 1),
		PageSize:  queryInt(c, "pageSize", 0),
	}
	logs, total, err := h.services.Logs.List(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, err, "driver_logs_failed", "id", driverID)
		return
	}
	respondData(c, http.StatusOK, listMeta(logs, total, filter.Page, filter.PageSize), "")
}

// @Summary      Driver stats
// @Tags         drivers
// @Produce      json
// @Param        id         path   string  true   "Driver ID"
// @Param        period     query  int     false  "Window in days: 7, 30, or 90 (others treated as 30)"
// @Param        startDate  query  string  false  "Explicit range start, YYYY-MM-DD"
// @Param        endDate    query  string  false  "Explicit range end, YYYY-MM-DD"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/drivers/{id}/stats [get]
// @Security     BearerAuth
func (h *Handler) getDriverStats(c *gin.Context) {
	params := service.StatsParams{
		PeriodDays: queryInt(c, "period", 0),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
	}
	stats, err := h.services.Stats.DriverStats(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		h.respondServiceError(c, err, "driver_stats_failed", "id", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, stats, "")
}

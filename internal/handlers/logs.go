package handlers

import (
	"net/http"
	"strconv"

	"driverlogs/internal/models"
	"driverlogs/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating and updating daily logs. Derived fields are
// not accepted; the service recomputes them on every write.
type logRequest struct {
	DriverID            string              `json:"driverId"`
	Date                string              `json:"date"`
	DutyStatuses        []models.DutyStatus `json:"dutyStatuses" binding:"required"`
	Remarks             string              `json:"remarks"`
	ShippingDocuments   string              `json:"shippingDocuments"`
	CoDriverName        string              `json:"coDriverName"`
	VehicleNumbers      string              `json:"vehicleNumbers"`
	TotalMiles          int                 `json:"totalMiles"`
	TotalMilesToday     int                 `json:"totalMilesToday"`
	TotalMilesYesterday int                 `json:"totalMilesYesterday"`
}

func (r logRequest) toModel() models.DailyLog {
	return models.DailyLog{
		DriverID:            r.DriverID,
		Date:                r.Date,
		DutyStatuses:        r.DutyStatuses,
		Remarks:             r.Remarks,
		ShippingDocuments:   r.ShippingDocuments,
		CoDriverName:        r.CoDriverName,
		VehicleNumbers:      r.VehicleNumbers,
		TotalMiles:          r.TotalMiles,
		TotalMilesToday:     r.TotalMilesToday,
		TotalMilesYesterday: r.TotalMilesYesterday,
	}
}

// @Summary      List daily logs
// @Tags         logs
// @Produce      json
// @Param        driverId   query  string  false  "Filter by driver"
// @Param        startDate  query  string  false  "YYYY-MM-DD, inclusive"
// @Param        endDate    query  string  false  "YYYY-MM-DD, inclusive"
// @Param        compliant  query  bool    false  "Filter by verdict"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/logs [get]
// @Security     BearerAuth
func (h *Handler) listLogs(c *gin.Context) {
	filter := service.LogFilter{
		DriverID:  c.Query("driverId"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Page:      queryInt(c, "page", 1),
		PageSize:  queryInt(c, "pageSize", 0),
	}
	if s := c.Query("compliant"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "compliant must be true or false"})
			return
		}
		filter.Compliant = &v
	}

	logs, total, err := h.services.Logs.List(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, err, "logs_list_failed")
		return
	}
	respondData(c, http.StatusOK, listMeta(logs, total, filter.Page, filter.PageSize), "")
}

// @Summary      Create daily log
// @Description  Validates duty statuses, geocodes named locations, and computes hours, compliance, and route stats.
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body  body   logRequest  true  "Log payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/logs [post]
// @Security     BearerAuth
func (h *Handler) createLog(c *gin.Context) {
	var req logRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	l, err := h.services.Logs.Create(c.Request.Context(), req.toModel())
	if err != nil {
		h.respondServiceError(c, err, "log_create_failed", "driverId", req.DriverID, "date", req.Date)
		return
	}
	respondData(c, http.StatusCreated, l, "log created")
}

// @Summary      Get daily log
// @Tags         logs
// @Produce      json
// @Param        id  path  string  true  "Log ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/logs/{id} [get]
// @Security     BearerAuth
func (h *Handler) getLog(c *gin.Context) {
	l, err := h.services.Logs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "log_get_failed", "id", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, l, "")
}

// @Summary      Update daily log
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        id    path  string      true  "Log ID"
// @Param        body  body  logRequest  true  "Log payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/logs/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateLog(c *gin.Context) {
	var req logRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	l := req.toModel()
	l.ID = c.Param("id")
	updated, err := h.services.Logs.Update(c.Request.Context(), l)
	if err != nil {
		h.respondServiceError(c, err, "log_update_failed", "id", l.ID)
		return
	}
	respondData(c, http.StatusOK, updated, "log updated")
}

// @Summary      Delete daily log
// @Tags         logs
// @Produce      json
// @Param        id  path  string  true  "Log ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/logs/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteLog(c *gin.Context) {
	if err := h.services.Logs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err, "log_delete_failed", "id", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, nil, "log deleted")
}

// Request DTO for the dry-run compliance check.
type complianceCheckRequest struct {
	DutyStatuses []models.DutyStatus `json:"dutyStatuses"`
}

// @Summary      Check compliance
// @Description  Evaluates duty statuses against the 11-hour, 14-hour, and 10-hour rules without saving anything.
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body  body   complianceCheckRequest  true  "Duty statuses"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/logs/compliance-check [post]
// @Security     BearerAuth
func (h *Handler) checkCompliance(c *gin.Context) {
	var req complianceCheckRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	result, err := h.services.Compliance.Check(req.DutyStatuses)
	if err != nil {
		h.respondServiceError(c, err, "compliance_check_failed")
		return
	}
	respondData(c, http.StatusOK, result, "")
}

// @Summary      Get a log's route
// @Tags         logs
// @Produce      json
// @Param        id  path  string  true  "Log ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/logs/{id}/route [get]
// @Security     BearerAuth
func (h *Handler) getLogRoute(c *gin.Context) {
	route, err := h.services.GPS.LogRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "log_route_failed", "id", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, route, "")
}

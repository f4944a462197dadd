package handlers

import (
	"net/http"

	"driverlogs/internal/models"

	"github.com/gin-gonic/gin"
)

type geocodeRequest struct {
	Location string `json:"location" binding:"required"`
}

type reverseGeocodeRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type batchGeocodeRequest struct {
	Locations []string `json:"locations" binding:"required"`
}

type distanceRequest struct {
	Start models.Coordinate `json:"start"`
	End   models.Coordinate `json:"end"`
	Unit  string            `json:"unit"`
}

type routeDistanceRequest struct {
	Waypoints []models.Coordinate `json:"waypoints" binding:"required"`
	Unit      string              `json:"unit"`
}

// @Summary      Geocode a location name
// @Tags         gps
// @Accept       json
// @Produce      json
// @Param        body  body   geocodeRequest  true  "Location name"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/gps/geocode [post]
// @Security     BearerAuth
func (h *Handler) geocode(c *gin.Context) {
	var req geocodeRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	loc, err := h.services.GPS.Geocode(c.Request.Context(), req.Location)
	if err != nil {
		h.respondServiceError(c, err, "geocode_failed", "location", req.Location)
		return
	}
	respondData(c, http.StatusOK, loc, "")
}

// @Summary      Reverse geocode a coordinate
// @Tags         gps
// @Accept       json
// @Produce      json
// @Param        body  body   reverseGeocodeRequest  true  "Coordinate"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/gps/reverse-geocode [post]
// @Security     BearerAuth
func (h *Handler) reverseGeocode(c *gin.Context) {
	var req reverseGeocodeRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	addr, err := h.services.GPS.ReverseGeocode(c.Request.Context(), req.Lat, req.Lng)
	if err != nil {
		h.respondServiceError(c, err, "reverse_geocode_failed", "lat", req.Lat, "lng", req.Lng)
		return
	}
	respondData(c, http.StatusOK, addr, "")
}

// @Summary      Geocode several location names
// @Description  Per-item results; one failed lookup does not fail the batch.
// @Tags         gps
// @Accept       json
// @Produce      json
// @Param        body  body   batchGeocodeRequest  true  "Location names"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/gps/batch-geocode [post]
// @Security     BearerAuth
func (h *Handler) batchGeocode(c *gin.Context) {
	var req batchGeocodeRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	items := h.services.GPS.BatchGeocode(c.Request.Context(), req.Locations)
	respondData(c, http.StatusOK, gin.H{"results": items, "total": len(items)}, "")
}

// @Summary      Distance between two coordinates
// @Tags         gps
// @Accept       json
// @Produce      json
// @Param        body  body   distanceRequest  true  "Start, end, and unit (miles or kilometers)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/gps/calculate-distance [post]
// @Security     BearerAuth
func (h *Handler) calculateDistance(c *gin.Context) {
	var req distanceRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	dist, err := h.services.GPS.Distance(req.Start, req.End, req.Unit)
	if err != nil {
		h.respondServiceError(c, err, "distance_failed")
		return
	}
	unit := req.Unit
	if unit == "" {
		unit = models.UnitMiles
	}
	respondData(c, http.StatusOK, gin.H{"distance": dist, "unit": unit}, "")
}

// @Summary      Distance along a waypoint route
// @Tags         gps
// @Accept       json
// @Produce      json
// @Param        body  body   routeDistanceRequest  true  "Waypoints and unit"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/gps/calculate-route-distance [post]
// @Security     BearerAuth
func (h *Handler) calculateRouteDistance(c *gin.Context) {
	var req routeDistanceRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	total, legs, err := h.services.GPS.RouteDistance(req.Waypoints, req.Unit)
	if err != nil {
		h.respondServiceError(c, err, "route_distance_failed")
		return
	}
	unit := req.Unit
	if unit == "" {
		unit = models.UnitMiles
	}
	respondData(c, http.StatusOK, gin.H{"totalDistance": total, "legs": legs, "unit": unit}, "")
}

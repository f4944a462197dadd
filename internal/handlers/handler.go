package handlers

import (
	"driverlogs/internal/logger"
	"driverlogs/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live dashboard stream (HTTP upgrade), same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerDriverRoutes(api)
		h.registerLogRoutes(api)
		h.registerGPSRoutes(api)
		api.GET("/dashboard/stats", h.getDashboardStats)
	}
}

func (h *Handler) registerDriverRoutes(api *gin.RouterGroup) {
	drivers := api.Group("/drivers")
	{
		drivers.GET("", h.listDrivers)
		drivers.POST("", h.createDriver)
		drivers.GET("/:id", h.getDriver)
		drivers.PUT("/:id", h.updateDriver)
		drivers.DELETE("/:id", h.deleteDriver)
		drivers.GET("/:id/logs", h.listDriverLogs)
		drivers.GET("/:id/stats", h.getDriverStats)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.listLogs)
		logs.POST("", h.createLog)
		// Body example: {"dutyStatuses":[{"status":"driving","startHour":6,"startMinute":0,"endHour":17,"endMinute":0}]}
		logs.POST("/compliance-check", h.checkCompliance)
		logs.GET("/:id", h.getLog)
		logs.PUT("/:id", h.updateLog)
		logs.DELETE("/:id", h.deleteLog)
		logs.GET("/:id/route", h.getLogRoute)
	}
}

func (h *Handler) registerGPSRoutes(api *gin.RouterGroup) {
	gps := api.Group("/gps")
	{
		gps.POST("/geocode", h.geocode)
		gps.POST("/reverse-geocode", h.reverseGeocode)
		gps.POST("/batch-geocode", h.batchGeocode)
		gps.POST("/calculate-distance", h.calculateDistance)
		gps.POST("/calculate-route-distance", h.calculateRouteDistance)
	}
}

package handlers

import (
	"climacontrol/internal/logger"
	"climacontrol/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
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
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		h.registerEquipmentRoutes(api)
		h.registerEnvironmentRoutes(api)
		h.registerRoutineRoutes(api)
		h.registerAlertRoutes(api)
		h.registerReportRoutes(api)
		h.registerSettingsRoutes(api)
	}

	// Live dashboard feed over the same port.
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerEquipmentRoutes(api *gin.RouterGroup) {
	equipments := api.Group("/equipments")
	{
		equipments.GET("", h.listEquipments)
		equipments.POST("", h.createEquipment)
		equipments.GET("/:id", h.getEquipment)
		equipments.POST("/:id/toggle", h.toggleEquipment)
		equipments.PUT("/:id/power", h.setEquipmentPower)
		equipments.PUT("/:id/target", h.setEquipmentTarget)
		equipments.PUT("/:id/mode", h.setEquipmentMode)
	}
}

func (h *Handler) registerEnvironmentRoutes(api *gin.RouterGroup) {
	api.GET("/environments", h.listEnvironments)
}

func (h *Handler) registerRoutineRoutes(api *gin.RouterGroup) {
	routines := api.Group("/routines")
	{
		routines.GET("", h.listRoutines)
		routines.POST("", h.createRoutine)
		routines.POST("/preview", h.previewRoutine)
		routines.GET("/:id", h.getRoutine)
		routines.PUT("/:id/enabled", h.setRoutineEnabled)
		routines.DELETE("/:id", h.deleteRoutine)
	}
}

func (h *Handler) registerAlertRoutes(api *gin.RouterGroup) {
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.DELETE("/:id", h.dismissAlert)
	}
}

func (h *Handler) registerReportRoutes(api *gin.RouterGroup) {
	reports := api.Group("/reports")
	{
		reports.GET("/overview", h.getOverview)
		reports.GET("/energy", h.getEnergyReport)
	}
}

func (h *Handler) registerSettingsRoutes(api *gin.RouterGroup) {
	settings := api.Group("/settings")
	{
		settings.GET("/theme", h.getTheme)
		settings.PUT("/theme", h.setTheme)
	}
}

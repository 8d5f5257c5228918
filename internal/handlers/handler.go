package handlers

import (
	_ "smart_thermostat/docs"
	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	authRequired bool
}

// NewHandler constructs a new HTTP handler with dependencies.
// When authRequired is set, the /api routes demand a bearer token.
func NewHandler(services *service.Service, log *logger.Logger, authRequired bool) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log, authRequired: authRequired}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware, h.accessLogMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// state stream; browsers cannot set headers on the upgrade request
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
	var guards []gin.HandlerFunc
	if h.authRequired {
		guards = append(guards, h.userIdMiddleware)
	}

	api := r.Group("/api", guards...)
	{
		api.POST("/adjust-temperature", h.adjustTemperature)
		api.GET("/history", h.getHistory)
		api.GET("/weather", h.getWeather)
	}

	v1 := api.Group("/v1")
	{
		v1.GET("/thermostat/state", h.getState)
	}
}

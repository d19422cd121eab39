package transport

import (
	"time"

	"github.com/ds124wfegd/club-events/internal/service"
	"github.com/ds124wfegd/club-events/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

func InitRoutes(
	eventHandler *EventHandler,
	registrationHandler *RegistrationHandler,
	merchHandler *MerchHandler,
	adminHandler *AdminHandler,
	healthHandler *HealthHandler,
	authService service.AuthService,
	requestTimeout time.Duration,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(requestTimeout))

	router.GET("/health", healthHandler.Health)

	// API routes
	api := router.Group("/api/v1")
	{
		events := api.Group("/events")
		{
			events.GET("", eventHandler.GetLiveEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("/:id/register", registrationHandler.Register)
			events.GET("/:id/success", eventHandler.GetRegistrationSuccess)
		}

		merch := api.Group("/merch")
		{
			merch.GET("/catalog", merchHandler.GetCatalog)
			merch.POST("/orders", merchHandler.PlaceOrder)
		}
	}

	// Admin routes
	router.GET(middleware.LoginPath, adminHandler.GetLogin)
	router.POST(middleware.LoginPath, adminHandler.Login)
	router.POST("/admin/logout", adminHandler.Logout)

	admin := router.Group("/admin", middleware.AdminAuth(authService))
	{
		admin.GET("/events", eventHandler.GetAllEvents)
		admin.POST("/events", eventHandler.CreateEvent)
		admin.DELETE("/events/:id", eventHandler.DeleteEvent)
		admin.GET("/events/:id/participants", adminHandler.GetParticipants)
		admin.GET("/events/:id/participants.csv", adminHandler.ExportParticipants)
		admin.GET("/merch/orders", merchHandler.GetAllOrders)
	}

	return router
}

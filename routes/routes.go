package routes

import (
	"net/http"
	"time"

	"tablebot/config"
	"tablebot/handlers"
	"tablebot/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoutes registers the messaging provider callback (two paths
// for provider compatibility) and the JSON chat endpoint.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.WebhookAuthMiddleware()
	r.POST("/bot", auth, hb.WebhookHandler)
	r.POST("/webhook", auth, hb.WebhookHandler)
	r.POST("/chat", hb.ChatHandler)
}

// RegisterPublicRoutes registers the read-only restaurant endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/menu", hb.GetMenuHandler)
	r.GET("/addons", hb.GetAddonsHandler)
	r.GET("/availability", hb.GetAvailabilityHandler)

	r.GET("/reservations", hb.SearchReservationsHandler)
	r.GET("/reservations/:id", hb.GetReservationHandler)
	r.GET("/reservations/date/:date", hb.GetReservationsByDateHandler)
	r.POST("/reservations/:id/cancel", hb.CancelReservationHandler)
	r.GET("/users/:user_id/reservations", hb.GetUserReservationsHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/stats", hb.AdminStatsHandler)
		adminGroup.GET("/sessions", hb.AdminSessionsHandler)
		adminGroup.DELETE("/sessions/:user_id", hb.AdminClearSessionHandler)
	}
}

// RegisterHealthRoutes registers the health check and the service info root.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm " + config.AppConfig.BotName})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    "tablebot",
			"restaurant": config.AppConfig.RestaurantName,
			"languages":  []string{"en", "ta"},
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Key", "X-Webhook-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterWebhookRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

package routes

import (
	"net/http"

	"booklyn_backend/internal/auth"
	"booklyn_backend/internal/handlers"
	"booklyn_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes регистрирует все маршруты API под /api/v1
func SetupRoutes(router *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenManager) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	h.Auth.RegisterRoutes(api)
	h.User.RegisterRoutes(protected)
	h.Profile.RegisterRoutes(api, protected)
	h.Gig.RegisterRoutes(api, protected)
	h.Discovery.RegisterRoutes(api)
	h.Application.RegisterRoutes(protected)
	h.Notification.RegisterRoutes(protected)
	h.GigRequest.RegisterRoutes(api, protected)
}

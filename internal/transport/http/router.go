package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/rqapp/rq-mobile-api/internal/transport/http/handler"
	"github.com/rqapp/rq-mobile-api/internal/transport/http/middleware"
)

// NewRouter wires the full mobile API surface. All business routes live
// under /api/v2/mobile; the ping endpoint stays at the root for load
// balancer checks.
func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	savedHandler *handler.SavedHandler,
	userHandler *handler.UserHandler,
	notificationHandler *handler.NotificationHandler,
	billingHandler *handler.BillingHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.GET("/health/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v2/mobile")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/verify-device", authHandler.VerifyDevice)

	properties := api.Group("/properties")
	properties.GET("/search", propertyHandler.Search)
	properties.GET("/saved", savedHandler.List)
	properties.POST("/saved", savedHandler.Save)
	properties.DELETE("/saved/:id", savedHandler.Delete)
	properties.GET("/:id", propertyHandler.GetByID)

	user := api.Group("/user")
	user.GET("/profile", userHandler.Profile)
	user.GET("/subscription", userHandler.Subscription)

	api.GET("/notifications", notificationHandler.List)
	api.PUT("/notifications/:id/read", notificationHandler.MarkRead)

	api.POST("/billing/ios/verify", billingHandler.VerifyReceipt)

	return r
}

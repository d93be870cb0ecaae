package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hbnb/internal/credentials"
	"github.com/BruksfildServices01/hbnb/internal/facade"
	"github.com/BruksfildServices01/hbnb/internal/handlers"
	"github.com/BruksfildServices01/hbnb/internal/middleware"
)

type Dependencies struct {
	Facade *facade.Facade
	Tokens *credentials.TokenIssuer

	// Revoker is nil when token revocation is disabled.
	Revoker credentials.Revoker

	CORSOrigins []string
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(deps.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.Facade, deps.Tokens, deps.Revoker)
	userHandler := handlers.NewUserHandler(deps.Facade)
	amenityHandler := handlers.NewAmenityHandler(deps.Facade)
	placeHandler := handlers.NewPlaceHandler(deps.Facade)
	reviewHandler := handlers.NewReviewHandler(deps.Facade)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.Facade)

	requireAuth := middleware.AuthMiddleware(deps.Tokens, deps.Revoker)
	optionalAuth := middleware.OptionalAuthMiddleware(deps.Tokens, deps.Revoker)

	api := r.Group("/api/v1")

	// ======================================================
	// AUTH
	// ======================================================
	auth := api.Group("/auth")
	{
		auth.POST("/register", optionalAuth, authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", requireAuth, authHandler.Logout)
	}

	// ======================================================
	// PUBLIC READS
	// ======================================================
	api.GET("/users/:id", userHandler.Get)
	api.GET("/amenities", amenityHandler.List)
	api.GET("/amenities/:id", amenityHandler.Get)
	api.GET("/places", placeHandler.List)
	api.GET("/places/:id", placeHandler.Get)
	api.GET("/places/:id/reviews", placeHandler.Reviews)
	api.GET("/reviews", reviewHandler.List)
	api.GET("/reviews/:id", reviewHandler.Get)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	protected := api.Group("")
	protected.Use(requireAuth)
	{
		protected.GET("/users", userHandler.List)
		protected.GET("/users/me", userHandler.Me)
		protected.POST("/users", userHandler.Create)
		protected.PUT("/users/:id", userHandler.Update)

		protected.POST("/amenities", amenityHandler.Create)
		protected.PUT("/amenities/:id", amenityHandler.Update)
		protected.DELETE("/amenities/:id", amenityHandler.Delete)

		protected.POST("/places", placeHandler.Create)
		protected.PUT("/places/:id", placeHandler.Update)
		protected.DELETE("/places/:id", placeHandler.Delete)
		protected.DELETE("/places/:id/amenities/:amenityID", placeHandler.RemoveAmenity)

		protected.POST("/reviews", reviewHandler.Create)
		protected.PUT("/reviews/:id", reviewHandler.Update)
		protected.DELETE("/reviews/:id", reviewHandler.Delete)

		protected.GET("/admin/audit-logs", auditLogsHandler.List)
	}
}

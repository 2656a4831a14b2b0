// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"uniboks/internal/domain/book"
	"uniboks/internal/domain/purchase"
	"uniboks/internal/domain/user"
	"uniboks/internal/domain/wishlist"
	"uniboks/internal/infrastructure/http/v1/handlers"
	"uniboks/internal/infrastructure/http/v1/middleware"
	"uniboks/internal/infrastructure/storage/postgres"
	"uniboks/pkg/logger"
)

// RouterConfig holds the wired services for route registration.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	Users     *user.Service
	Books     *book.Service
	Wishlists *wishlist.Service
	Purchases *purchase.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	userHandler := handlers.NewUserHandler(base, cfg.Users)
	bookHandler := handlers.NewBookHandler(base, cfg.Books)
	wishlistHandler := handlers.NewWishlistHandler(base, cfg.Wishlists)
	purchaseHandler := handlers.NewPurchaseHandler(base, cfg.Purchases)

	api := router.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.POST("/login", userHandler.Login)
			users.GET("/check", userHandler.Check)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id/profile", userHandler.UpdateProfile)
		}

		books := api.Group("/books")
		{
			books.GET("", bookHandler.Home)
			books.GET("/sections", bookHandler.Sections)
			books.GET("/:id", bookHandler.Get)
		}

		wishlists := api.Group("/wishlist")
		{
			wishlists.POST("", wishlistHandler.Add)
			wishlists.DELETE("", wishlistHandler.Remove)
			wishlists.GET("", wishlistHandler.List)
		}

		purchases := api.Group("/purchases")
		{
			purchases.POST("/checkout", purchaseHandler.Checkout)
			purchases.GET("", purchaseHandler.List)
			purchases.GET("/summary", purchaseHandler.Summary)
		}
	}

	return router
}

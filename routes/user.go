package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/ablmazed/pg-shop-api/controllers/cart"
	userControllers "github.com/ablmazed/pg-shop-api/controllers/user"
	"github.com/ablmazed/pg-shop-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateProfile(db))
		userGroup.PUT("/address", userControllers.UpdateAddress(db))

		// ──────────────── Shopping Cart ────────────────
		userGroup.GET("/cart", cartControllers.GetUserCart(db))
	}
}

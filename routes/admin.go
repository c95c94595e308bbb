package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/ablmazed/pg-shop-api/controllers/cart"
	productControllers "github.com/ablmazed/pg-shop-api/controllers/product"
	userControllers "github.com/ablmazed/pg-shop-api/controllers/user"
	"github.com/ablmazed/pg-shop-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Product CRUD ────────────────
		adminGroup.POST("/products", productControllers.CreateProduct(db))
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))

		// ──────────────── Users ────────────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/users/:user_id", userControllers.GetUserByID(db))
		adminGroup.GET("/users/:user_id/cart", cartControllers.GetAdminUserCart(db))
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/ablmazed/pg-shop-api/controllers/cart"
	productControllers "github.com/ablmazed/pg-shop-api/controllers/product"
)

// SetupStoreRoutes registers the public storefront endpoints. The cart
// endpoints are keyed by the session-cart cookie, so anonymous visitors can
// shop before signing in.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/latest", productControllers.GetLatestProducts(db))
	r.GET("/products/:slug", productControllers.GetProductBySlug(db))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetSessionCart(db))
		cartGroup.POST("/items", cartControllers.AddCartItem(db))
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveCartItem(db))
	}
}

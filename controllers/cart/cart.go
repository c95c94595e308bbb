package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ablmazed/pg-shop-api/middleware"
	"github.com/ablmazed/pg-shop-api/models"
	"github.com/ablmazed/pg-shop-api/store"
)

type cartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty" binding:"required,min=1"`
}

// POST /cart/items
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	carts := store.NewCartStore(db)
	return func(c *gin.Context) {
		var input cartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to validate product"})
			return
		}
		if product.Stock < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product is out of stock"})
			return
		}

		cart, err := carts.AddItem(c.GetString(middleware.SessionCartKey), models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Slug:      product.Slug,
			Image:     product.Image,
			Price:     product.Price,
			Qty:       input.Qty,
		}, product.Stock)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart", "cart": cart})
	}
}

// DELETE /cart/items/:product_id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	carts := store.NewCartStore(db)
	return func(c *gin.Context) {
		productID := c.Param("product_id")

		cart, err := carts.RemoveItem(c.GetString(middleware.SessionCartKey), productID)
		if err != nil {
			if errors.Is(err, store.ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart", "cart": cart})
	}
}

// GET /cart
func GetSessionCart(db *gorm.DB) gin.HandlerFunc {
	carts := store.NewCartStore(db)
	return func(c *gin.Context) {
		cart, err := carts.FindBySessionID(c.GetString(middleware.SessionCartKey))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}
		if cart == nil {
			// No cart yet for this session; an empty cart is the normal answer.
			c.JSON(http.StatusOK, gin.H{"success": true, "cart": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	carts := store.NewCartStore(db)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		cart, err := carts.FindByUserID(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}
		if cart == nil {
			// Fall back to the anonymous cart while it is still unclaimed.
			cart, err = carts.FindBySessionID(c.GetString(middleware.SessionCartKey))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// GET /admin/users/:user_id/cart
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	carts := store.NewCartStore(db)
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "user_id is required"})
			return
		}

		cart, err := carts.FindByUserID(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}
		if cart == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ablmazed/pg-shop-api/models"
)

type productInput struct {
	Name        string          `json:"name" binding:"required,min=3"`
	Slug        string          `json:"slug" binding:"required,min=3"`
	Category    string          `json:"category" binding:"required"`
	Brand       string          `json:"brand" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Image       string          `json:"image" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
	IsFeatured  bool            `json:"is_featured"`
	Banner      string          `json:"banner"`
}

// CreateProduct handles POST /admin/products.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Slug:        input.Slug,
			Category:    input.Category,
			Brand:       input.Brand,
			Description: input.Description,
			Image:       input.Image,
			Price:       input.Price.Round(2),
			Stock:       input.Stock,
			IsFeatured:  input.IsFeatured,
			Banner:      input.Banner,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

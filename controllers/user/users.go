package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ablmazed/pg-shop-api/auth"
	"github.com/ablmazed/pg-shop-api/models"
)

type updateProfileInput struct {
	Name string `json:"name" binding:"required,min=3"`
}

type updateAddressInput struct {
	FullName      string  `json:"full_name" binding:"required,min=3"`
	StreetAddress string  `json:"street_address" binding:"required,min=3"`
	City          string  `json:"city" binding:"required,min=3"`
	PostalCode    string  `json:"postal_code" binding:"required,min=3"`
	Country       string  `json:"country" binding:"required,min=3"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// PUT /user
//
// Updating the display name re-issues the session token so the new name is
// reflected in the client's session.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		var input updateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		if err := db.Model(&user).Update("name", input.Name).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
			return
		}

		token, err := auth.IssueToken(&auth.Identity{
			ID:    user.ID,
			Name:  input.Name,
			Email: user.Email,
			Role:  user.Role,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to refresh session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated successfully", "token": token})
	}
}

// PUT /user/address
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		var input updateAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		address := models.Address{
			FullName:      input.FullName,
			StreetAddress: input.StreetAddress,
			City:          input.City,
			PostalCode:    input.PostalCode,
			Country:       input.Country,
			Lat:           input.Lat,
			Lng:           input.Lng,
		}
		if err := db.Model(&user).Updates(map[string]interface{}{
			"address_full_name":      address.FullName,
			"address_street_address": address.StreetAddress,
			"address_city":           address.City,
			"address_postal_code":    address.PostalCode,
			"address_country":        address.Country,
			"address_lat":            address.Lat,
			"address_lng":            address.Lng,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated successfully"})
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "name", "role", "created_at"). // Select only public fields
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}

// GET /admin/users/:user_id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		err := db.First(&user, "id = ?", c.Param("user_id")).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

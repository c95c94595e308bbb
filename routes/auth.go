package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ablmazed/pg-shop-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/sign-up", auth.SignUpHandler(db))
		authGroup.POST("/sign-in", auth.SignInHandler(db))
		authGroup.POST("/sign-out", auth.SignOutHandler())
	}
}

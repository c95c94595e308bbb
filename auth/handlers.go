package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ablmazed/pg-shop-api/middleware"
)

type signInInput struct {
	Email    string `json:"email" binding:"required,email,min=3"`
	Password string `json:"password" binding:"required,min=3"`
}

type signUpInput struct {
	Name            string `json:"name" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email,min=3"`
	Password        string `json:"password" binding:"required,min=3"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// POST /auth/sign-in
func SignInHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input signInInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		// The merge step wants the id the browser actually sent, not the one
		// the middleware may have minted for this very request.
		sessionCartID, _ := c.Cookie(middleware.SessionCartCookie)

		token, identity, err := SignInWithCredentials(db, input.Email, input.Password, sessionCartID)
		if err != nil {
			respondSignInError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Signed in successfully",
			"token":   token,
			"user":    identity,
		})
	}
}

// POST /auth/sign-up
func SignUpHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input signUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		if _, err := Register(db, input.Name, input.Email, input.Password); err != nil {
			if errors.Is(err, ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
			return
		}

		// Establish the session right away, including the cart merge.
		sessionCartID, _ := c.Cookie(middleware.SessionCartCookie)
		token, identity, err := SignInWithCredentials(db, input.Email, input.Password, sessionCartID)
		if err != nil {
			respondSignInError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "User created successfully",
			"token":   token,
			"user":    identity,
		})
	}
}

// POST /auth/sign-out
//
// Sessions are stateless JWTs, so signing out is the client discarding its
// token; the server just acknowledges.
func SignOutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Signed out"})
	}
}

func respondSignInError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		// Same message no matter which part of the credentials was wrong.
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
	case errors.Is(err, ErrSessionCartMissing):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Session cart not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
	}
}

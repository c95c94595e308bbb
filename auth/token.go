package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionMaxAge = 30 * 24 * time.Hour

// IssueToken signs the session token for an authenticated identity. The
// claims carry the user id, role and display name; callers re-issue the
// token when the display name changes.
func IssueToken(identity *Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":  identity.ID,
		"name": identity.Name,
		"role": identity.Role,
		"exp":  time.Now().Add(sessionMaxAge).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

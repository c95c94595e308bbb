package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ablmazed/pg-shop-api/models"
)

// Placeholder name stored for identities whose provider did not supply one.
const noNameSentinel = "NO_NAME"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already exists")
)

// Identity is the authenticated principal produced by a successful
// credential check.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Authorize verifies an email/password pair against the stored hash and
// returns the matching identity. Any mismatch (unknown email, no password
// set, wrong password) returns a nil identity with no error; callers must
// not tell the cases apart in anything user-visible.
func Authorize(db *gorm.DB, email, password string) (*Identity, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if user.Password == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)) != nil {
		return nil, nil
	}

	if user.Name == noNameSentinel {
		name, err := normalizeDisplayName(db, &user)
		if err != nil {
			return nil, err
		}
		user.Name = name
	}

	return &Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// Register creates a user with a bcrypt-hashed password and returns the new
// identity so the caller can establish a session without a second round trip.
func Register(db *gorm.DB, name, email, password string) (*Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashed := string(hash)

	user := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: &hashed,
		Role:     "user",
	}
	if err := db.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// normalizeDisplayName replaces the NO_NAME placeholder with the local part
// of the user's email and persists it. Runs at most once per user: once the
// placeholder is gone, Authorize never calls this again.
func normalizeDisplayName(db *gorm.DB, user *models.User) (string, error) {
	name := user.Email
	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("name", name).Error; err != nil {
		return "", err
	}
	return name, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}

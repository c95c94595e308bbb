package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ablmazed/pg-shop-api/middleware"
)

type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

func newAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.EnsureSessionCartID)
	r.POST("/auth/sign-up", SignUpHandler(db))
	r.POST("/auth/sign-in", SignInHandler(db))
	r.POST("/auth/sign-out", SignOutHandler())
	return r
}

func postJSON(r *gin.Engine, path string, body any, sessionCartID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionCartID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCartCookie, Value: sessionCartID})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignUpAndSignInHandlers(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	r := newAuthRouter(db)

	signUp := gin.H{
		"name":            "Alice Smith",
		"email":           "alice@example.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}

	w := postJSON(r, "/auth/sign-up", signUp, "sess-1")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)

	// duplicate email
	w = postJSON(r, "/auth/sign-up", signUp, "sess-1")
	require.Equal(t, http.StatusConflict, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Email already exists", resp.Message)

	// wrong password and unknown email answer identically
	w = postJSON(r, "/auth/sign-in", gin.H{"email": "alice@example.com", "password": "wrong00"}, "sess-1")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	wrongPasswordMsg := resp.Message

	w = postJSON(r, "/auth/sign-in", gin.H{"email": "nobody@example.com", "password": "secret1"}, "sess-1")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, wrongPasswordMsg, resp.Message)
	require.Equal(t, "Invalid email or password", resp.Message)

	// valid credentials
	w = postJSON(r, "/auth/sign-in", gin.H{"email": "alice@example.com", "password": "secret1"}, "sess-1")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
}

func TestSignInWithoutSessionCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	createUser(t, db, "Alice Smith", "alice@example.com", "secret1")
	r := newAuthRouter(db)

	// no sessionCartId cookie on the request: the sign-in fails as a whole
	w := postJSON(r, "/auth/sign-in", gin.H{"email": "alice@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "Session cart not found", resp.Message)
}

func TestSignUpValidation(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)

	// mismatched confirmation never reaches the store
	w := postJSON(r, "/auth/sign-up", gin.H{
		"name":            "Alice Smith",
		"email":           "alice@example.com",
		"password":        "secret1",
		"confirmPassword": "secret2",
	}, "sess-1")
	require.Equal(t, http.StatusBadRequest, w.Code)

	// short name
	w = postJSON(r, "/auth/sign-up", gin.H{
		"name":            "Al",
		"email":           "alice@example.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}, "sess-1")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo/internal/auth"
	"todo/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const jwtSecret = "test-secret-key"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Protected route
	protected := r.Group("/protected")
	protected.Use(middleware.JWTAuthMiddleware(jwtSecret))

	protected.GET("/resource", func(c *gin.Context) {
		subject, exists := c.Get(middleware.SubjectKey)
		if !exists {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Subject not found in context"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Access granted",
			"subject": subject,
		})
	})

	return r
}

func perform(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected/resource", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	// Arrange
	router := setupRouter()
	token, err := auth.GenerateToken(jwtSecret, "release-bot", time.Hour)
	assert.NoError(t, err)

	// Act
	resp := perform(router, "Bearer "+token)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Access granted")
	assert.Contains(t, resp.Body.String(), "release-bot")
}

func TestJWTAuthMiddleware_NoAuthHeader(t *testing.T) {
	resp := perform(setupRouter(), "")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header is required")
}

func TestJWTAuthMiddleware_InvalidAuthFormat(t *testing.T) {
	resp := perform(setupRouter(), "InvalidFormat token123")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header format must be Bearer {token}")
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	resp := perform(setupRouter(), "Bearer invalid-token")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid or expired token")
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "release-bot",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	tokenString, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))

	resp := perform(setupRouter(), "Bearer "+tokenString)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid or expired token")
}

func TestJWTAuthMiddleware_TokenWithoutSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
	}
	tokenString, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))

	resp := perform(setupRouter(), "Bearer "+tokenString)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Token has no subject")
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"todo/internal/auth"

	"github.com/gin-gonic/gin"
)

// SubjectKey is the gin context key holding the authenticated token subject.
const SubjectKey = "subject"

// JWTAuthMiddleware rejects requests without a valid HS256 bearer token
// signed with secret.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		subject, err := auth.ParseToken(secret, parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrInvalidClaims) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has no subject"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}

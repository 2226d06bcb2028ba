package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"routine-tracker/pkg/response"
)

// UserIDKey is the context key under which Auth stores the token subject.
const UserIDKey = "authUserID"

// Auth verifies a bearer token issued by the external identity provider
// and exposes its subject as the authenticated user id. The backend never
// issues tokens itself.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, 401, "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			response.Error(c, 401, "invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || claims.Subject == "" {
			response.Error(c, 401, "invalid token claims")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Next()
	}
}

// AuthorizedFor reports whether the request may act for the given user id.
// With auth disabled there is no token subject and every id is allowed.
func AuthorizedFor(c *gin.Context, userID string) bool {
	subject, exists := c.Get(UserIDKey)
	if !exists {
		return true
	}
	return subject == userID
}

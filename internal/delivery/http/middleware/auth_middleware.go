package middleware

import (
	"net/http"
	"strings"

	"cv360-backend/internal/delivery/http/response"
	"cv360-backend/internal/domain"
	"cv360-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Auth is the gate in front of every protected route. It accepts the token
// either raw or with a "Bearer " prefix, verifies it, then loads the user
// fresh from the store so the role can never be stale. Handlers and
// usecases read identity from the context and never re-parse the token.
func Auth(tm *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Token is missing", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tm.Verify(tokenString)
		if err != nil {
			// Expired, malformed and wrong-signature all collapse to one
			// answer; callers cannot probe which it was.
			response.Error(c, http.StatusUnauthorized, "Token is invalid", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

// RequireRole declares the role a route group demands. Policy lives here, at
// the route table, instead of being re-derived inside every handler.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserRole)) != role {
			response.Error(c, http.StatusForbidden, "Access denied: insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user's ID from the request context.
func CallerID(c *gin.Context) int64 {
	id, _ := c.Get(string(domain.KeyUserID))
	v, _ := id.(int64)
	return v
}

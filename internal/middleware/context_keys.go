package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// userIDKey and userRoleKey hold the authenticated caller's identity in
// the request context. Using a custom type prevents collisions.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetRequestorFromContext builds the service-layer caller identity from
// the values the auth middleware stored. The boolean is false when the
// request was not authenticated.
func GetRequestorFromContext(c *gin.Context) (domain.Requestor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Requestor{}, false
	}
	role, _ := c.Request.Context().Value(userRoleKey).(string)
	return domain.Requestor{ID: userID, Role: domain.UserRole(role)}, true
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"suriname/internal/pkg/response"
	"suriname/internal/status"
)

// RequireRole lets the request through only when the session role is
// one of the given roles. This hides surfaces from the wrong role; the
// backend still enforces the real authorization on every forwarded
// call.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "로그인이 필요합니다.")
			c.Abort()
			return
		}

		for _, r := range roles {
			if role.(string) == r {
				c.Next()
				return
			}
		}

		response.Alert(c, http.StatusForbidden, "FORBIDDEN", "접근 권한이 없습니다.")
		c.Abort()
	}
}

// AdminOnly requires the ADMIN role.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(status.RoleAdmin)
}

// StaffOrAdmin covers the back-office surfaces.
func StaffOrAdmin() gin.HandlerFunc {
	return RequireRole(status.RoleAdmin, status.RoleStaff)
}

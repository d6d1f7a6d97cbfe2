package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketlink/backend/internal/interfaces/http/dto"
)

// RequireRole returns a middleware that rejects requests whose
// authenticated role is not in the allowed set. It must run after
// JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := GetJWTUserRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "This action is not available for your role"))
			return
		}

		c.Next()
	}
}

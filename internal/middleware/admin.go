package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

// AdminMiddleware allows the request through only when the authenticated
// caller's stored role is "admin". Runs after AuthMiddleware. A caller with
// no user record at all is rejected, not an error.
func AdminMiddleware(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")

		user, err := users.FindByEmail(c.Request.Context(), email)
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}
		if err != nil {
			utils.GetLogger().Error("Failed to load requester account",
				zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify permissions"})
			return
		}

		if user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}

		c.Next()
	}
}

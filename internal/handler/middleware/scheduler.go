package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"dogcatify-core/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// SchedulerAuthMiddleware guards the batch trigger endpoints. Only the
// external scheduler holds the signing secret; everything else gets 401.
type SchedulerAuthMiddleware struct {
	tokens *jwt.Service
}

func NewSchedulerAuthMiddleware(tokens *jwt.Service) *SchedulerAuthMiddleware {
	return &SchedulerAuthMiddleware{tokens: tokens}
}

func (m *SchedulerAuthMiddleware) RequireSchedulerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Scheduler token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			slog.Warn("scheduler token rejected", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired scheduler token",
			})
			c.Abort()
			return
		}

		c.Set("scheduler_job", claims.Job)
		c.Next()
	}
}

package account

import (
	"timetrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Login and registration are throttled per client IP to slow down
// password and access code guessing.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	accounts := r.Group("/accounts")

	throttle := middleware.RateLimitByIP(1, 5)

	{
		accounts.POST("/login", throttle, h.Login)
		accounts.POST("/logout", h.Logout)
		accounts.POST("/registration", throttle, h.Register)
	}
}

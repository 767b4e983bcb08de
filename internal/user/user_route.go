package user

import (
	"timetrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Profile and password management are open to every authenticated
// role; they live under the user prefix but carry no group gate.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	users := r.Group("/user")

	users.Use(middleware.Auth())

	{
		users.GET("/me", h.Me)
		users.PUT("/change-data", h.UpdateProfile)
		users.PUT("/change-password", h.ChangePassword)
	}
}

package administrator

import (
	"timetrack/internal/domain"
	"timetrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	admin := r.Group("/administrator")

	admin.Use(middleware.Auth(), middleware.RequireGroup(domain.GroupAdministrator))

	{
		admin.GET("/users", h.ListUsers)
		admin.PUT("/change_user/:id", h.ChangeUser)
		admin.DELETE("/delete_user/:id", h.DeleteUser)

		admin.GET("/invitations", h.ListInvitations)
		admin.POST("/invitation_generation", middleware.Idempotency(rdb), h.Invite)
		admin.DELETE("/invitations/:id", h.RevokeInvitation)
	}
}

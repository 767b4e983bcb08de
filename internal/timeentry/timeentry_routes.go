package timeentry

import (
	"timetrack/internal/domain"
	"timetrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	workspace := r.Group("/user")

	workspace.Use(middleware.Auth(), middleware.RequireGroup(domain.GroupEmployee))

	{
		workspace.GET("/calendar", h.Calendar)
		workspace.GET("/tasks/:year/:month/:day", h.DayEntries)
		workspace.POST("/tasks/:year/:month/:day", h.Create)
		workspace.PUT("/tasks/:id", h.Update)
		workspace.DELETE("/tasks/:id", h.Delete)
		workspace.POST("/tasks/selection", h.Selection)
	}
}

package director

import (
	"timetrack/internal/domain"
	"timetrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	directors := r.Group("/director")

	directors.Use(middleware.Auth(), middleware.RequireGroup(domain.GroupDirector))

	{
		directors.GET("/employees", h.Employees)
		directors.GET("/employees/:id", h.EmployeeDetail)
		directors.POST("/selection", h.Selection)
	}
}

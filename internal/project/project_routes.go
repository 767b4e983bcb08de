package project

import (
	"timetrack/internal/domain"
	"timetrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	projects := r.Group("/project")

	projects.Use(middleware.Auth(), middleware.RequireGroup(domain.GroupAdministrator))

	{
		projects.GET("/list/:companyID", h.GetAllByCompany)
		projects.POST("/:companyID/add", h.Create)
		projects.PUT("/:companyID/edit/:id", h.Update)
		projects.DELETE("/:companyID/delete/:id", h.Delete)
	}
}

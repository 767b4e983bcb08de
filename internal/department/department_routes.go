package department

import (
	"timetrack/internal/domain"
	"timetrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/department")

	departments.Use(middleware.Auth(), middleware.RequireGroup(domain.GroupAdministrator))

	{
		departments.GET("/list/:companyID", h.GetAllByCompany)
		departments.POST("/:companyID/add", h.Create)
		departments.PUT("/:companyID/edit/:id", h.Update)
		departments.DELETE("/:companyID/delete/:id", h.Delete)
	}
}

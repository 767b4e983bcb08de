package company

import (
	"timetrack/internal/domain"
	"timetrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	companies := r.Group("/company")

	companies.Use(middleware.Auth(), middleware.RequireGroup(domain.GroupAdministrator))

	{
		companies.GET("/list", h.GetAll)
		companies.POST("/add", h.Create)
		companies.PUT("/edit/:id", h.Update)
		companies.DELETE("/delete/:id", h.Delete)
	}
}

package account

import (
	"net/http"
	"strings"

	"timetrack/internal/middleware"
	"timetrack/internal/shared/apperror"
	"timetrack/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 24 * 60 * 60

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// safeNext keeps post-login redirects on this site: only rooted paths
// pass, protocol-relative ones do not.
func safeNext(next string) bool {
	return strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//")
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if next := c.Query("next"); safeNext(next) {
		resp.Redirect = next
	}

	c.SetCookie("access_token", resp.Token, cookieMaxAge, "/", "", false, true)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"redirect": middleware.LoginPath}, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

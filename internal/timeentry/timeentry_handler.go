package timeentry

import (
	"net/http"
	"strconv"

	timeentryerrors "timetrack/internal/timeentry/errors"

	"timetrack/internal/shared/apperror"
	"timetrack/internal/shared/response"

	"github.com/gin-gonic/gin"
)

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

func (h *Handler) Calendar(c *gin.Context) {
	resp, err := h.service.CalendarPage(c.Request.Context(), c.Query("year"), c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// dateParams reads the /:year/:month/:day route segments; malformed
// numbers behave like nonexistent dates.
func dateParams(c *gin.Context) (int, int, int, bool) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	day, err3 := strconv.Atoi(c.Param("day"))
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

func (h *Handler) DayEntries(c *gin.Context) {
	year, month, day, ok := dateParams(c)
	if !ok {
		writeServiceError(c, timeentryerrors.ErrDateNotFound)
		return
	}

	entries, err := h.service.DayEntries(c.Request.Context(), c.GetString("user_id"), year, month, day)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries, nil)
}

func (h *Handler) Create(c *gin.Context) {
	year, month, day, ok := dateParams(c)
	if !ok {
		writeServiceError(c, timeentryerrors.ErrDateNotFound)
		return
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Create(
		c.Request.Context(),
		c.GetString("user_id"),
		c.GetString("department_id"),
		year, month, day,
		req,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Update(
		c.Request.Context(),
		c.GetString("user_id"),
		c.GetString("department_id"),
		c.Param("id"),
		req,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Selection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	entries, err := h.service.Selection(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries, nil)
}

package director

import (
	"net/http"

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

func (h *Handler) Employees(c *gin.Context) {
	employees, err := h.service.Employees(c.Request.Context(), c.GetString("department_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, employees, nil)
}

func (h *Handler) EmployeeDetail(c *gin.Context) {
	resp, err := h.service.EmployeeDetail(c.Request.Context(), c.GetString("department_id"), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Selection answers in the requested format: a JSON table, a CSV
// attachment or an xlsx attachment.
func (h *Handler) Selection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	rows, err := h.service.Selection(c.Request.Context(), c.GetString("department_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	switch req.Format {
	case FormatCSV:
		data, err := BuildCSV(rows)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="data.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	case FormatXLSX:
		data, err := BuildXLSX(rows)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="data.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		response.Success(c, http.StatusOK, rows, nil)
	}
}

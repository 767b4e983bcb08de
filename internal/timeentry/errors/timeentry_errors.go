package timeentryerrors

import (
	"net/http"

	"timetrack/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"task not found",
		http.StatusNotFound,
	)
	ErrDateNotFound = apperror.New(
		apperror.CodeNotFound,
		"page not found",
		http.StatusNotFound,
	)
	ErrProjectNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"select a valid project",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"enter a valid period",
		http.StatusBadRequest,
	)
	ErrNoDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"no department assigned",
		http.StatusBadRequest,
	)
)

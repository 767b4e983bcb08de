package directorerrors

import (
	"net/http"

	"timetrack/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrUserOutsideDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"select valid employees",
		http.StatusBadRequest,
	)
	ErrNoDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"no department assigned",
		http.StatusBadRequest,
	)
)

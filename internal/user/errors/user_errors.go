package usererrors

import (
	"net/http"

	"timetrack/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrWrongOldPassword = apperror.New(
		apperror.CodeInvalidInput,
		"wrong old password",
		http.StatusBadRequest,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"passwords don't match",
		http.StatusBadRequest,
	)
)

package accounterrors

import (
	"net/http"

	"timetrack/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid email or password",
		http.StatusUnauthorized,
	)
	ErrAccountDisabled = apperror.New(
		apperror.CodeForbidden,
		"this account is disabled",
		http.StatusForbidden,
	)
	ErrInvalidAccessCode = apperror.New(
		apperror.CodeNotFound,
		"access code not found",
		http.StatusNotFound,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"passwords don't match",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"email is already registered",
		http.StatusConflict,
	)
)

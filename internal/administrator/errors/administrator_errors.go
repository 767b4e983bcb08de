package administratorerrors

import (
	"net/http"

	"timetrack/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrInvitationNotFound = apperror.New(
		apperror.CodeNotFound,
		"invitation not found",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeInvalidInput,
		"a user with this email already exists or is already invited",
		http.StatusBadRequest,
	)
	ErrCodeExhausted = apperror.New(
		apperror.CodeInternalError,
		"could not allocate a unique access code",
		http.StatusInternalServerError,
	)
)

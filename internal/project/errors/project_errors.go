package projecterrors

import (
	"fmt"
	"net/http"

	"timetrack/internal/shared/apperror"
)

var ErrProjectNotFound = apperror.New(
	apperror.CodeNotFound,
	"project not found",
	http.StatusNotFound,
)

func ProjectInUse(name string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("can't delete project %s", name),
		http.StatusConflict,
	)
}

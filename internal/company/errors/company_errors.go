package companyerrors

import (
	"fmt"
	"net/http"

	"timetrack/internal/shared/apperror"
)

var ErrCompanyNotFound = apperror.New(
	apperror.CodeNotFound,
	"company not found",
	http.StatusNotFound,
)

// CompanyInUse is returned when a delete is blocked by referencing
// departments or projects. Recoverable: the company is left intact.
func CompanyInUse(name string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("can't delete company %s", name),
		http.StatusConflict,
	)
}

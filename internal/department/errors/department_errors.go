package departmenterrors

import (
	"fmt"
	"net/http"

	"timetrack/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrProjectOutsideCompany = apperror.New(
		apperror.CodeInvalidInput,
		"project does not belong to this company",
		http.StatusBadRequest,
	)
)

func DepartmentInUse(name string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("can't delete department %s", name),
		http.StatusConflict,
	)
}

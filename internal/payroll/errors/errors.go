package payrollerrors

import (
	"net/http"

	"go-hrfms/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll record not found",
		http.StatusNotFound,
	)
	ErrPayrollExists = apperror.New(
		apperror.CodeConflict,
		"a payroll record already exists for this employee and period",
		http.StatusConflict,
	)
	ErrInvalidFrequency = apperror.New(
		apperror.CodeInvalidInput,
		"frequency must be one of Monthly, Weekly, Daily, Hourly, Custom",
		http.StatusBadRequest,
	)
	ErrInvalidCustomDays = apperror.New(
		apperror.CodeInvalidInput,
		"custom frequency requires a positive day count",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amounts must be decimal numbers",
		http.StatusBadRequest,
	)
)

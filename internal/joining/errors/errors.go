package joiningerrors

import (
	"net/http"

	"go-hrfms/internal/shared/apperror"
)

var (
	ErrJoiningNotFound = apperror.New(
		apperror.CodeNotFound,
		"joining record not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee id is required",
		http.StatusBadRequest,
	)
)

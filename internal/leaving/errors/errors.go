package leavingerrors

import (
	"net/http"

	"go-hrfms/internal/shared/apperror"
)

var (
	ErrLeavingNotFound = apperror.New(
		apperror.CodeNotFound,
		"leaving record not found",
		http.StatusNotFound,
	)
	ErrLeavingExists = apperror.New(
		apperror.CodeConflict,
		"a leaving record already exists for this employee",
		http.StatusConflict,
	)
	ErrEmployeeNotActive = apperror.New(
		apperror.CodeInvalidState,
		"no active joining record for this employee",
		http.StatusBadRequest,
	)
)

package leaverequesterrors

import (
	"net/http"

	"go-hrfms/internal/shared/apperror"
)

var (
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been decided",
		http.StatusConflict,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"to date must not be before from date",
		http.StatusBadRequest,
	)
	ErrUnparseableDate = apperror.New(
		apperror.CodeInvalidInput,
		"from and to dates must be valid dates",
		http.StatusBadRequest,
	)
)

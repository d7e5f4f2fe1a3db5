package indenterrors

import (
	"net/http"

	"go-hrfms/internal/shared/apperror"
)

var (
	ErrInvalidPostCount = apperror.New(
		apperror.CodeInvalidInput,
		"no_of_post must be at least 1",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be Need More or Complete",
		http.StatusBadRequest,
	)
	ErrIndentNotFound = apperror.New(
		apperror.CodeNotFound,
		"indent not found",
		http.StatusNotFound,
	)
)

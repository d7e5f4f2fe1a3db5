package enquiryerrors

import (
	"net/http"

	"go-hrfms/internal/shared/apperror"
)

var (
	ErrEnquiryNotFound = apperror.New(
		apperror.CodeNotFound,
		"enquiry not found",
		http.StatusNotFound,
	)
	ErrEnquiryClosed = apperror.New(
		apperror.CodeInvalidState,
		"enquiry already has a terminal disposition",
		http.StatusBadRequest,
	)
	ErrInvalidFollowUpStatus = apperror.New(
		apperror.CodeInvalidInput,
		"follow-up status must be In Progress, Joining or Reject",
		http.StatusBadRequest,
	)
)

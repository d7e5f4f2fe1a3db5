package sheets

import (
	"fmt"
	"net/http"

	"go-hrfms/internal/shared/apperror"
)

// UpstreamError wraps a transport failure or a success:false reply from the
// tabular store. The service message is surfaced verbatim to the user.
func UpstreamError(sheet string, err error) *apperror.AppError {
	return apperror.ErrUpstream.
		WithMessage(fmt.Sprintf("record store request failed for sheet %q", sheet)).
		WithCause(err)
}

// RowNotFoundError is returned when a business key cannot be located. The
// caller must abort the intended write, never fall back to inserting.
func RowNotFoundError(sheet, keyLabel, keyValue string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("no row with %s %q in sheet %q", keyLabel, keyValue, sheet),
		http.StatusNotFound,
	)
}

// RequiredColumnError escalates a missing required header label to a hard
// abort. Optional labels never take this path.
func RequiredColumnError(sheet, label string) *apperror.AppError {
	return apperror.New(
		apperror.CodeSchemaMismatch,
		fmt.Sprintf("required column %q not found in sheet %q", label, sheet),
		http.StatusBadGateway,
	)
}

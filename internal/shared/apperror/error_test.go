package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-hrfms/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestSentinelDerivationLeavesSentinelUntouched(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	derived := apperror.ErrUpstream.
		WithMessage(`record store request failed for sheet "Indent"`).
		WithCause(cause)

	assert.Equal(t, apperror.CodeUpstreamError, derived.Code)
	assert.Equal(t, http.StatusBadGateway, derived.HTTPStatus)
	assert.Contains(t, derived.Error(), "Indent")
	assert.ErrorIs(t, derived, cause)

	assert.Equal(t, "The record store is unavailable", apperror.ErrUpstream.Message)
	assert.Nil(t, apperror.ErrUpstream.Err)
}

func TestWrapNilCauseReturnsNil(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "ignored", http.StatusInternalServerError))
}

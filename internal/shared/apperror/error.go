package apperror

import "fmt"

// AppError is the one error shape that crosses layer boundaries. Repositories
// and services either return one directly or let ToHTTP classify whatever
// they bubbled up.
type AppError struct {
	Code       string // stable machine code, e.g. UPSTREAM_ERROR
	Message    string // safe to show to the caller
	HTTPStatus int
	Err        error // original cause, kept for logs and errors.Is
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithMessage returns a copy of e carrying a more specific message. The
// package-level sentinels stay immutable; derive per-request errors from
// them instead of mutating.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

// WithCause returns a copy of e carrying err as its cause.
func (e *AppError) WithCause(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches classification to an existing error. Returns nil on a nil
// cause so call sites can wrap unconditionally.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

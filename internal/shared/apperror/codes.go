package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"

	// Tabular store boundary
	CodeUpstreamError  = "UPSTREAM_ERROR"  // transport failure or success:false from the store
	CodeSchemaMismatch = "SCHEMA_MISMATCH" // required header label missing from a sheet
	CodeConsistency    = "CONSISTENCY_ERROR"
)

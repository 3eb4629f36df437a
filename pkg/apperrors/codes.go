package apperrors

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// System errors
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Business-logic errors
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeAlreadyExists       ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	CodeConflict            ErrorCode = "CONFLICT"
	CodeInsufficientBalance ErrorCode = "INSUFFICIENT_BALANCE"
	CodeInvalidStatus       ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation    ErrorCode = "INVALID_OPERATION"

	// Auth
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
)

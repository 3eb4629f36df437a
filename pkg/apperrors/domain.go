package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into an
// AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Users ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"Email already in use",
	http.StatusConflict,
)

var ErrAuthIDAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"An account for this identity already exists",
	http.StatusConflict,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// --- Tokens ---

// ErrInsufficientTokens rejects a debit larger than the current balance.
var ErrInsufficientTokens = New(
	CodeInsufficientBalance,
	"tokens",
	"Token balance is insufficient for this operation",
	http.StatusPaymentRequired,
)

var ErrInvalidTokenAmount = New(
	CodeInvalidOperation,
	"tokens",
	"Token amount must be positive",
	http.StatusBadRequest,
)

// --- Payments ---

// ErrDuplicatePayment guards against duplicate webhook delivery for the
// same gateway id.
var ErrDuplicatePayment = New(
	CodeConflict,
	"payment",
	"Payment with this gateway id is already recorded",
	http.StatusConflict,
)

var ErrPaymentNotFound = New(
	CodeNotFound,
	"payment",
	"Payment not found",
	http.StatusNotFound,
)

var ErrPaymentAlreadySettled = New(
	CodeInvalidStatus,
	"payment",
	"Payment is already settled",
	http.StatusConflict,
)

var ErrInvalidWebhookSignature = New(
	CodeForbidden,
	"payment",
	"Webhook signature verification failed",
	http.StatusForbidden,
)

// --- Resumes ---

// ErrResumeExists enforces the one-resume-per-user rule.
var ErrResumeExists = New(
	CodeAlreadyExists,
	"resume",
	"User already has a resume",
	http.StatusConflict,
)

var ErrResumeNotFound = New(
	CodeNotFound,
	"resume",
	"Resume not found",
	http.StatusNotFound,
)

// --- Industry insights ---

var ErrIndustryNotFound = New(
	CodeNotFound,
	"insight",
	"No insight recorded for this industry",
	http.StatusNotFound,
)

var ErrIndustryAlreadyExists = New(
	CodeAlreadyExists,
	"insight",
	"Insight for this industry already exists",
	http.StatusConflict,
)

// --- Feature costs ---

// ErrFeatureCostNotFound signals the caller to fall back to the configured
// default cost.
var ErrFeatureCostNotFound = New(
	CodeNotFound,
	"feature",
	"Feature cost not found",
	http.StatusNotFound,
)

package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Corpus Access (CORPUS) ----

func ErrCorpusUnavailable() *AppError {
	return New("CORPUS_001", "Transaction corpus not loaded", http.StatusServiceUnavailable)
}

func ErrAccountNotFound(accountID string) *AppError {
	return New("CORPUS_002", fmt.Sprintf("Account %s not found", accountID), http.StatusNotFound)
}

func ErrPageBeyondData(page int) *AppError {
	return New("CORPUS_003", fmt.Sprintf("Page %d is beyond the available data", page), http.StatusNotFound)
}

func ErrInvalidPagination(message string) *AppError {
	return New("CORPUS_004", message, http.StatusBadRequest)
}

func ErrMappingsUnavailable() *AppError {
	return New("CORPUS_005", "No anonymization mappings available", http.StatusNotFound)
}

// ---- Anonymization (ANON) ----

func ErrMalformedEnvelope(err error) *AppError {
	return Wrap("ANON_001", "Malformed capture envelope", http.StatusUnprocessableEntity, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a CORPUS_004-style validation error.
func Validation(message string) *AppError {
	return New("CORPUS_004", message, http.StatusBadRequest)
}

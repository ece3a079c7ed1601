package apperror

import "net/http"

var (
	ErrNotFound = New(CodeNotFound, "Resource not found", http.StatusNotFound)

	ErrForbidden = New(CodeForbidden, "You do not have permission to access this resource", http.StatusForbidden)

	ErrInternal = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)

	ErrUnauthorized = New(CodeUnauthorized, "Authentication is required", http.StatusUnauthorized)

	ErrInvalidInput = New(CodeInvalidInput, "The provided input is invalid", http.StatusBadRequest)

	ErrValidation = New(CodeValidation, "Request validation failed", http.StatusBadRequest)

	ErrConflict = New(CodeConflict, "The resource was modified by another request", http.StatusConflict)

	ErrRateLimited = New(CodeRateLimited, "Too many requests, slow down", http.StatusTooManyRequests)

	ErrRequestInFlight = New(CodeInFlight, "A request with this Idempotency-Key is still being processed", http.StatusConflict)
)

package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to the response shape used by handlers.
// Errors that are not *AppError are reported as internal errors.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return HTTPError{
			Status:  status,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}

// ValidationHTTP reports a binding failure with per-field details.
func ValidationHTTP(err error) HTTPError {
	return HTTPError{
		Status:  ErrValidation.HTTPStatus,
		Code:    ErrValidation.Code,
		Message: ErrValidation.Message,
		Details: MapValidationError(err).Error(),
	}
}

// WithDetails returns h with Details replaced.
func (h HTTPError) WithDetails(details any) HTTPError {
	h.Details = details
	return h
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}

func fieldRule(field, rule string) *AppError {
	return New(CodeInvalidInput, field+" "+rule, http.StatusBadRequest)
}

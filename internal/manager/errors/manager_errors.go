package managererrors

import (
	"net/http"

	"go-mrf/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrEmployeeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee id is required",
		http.StatusBadRequest,
	)
)

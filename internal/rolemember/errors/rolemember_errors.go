package rolemembererrors

import (
	"net/http"

	"go-mrf/internal/shared/apperror"
)

var (
	ErrRoleNotAssignable = apperror.New(
		apperror.CodeInvalidInput,
		"role must be one of Director, HR, SuperAdmin",
		http.StatusBadRequest,
	)
	ErrEmployeeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee id is required",
		http.StatusBadRequest,
	)
	ErrMemberNotFound = apperror.New(
		apperror.CodeNotFound,
		"role member not found",
		http.StatusNotFound,
	)
)

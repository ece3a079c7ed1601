package rolegateerrors

import (
	"net/http"

	"go-mrf/internal/shared/apperror"
)

var (
	ErrUnauthenticated = apperror.New(
		apperror.CodeUnauthorized,
		"please sign in to continue",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"your role does not allow this action",
		http.StatusForbidden,
	)
)

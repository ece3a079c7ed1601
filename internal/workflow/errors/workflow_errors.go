package workflowerrors

import (
	"net/http"

	"go-mrf/internal/shared/apperror"
)

var (
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid requisition status transition",
		http.StatusBadRequest,
	)
	ErrMissingComment = apperror.New(
		apperror.CodeInvalidInput,
		"query_text is required when raising a query",
		http.StatusBadRequest,
	)
	ErrAlreadyTerminal = apperror.New(
		apperror.CodeInvalidState,
		"requisition is already closed",
		http.StatusConflict,
	)
	ErrUnknownStatus = apperror.New(
		apperror.CodeInvalidInput,
		"unknown requisition status",
		http.StatusBadRequest,
	)
)

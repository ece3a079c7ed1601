package requisitionerrors

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
	ErrInvalidRequisitionID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid requisition id",
		http.StatusBadRequest,
	)
	ErrRequisitionNotFound = apperror.New(
		apperror.CodeNotFound,
		"requisition not found",
		http.StatusNotFound,
	)
	ErrQueryNotFound = apperror.New(
		apperror.CodeNotFound,
		"query not found",
		http.StatusNotFound,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"only the requesting manager can change this requisition",
		http.StatusForbidden,
	)
	ErrNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"requisition can only be edited while in Draft or Raise Query",
		http.StatusBadRequest,
	)
	ErrConcurrentUpdate = apperror.New(
		apperror.CodeConflict,
		"requisition was changed by another request, reload and try again",
		http.StatusConflict,
	)
	ErrMRFNumberTaken = apperror.New(
		apperror.CodeConflict,
		"mrf number already exists",
		http.StatusConflict,
	)
	ErrInvalidRequirementType = apperror.New(
		apperror.CodeInvalidInput,
		"requirement_type must be one of: Ramp up, New Requirement, Replacement",
		http.StatusBadRequest,
	)
	ErrInvalidHiringTAT = apperror.New(
		apperror.CodeInvalidInput,
		"hiring_tat must be one of: fastag, normalCat1, normalCat2",
		http.StatusBadRequest,
	)
	ErrInvalidCTCRange = apperror.New(
		apperror.CodeInvalidInput,
		"ctc_min must be zero or more and not above ctc_max",
		http.StatusBadRequest,
	)
	ErrRampUpFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"ramp_up_file is required for Ramp up requisitions",
		http.StatusBadRequest,
	)
	ErrInvalidHeadcount = apperror.New(
		apperror.CodeInvalidInput,
		"headcount must be at least 1",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be Director or HR",
		http.StatusBadRequest,
	)
)

package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-mrf/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status and code", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrForbidden)
		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeForbidden, got.Code)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("transition: %w", apperror.ErrConflict)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "boom")
	})
}

func TestAppError_WrapAndUnwrap(t *testing.T) {
	base := errors.New("db down")
	err := apperror.Wrap(base, apperror.CodeServiceUnavailable, "storage unavailable", http.StatusServiceUnavailable)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "storage unavailable: db down", err.Error())
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", 500))
}

func TestAppError_WithErrKeepsSentinelIdentity(t *testing.T) {
	cause := errors.New("0 rows affected")
	err := apperror.ErrConflict.WithErr(cause)

	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperror.ErrForbidden)
	assert.Nil(t, apperror.ErrConflict.Err)
}

func TestValidationHTTP(t *testing.T) {
	got := apperror.ValidationHTTP(errors.New("not a validator error"))

	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, apperror.CodeValidation, got.Code)
	assert.NotNil(t, got.Details)
}

type sample struct {
	HiringTAT string `json:"hiring_tat" validate:"required,oneof=fastag normalCat1 normalCat2"`
	Headcount int    `json:"headcount" validate:"min=1"`
	Note      string `json:"note" validate:"max=5,alphanum"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	messageOf := func(t *testing.T, err error) string {
		t.Helper()
		var appErr *apperror.AppError
		if !assert.True(t, errors.As(err, &appErr)) {
			return ""
		}
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		return appErr.Message
	}

	cases := []struct {
		name string
		in   sample
		want string
	}{
		{"required", sample{Headcount: 1}, "Hiring Tat is required"},
		{"oneof", sample{HiringTAT: "slow", Headcount: 1}, "Hiring Tat must be one of: fastag, normalCat1, normalCat2"},
		{"min", sample{HiringTAT: "fastag"}, "Headcount must be at least 1"},
		{"max", sample{HiringTAT: "fastag", Headcount: 1, Note: "abcdefg"}, "Note must be at most 5"},
		{"other tag", sample{HiringTAT: "fastag", Headcount: 1, Note: "a-b"}, "Note is invalid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, messageOf(t, apperror.MapValidationError(v.Struct(tc.in))))
		})
	}

	t.Run("quoted oneof options", func(t *testing.T) {
		type form struct {
			RequirementType string `json:"requirement_type" validate:"oneof='Ramp up' 'New Requirement' Replacement"`
		}
		err := apperror.MapValidationError(v.Struct(form{RequirementType: "Temp"}))
		assert.Equal(t, "Requirement Type must be one of: Ramp up, New Requirement, Replacement", messageOf(t, err))
	})

	t.Run("non validator error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("EOF"))
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})
}

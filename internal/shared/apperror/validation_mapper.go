package apperror

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// oneofValue matches one option of a oneof param; options with spaces are
// single-quoted.
var oneofValue = regexp.MustCompile(`'[^']*'|\S+`)

func oneofOptions(param string) string {
	opts := oneofValue.FindAllString(param, -1)
	for i, o := range opts {
		opts[i] = strings.Trim(o, "'")
	}
	return strings.Join(opts, ", ")
}

// humanField turns a json field name into a label: hiring_tat -> Hiring Tat.
// Casers are stateful, so each call gets its own.
func humanField(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError reports the first failing field of a validator error as
// a 400 AppError. Anything else, a malformed body included, maps to
// ErrInvalidInput.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return ErrInvalidInput
	}

	fe := errs[0]
	field := humanField(fe.Field())

	switch fe.Tag() {
	case "required", "notblank":
		return RequiredField(field)
	case "oneof":
		return fieldRule(field, "must be one of: "+oneofOptions(fe.Param()))
	case "min", "gte":
		return fieldRule(field, "must be at least "+fe.Param())
	case "max", "lte":
		return fieldRule(field, "must be at most "+fe.Param())
	default:
		return InvalidField(field)
	}
}

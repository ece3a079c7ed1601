package apperror

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var initOnce sync.Once

// Init configures gin's validator once per process: field names come from
// json tags and the notblank tag rejects whitespace-only strings.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		configureValidator(v)
	})
}

func configureValidator(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	// only fails on an empty tag name, which cannot happen here
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

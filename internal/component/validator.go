package component

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	oerrors "github.com/opmodel/generate-component/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Names become a single path element, so separators and dot names are rejected.
		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			if name == "." || name == ".." {
				return false
			}
			return !strings.ContainsAny(name, `/\`+"\x00")
		})

		validateInst = v
	})

	return validateInst
}

// fieldKeys maps struct fields to the configuration keys users know them by.
var fieldKeys = map[string]string{
	"Name":      "name",
	"Language":  "lang",
	"OutputDir": "dir",
	"Style":     "style",
}

// Validate checks req against the closed language and style sets and the
// component name rules.
func Validate(req Request) error {
	err := validatorInstance().Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return oerrors.NewValidationError("", err.Error(), "")
	}

	fe := verrs[0]
	key := fieldKeys[fe.Field()]
	switch fe.Tag() {
	case "required":
		return oerrors.NewValidationError(key, key+" must not be empty", "")
	case "component_name":
		return oerrors.NewValidationError(key,
			fmt.Sprintf("invalid component name %q", fe.Value()),
			"Component names must be a single path element without slashes.")
	case "oneof":
		return oerrors.NewValidationError(key,
			fmt.Sprintf("unsupported %s %q", key, fe.Value()),
			"Valid values: "+strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return oerrors.NewValidationError(key, fe.Error(), "")
	}
}

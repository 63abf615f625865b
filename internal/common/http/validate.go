package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	commonerrors "github.com/m-orlov/taskboard/internal/common/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the `validate` tags on a request DTO. Only presence
// checks are declared on the DTOs; failures map to a 400 domain error naming
// the first missing field.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
		field := strings.ToLower(verrs[0].Field())
		return commonerrors.NewDomainError(
			CodeValidationFailed,
			commonerrors.CategoryValidation,
			http.StatusBadRequest,
			fmt.Sprintf("%s is required", field),
		)
	}

	return commonerrors.NewDomainError(
		CodeValidationFailed,
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"validation failed",
	)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}

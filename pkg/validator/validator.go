package validator

import (
	"github.com/go-playground/validator/v10"

	"go-agritrace/pkg/batch"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Register custom validation for the generated batch ID format.
	// Only fields that explicitly opt in use it; caller-supplied batch
	// references stay opaque strings.
	validate.RegisterValidation("batch_id", func(fl validator.FieldLevel) bool {
		return batch.IsValid(fl.Field().String())
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

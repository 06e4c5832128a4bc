package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/mworx/stockroom/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ItemValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateItem(req ItemRequest) []ItemValidationError {
	errs := []ItemValidationError{}

	if err := validate.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			for _, fe := range invalid {
				errs = append(errs, ItemValidationError{
					Field:       fe.Field(),
					Description: describeFieldError(fe),
				})
			}
		}
	}

	if req.Category != "" && !models.ValidCategory(req.Category) {
		errs = append(errs, ItemValidationError{
			Field:       "Category",
			Description: "Category is not one of the known categories",
		})
	}
	return errs
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fe.Field() + " cannot be negative"
	default:
		return fe.Field() + " is invalid"
	}
}

package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "islatours/pkg/errors"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

// Fields flattens the errors into the field -> message map used in API responses.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, exists := out[e.Field]; !exists {
			out[e.Field] = e.Message
		}
	}
	return out
}

// Validator wraps go-playground/validator, reporting fields by their json name.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translate(validationErrs)
		}
		return err
	}
	return nil
}

// Var validates a single value against a tag, e.g. Var("a@b.c", "email").
func (v *Validator) Var(value any, tag string) error {
	return v.validate.Var(value, tag)
}

// AppError converts a Validate result into the API error returned to clients.
func AppError(msg string, err error) *apperrors.AppError {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.FieldValidation(msg, verrs.Fields())
	}
	return apperrors.Validation(msg, map[string]any{"error": err.Error()})
}

func translate(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, err := range errs {
		field := err.Field()
		if ns := err.Namespace(); strings.Contains(ns, "[") {
			field = ns[strings.Index(ns, ".")+1:]
		}
		out = append(out, ValidationError{Field: field, Message: message(err)})
	}
	return out
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "e164":
		return "must be a phone number in international format"
	case "url":
		return "must be a valid URL"
	case "mongodb":
		return "must be a valid id"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return "must be one of: " + err.Param()
	case "min":
		if err.Kind() == reflect.String {
			return "must be at least " + err.Param() + " characters"
		}
		return "must be at least " + err.Param()
	case "max":
		if err.Kind() == reflect.String {
			return "must be at most " + err.Param() + " characters"
		}
		return "must be at most " + err.Param()
	case "gte":
		return "must be greater than or equal to " + err.Param()
	case "lte":
		return "must be less than or equal to " + err.Param()
	default:
		return "is invalid (" + err.Tag() + ")"
	}
}

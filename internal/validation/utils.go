package validation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/deppfellow/games-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,notblank"`)
//   - Implement Validate() error that runs validation.Struct(req)
type Validatable interface {
	Validate() error
}

// FailureMessager lets a payload choose the message sent with a 422 response.
// Payloads that don't implement it get "Validation failed".
type FailureMessager interface {
	ValidationMessage() string
}

// CustomValidationError represents a single validation issue for a specific field.
// It covers rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the custom tags registered:
//
//   - notblank: string is non-empty after trimming surrounding whitespace
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}

// Struct validates s against its `validate` tags.
func Struct(s interface{}) error {
	return Validator().Struct(s)
}

var binder = &echo.DefaultBinder{}

// bindError records which part of the request failed to decode.
type bindError struct {
	body bool
	err  error
}

func (e *bindError) Error() string { return e.err.Error() }

func (e *bindError) Unwrap() error { return e.err }

// bind populates payload from path params, query (GET/DELETE/HEAD) and a JSON
// body. A body that is not declared as JSON is ignored, leaving payload's body
// fields at their zero values.
func bind(c echo.Context, payload interface{}) error {
	if err := binder.BindPathParams(c, payload); err != nil {
		return &bindError{err: err}
	}

	switch c.Request().Method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		if err := binder.BindQueryParams(c, payload); err != nil {
			return &bindError{err: err}
		}
	}

	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return nil
	}

	if err := binder.BindBody(c, payload); err != nil {
		return &bindError{body: true, err: err}
	}
	return nil
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. bind populates the struct from path params, query (GET/DELETE) and a JSON body.
//  2. payload.Validate() applies validation rules.
//
// Outcomes:
//   - malformed JSON, or a query/path value that cannot be parsed: 400
//   - a JSON field of the wrong type: 422, like any other invalid value
//   - a decoded payload that fails validation: 422 with field-level errors
//
// Decoder messages are never returned to the client. payload must be a
// pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := bind(c, payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return errs.NewUnprocessableEntityError(failureMessage(payload, "Validation failed"), true, []errs.FieldError{{
				Field: strings.ToLower(typeErr.Field),
				Error: "has an invalid type",
			}})
		}

		message := "Invalid request parameters"
		var be *bindError
		if errors.As(err, &be) && be.body {
			message = "Malformed JSON body"
		}
		return errs.NewBadRequestError(message, false, nil, nil, nil).WithCause(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewUnprocessableEntityError(failureMessage(payload, msg), true, fieldErrors)
	}

	return nil
}

func failureMessage(payload Validatable, fallback string) string {
	if messager, ok := payload.(FailureMessager); ok {
		return messager.ValidationMessage()
	}
	return fallback
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		var customValidationErrors CustomValidationErrors
		if errors.As(err, &customValidationErrors) {
			for _, err := range customValidationErrors {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: err.Field,
					Error: err.Message,
				})
			}
		} else {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: "", Error: err.Error()})
		}
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "notblank":
			msg = "must not be blank"

		case "min", "gte":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max", "lte":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "mongodb":
			msg = "must be a valid identifier"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

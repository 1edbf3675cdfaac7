// Package validation contains the logic for validating request data.
//
// Two layers cooperate here:
//
//   - Explicit ParamSpec tables describe path/query/header/cookie
//     parameters per request type and are interpreted by a generic
//     binding routine (see params.go).
//   - The `validator` library enforces body-field rules (like required
//     fields or minimum lengths) declared in struct tags.
//
// Both layers report failures as field-level errors inside a single
// 422 HTTPError, so a client always sees every problem with its
// request at once.
package validation

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/campushq/academy-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,min=5"`)
//   - Implement Validate() error that calls Check(req)
type Validatable interface {
	Validate() error
}

// ParamBinder is implemented by request types that declare parameters
// outside the body. ParamSpecs returns the fixed spec table;
// ApplyParams copies the coerced values into the request struct.
type ParamBinder interface {
	ParamSpecs() []ParamSpec
	ApplyParams(p Params)
}

// Defaulter is implemented by request types with declared body-field
// defaults. ApplyDefaults runs after binding and before validation, so
// defaulted fields still pass required-style checks.
type Defaulter interface {
	ApplyDefaults()
}

// validate is the shared validator instance. It is safe for concurrent
// use and caches struct metadata across calls.
var validate = validator.New()

// Check runs struct-tag validation against v.
// Request types call this from their Validate methods.
func Check(v any) error {
	return validate.Struct(v)
}

// CheckResponse re-validates a handler result against its declared
// response shape. A failure here is a server-side contract violation,
// not client error; callers map it to a 500.
func CheckResponse(v any) error {
	return validate.Struct(v)
}

// CustomValidationError represents a single validation issue that
// cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. For body-carrying methods, c.Bind(payload) populates the struct
//     from the request body. Malformed JSON or type mismatches become
//     a 422 with the decoder's detail message.
//  2. If payload declares a ParamSpec table, BindParams coerces every
//     path/query/header/cookie parameter and ApplyParams copies the
//     results in. Any coercion failure is a 422 with field errors.
//  3. Declared defaults are applied.
//  4. payload.Validate() enforces struct-tag rules; failures are a 422
//     with field errors.
//
// The handler only ever sees a fully validated payload.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if methodHasBody(c.Request().Method) {
		if err := c.Bind(payload); err != nil {
			return bindError(err)
		}
	}

	if binder, ok := payload.(ParamBinder); ok {
		if specs := binder.ParamSpecs(); len(specs) > 0 {
			params, fieldErrors := BindParams(c, specs)
			if len(fieldErrors) > 0 {
				return errs.NewValidationError("Validation failed", fieldErrors)
			}
			binder.ApplyParams(params)
		}
	}

	if defaulter, ok := payload.(Defaulter); ok {
		defaulter.ApplyDefaults()
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewValidationError(msg, fieldErrors)
	}

	return nil
}

// methodHasBody reports whether the request method carries a body we
// should bind. Binding on GET would have echo re-read query params by
// struct tag, which the ParamSpec layer already covers explicitly.
func methodHasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// bindError converts an echo binding failure into a validation error,
// keeping the decoder's detail (e.g. "Unmarshal type error: ...")
// as the message.
func bindError(err error) error {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return errs.NewValidationError(msg, nil)
		}
	}
	return errs.NewValidationError("malformed request body", nil)
}

// validateStruct calls v.Validate() and extracts field errors if
// validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, custom := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: custom.Field,
				Error: custom.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		var msg string

		switch fieldErr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means length for strings, value for numbers.
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fieldErr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fieldErr.Param())
			}

		case "max":
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fieldErr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fieldErr.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fieldErr.Param())

		case "dive":
			msg = "some items are invalid"

		default:
			if fieldErr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fieldErr.Tag(), fieldErr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fieldErr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

package validation

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/campushq/academy-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Source identifies where a parameter value is read from.
type Source string

const (
	SourcePath   Source = "path"
	SourceQuery  Source = "query"
	SourceHeader Source = "header"
	SourceCookie Source = "cookie"
)

// Kind is the primitive type a raw parameter value must coerce to.
type Kind string

const (
	KindInt    Kind = "int"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindEnum   Kind = "enum"
)

// ParamSpec declares a single request parameter: where it comes from,
// what it must coerce to, and the constraints it must satisfy.
//
// Each request type exposes its spec table via ParamSpecs(). The table
// is fixed at registration time and interpreted generically by
// BindParams; there is no reflection over the request struct for
// parameter binding.
type ParamSpec struct {
	// Name is the parameter name as it appears in the path template,
	// query string, header, or cookie.
	Name string

	Source Source
	Kind   Kind

	// Required parameters produce a field error when absent.
	// Optional parameters without a Default are simply left unset.
	Required bool

	// Default is the raw literal applied when an optional parameter is
	// absent. It goes through the same coercion as a supplied value.
	Default *string

	// Enum lists the allowed literals for KindEnum. Matching is exact
	// and case-sensitive.
	Enum []string

	// MinLen is the minimum length for KindString values. Zero means
	// no constraint.
	MinLen int
}

// Params holds the coerced parameter values for one request.
//
// Values are keyed by spec name. A parameter that was optional and
// absent has no entry; the typed getters return zero values (or nil
// for StringPtr) in that case.
type Params struct {
	values map[string]any
}

// Has reports whether the named parameter was present (or defaulted).
func (p Params) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Int returns the named parameter as an int, or 0 when unset.
func (p Params) Int(name string) int {
	v, _ := p.values[name].(int)
	return v
}

// String returns the named parameter as a string, or "" when unset.
func (p Params) String(name string) string {
	v, _ := p.values[name].(string)
	return v
}

// StringPtr returns the named parameter as a *string, or nil when
// unset. Used for optional cookie/header parameters where "absent"
// must stay distinguishable from "empty".
func (p Params) StringPtr(name string) *string {
	if v, ok := p.values[name].(string); ok {
		return &v
	}
	return nil
}

// Bool returns the named parameter as a bool, or false when unset.
func (p Params) Bool(name string) bool {
	v, _ := p.values[name].(bool)
	return v
}

// BindParams interprets a spec table against the incoming request and
// returns the coerced values, or the complete list of field errors.
//
// Binding is all-or-nothing: every spec is evaluated even after the
// first failure so the client sees all problems at once, and the
// handler never runs unless the returned error list is empty.
func BindParams(c echo.Context, specs []ParamSpec) (Params, []errs.FieldError) {
	params := Params{values: make(map[string]any, len(specs))}

	var fieldErrors []errs.FieldError
	for _, spec := range specs {
		raw, present := lookupRaw(c, spec)

		if !present {
			if spec.Required {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: spec.Name,
					Error: "is required",
				})
				continue
			}
			if spec.Default == nil {
				continue
			}
			raw = *spec.Default
		}

		value, err := coerce(spec, raw)
		if err != nil {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: spec.Name,
				Error: err.Error(),
			})
			continue
		}

		params.values[spec.Name] = value
	}

	if len(fieldErrors) > 0 {
		return Params{}, fieldErrors
	}
	return params, nil
}

// lookupRaw fetches the raw string for a spec from its declared source.
func lookupRaw(c echo.Context, spec ParamSpec) (string, bool) {
	switch spec.Source {
	case SourcePath:
		raw := c.Param(spec.Name)
		return raw, raw != ""

	case SourceQuery:
		if !c.QueryParams().Has(spec.Name) {
			return "", false
		}
		return c.QueryParam(spec.Name), true

	case SourceHeader:
		values := c.Request().Header.Values(http.CanonicalHeaderKey(spec.Name))
		if len(values) == 0 {
			return "", false
		}
		return values[0], true

	case SourceCookie:
		cookie, err := c.Cookie(spec.Name)
		if err != nil {
			return "", false
		}
		return cookie.Value, true
	}

	return "", false
}

// coerce converts a raw value to the spec's kind and checks its
// constraints.
func coerce(spec ParamSpec, raw string) (any, error) {
	switch spec.Kind {
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("must be an integer")
		}
		return n, nil

	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("must be a boolean")
		}
		return b, nil

	case KindEnum:
		for _, allowed := range spec.Enum {
			if raw == allowed {
				return raw, nil
			}
		}
		return nil, fmt.Errorf("must be one of: %s", strings.Join(spec.Enum, ", "))

	case KindString:
		if spec.MinLen > 0 && len(raw) < spec.MinLen {
			return nil, fmt.Errorf("must be at least %d characters", spec.MinLen)
		}
		return raw, nil
	}

	return nil, fmt.Errorf("unsupported parameter kind %q", spec.Kind)
}

package validation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campushq/academy-api/internal/errs"
	"github.com/campushq/academy-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

// enrollRequest is a representative body payload: required fields, a
// minimum length, an optional nullable field, and a defaulted slice.
type enrollRequest struct {
	ID          *int     `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required,min=5"`
	Note        *string  `json:"note"`
	Tags        []string `json:"tags"`
}

func (r *enrollRequest) ApplyDefaults() {
	if r.Tags == nil {
		r.Tags = []string{"public"}
	}
}

func (r *enrollRequest) Validate() error {
	return validation.Check(r)
}

func postJSON(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func asHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

func TestBindAndValidate(t *testing.T) {
	Convey("Given a JSON body payload", t, func() {
		Convey("When the body is valid and complete", func() {
			c := postJSON(`{"id": 1, "name": "intro", "description": "proper description", "tags": ["a"]}`)
			payload := &enrollRequest{}

			err := validation.BindAndValidate(c, payload)

			So(err, ShouldBeNil)
			So(*payload.ID, ShouldEqual, 1)
			So(payload.Tags, ShouldResemble, []string{"a"})
		})

		Convey("When optional fields are omitted", func() {
			c := postJSON(`{"id": 2, "name": "intro", "description": "abcde"}`)
			payload := &enrollRequest{}

			err := validation.BindAndValidate(c, payload)

			Convey("Then defaults apply and nullable fields stay nil", func() {
				So(err, ShouldBeNil)
				So(payload.Tags, ShouldResemble, []string{"public"})
				So(payload.Note, ShouldBeNil)
			})
		})

		Convey("When unknown extra fields are present", func() {
			c := postJSON(`{"id": 3, "name": "intro", "description": "abcde", "bogus": true}`)
			payload := &enrollRequest{}

			Convey("Then they are ignored, not an error", func() {
				So(validation.BindAndValidate(c, payload), ShouldBeNil)
			})
		})

		Convey("When a required field is missing", func() {
			c := postJSON(`{"name": "intro", "description": "abcde"}`)
			payload := &enrollRequest{}

			err := validation.BindAndValidate(c, payload)

			Convey("Then it is a 422 with a field error", func() {
				httpErr := asHTTPError(err)
				So(httpErr, ShouldNotBeNil)
				So(httpErr.Status, ShouldEqual, http.StatusUnprocessableEntity)
				So(httpErr.Errors, ShouldHaveLength, 1)
				So(httpErr.Errors[0].Field, ShouldEqual, "id")
				So(httpErr.Errors[0].Error, ShouldEqual, "is required")
			})
		})

		Convey("When the description is below the minimum length", func() {
			c := postJSON(`{"id": 4, "name": "intro", "description": "abcd"}`)
			payload := &enrollRequest{}

			err := validation.BindAndValidate(c, payload)

			httpErr := asHTTPError(err)
			So(httpErr, ShouldNotBeNil)
			So(httpErr.Status, ShouldEqual, http.StatusUnprocessableEntity)
			So(httpErr.Errors[0].Field, ShouldEqual, "description")
			So(httpErr.Errors[0].Error, ShouldEqual, "must be at least 5 characters")
		})

		Convey("When a field has the wrong type", func() {
			c := postJSON(`{"id": "one", "name": "intro", "description": "abcde"}`)
			payload := &enrollRequest{}

			err := validation.BindAndValidate(c, payload)

			Convey("Then the decoder failure is a 422", func() {
				httpErr := asHTTPError(err)
				So(httpErr, ShouldNotBeNil)
				So(httpErr.Status, ShouldEqual, http.StatusUnprocessableEntity)
			})
		})

		Convey("When the body is not JSON at all", func() {
			c := postJSON(`{{{`)
			payload := &enrollRequest{}

			err := validation.BindAndValidate(c, payload)

			httpErr := asHTTPError(err)
			So(httpErr, ShouldNotBeNil)
			So(httpErr.Status, ShouldEqual, http.StatusUnprocessableEntity)
		})
	})

	Convey("Given custom validation errors", t, func() {
		err := validation.CustomValidationErrors{
			{Field: "slot", Message: "already taken"},
		}

		Convey("They convert into field errors", func() {
			So(err.Error(), ShouldEqual, "Validation failed")
		})
	})
}

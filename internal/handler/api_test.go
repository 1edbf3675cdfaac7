package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campushq/academy-api/internal/config"
	"github.com/campushq/academy-api/internal/errs"
	"github.com/campushq/academy-api/internal/handler"
	"github.com/campushq/academy-api/internal/middleware"
	"github.com/campushq/academy-api/internal/router"
	"github.com/campushq/academy-api/internal/server"
	"github.com/campushq/academy-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

// testAPI is a fully wired application with a capturing logger and a
// zero notification delay, suitable for driving through ServeHTTP.
type testAPI struct {
	echo *echo.Echo
	srv  *server.Server
	logs *bytes.Buffer
}

func newTestAPI() *testAPI {
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"http://localhost:8080", "http://localhost"},
		},
		Notification: &config.NotificationConfig{
			DelaySeconds: 0,
			FromAddress:  "test@academy.local",
		},
	}

	logs := &bytes.Buffer{}
	logger := zerolog.New(zerolog.SyncWriter(logs))

	srv, err := server.New(cfg, &logger)
	if err != nil {
		panic(err)
	}

	middlewares := middleware.NewMiddlewares(srv)
	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)

	return &testAPI{
		echo: router.New(middlewares, handlers),
		srv:  srv,
		logs: logs,
	}
}

func (a *testAPI) request(method, target, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if mutate != nil {
		mutate(req)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		panic(err)
	}
	return out
}

func decodeError(rec *httptest.ResponseRecorder) errs.HTTPError {
	var out errs.HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		panic(err)
	}
	return out
}

func TestGetItem(t *testing.T) {
	Convey("Given the API", t, func() {
		api := newTestAPI()
		defer api.srv.Jobs.Stop()

		Convey("An integer path segment is coerced and echoed", func() {
			rec := api.request(http.MethodGet, "/items/42", "", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(decodeJSON(rec)["item_id"], ShouldEqual, 42)
		})

		Convey("Negative integers work too", func() {
			rec := api.request(http.MethodGet, "/items/-3", "", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(decodeJSON(rec)["item_id"], ShouldEqual, -3)
		})

		Convey("A non-integer segment is a validation error, not a 404", func() {
			rec := api.request(http.MethodGet, "/items/abc", "", nil)

			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)

			body := decodeError(rec)
			So(body.Code, ShouldEqual, "UNPROCESSABLE_ENTITY")
			So(body.Errors, ShouldHaveLength, 1)
			So(body.Errors[0].Field, ShouldEqual, "item_id")
		})

		Convey("Repeated identical requests yield identical responses", func() {
			first := api.request(http.MethodGet, "/items/7", "", nil)
			second := api.request(http.MethodGet, "/items/7", "", nil)

			So(first.Code, ShouldEqual, second.Code)
			So(first.Body.String(), ShouldEqual, second.Body.String())
		})
	})
}

func TestGetCourse(t *testing.T) {
	Convey("Given the API", t, func() {
		api := newTestAPI()
		defer api.srv.Jobs.Stop()

		Convey("A valid course with a language returns its description", func() {
			rec := api.request(http.MethodGet, "/courses/chemistry?language=en", "", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)

			body := decodeJSON(rec)
			So(body["description"], ShouldEqual, "Let's learn about chemicals!")
			So(body["language"], ShouldEqual, "en")

			Convey("And the omitted minRating defaults to 0", func() {
				So(body["minRating"], ShouldEqual, 0)
			})
		})

		Convey("Each course literal maps to its own description", func() {
			physics := decodeJSON(api.request(http.MethodGet, "/courses/physics?language=de", "", nil))
			math := decodeJSON(api.request(http.MethodGet, "/courses/math?language=fr", "", nil))

			So(physics["description"], ShouldEqual, "Let's learn about physical matters!")
			So(math["description"], ShouldEqual, "Let's learn about numbers!")
		})

		Convey("A supplied minRating is passed through", func() {
			body := decodeJSON(api.request(http.MethodGet, "/courses/math?language=en&minRating=4", "", nil))
			So(body["minRating"], ShouldEqual, 4)
		})

		Convey("An unknown course value is a 422, not a routing miss", func() {
			rec := api.request(http.MethodGet, "/courses/xyz?language=en", "", nil)

			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(decodeError(rec).Errors[0].Field, ShouldEqual, "course")
		})

		Convey("A missing required language is a 422", func() {
			rec := api.request(http.MethodGet, "/courses/chemistry", "", nil)

			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)

			body := decodeError(rec)
			So(body.Errors, ShouldHaveLength, 1)
			So(body.Errors[0].Field, ShouldEqual, "language")
			So(body.Errors[0].Error, ShouldEqual, "is required")
		})
	})
}

func TestCreateCourse(t *testing.T) {
	Convey("Given the API", t, func() {
		api := newTestAPI()
		defer api.srv.Jobs.Stop()

		Convey("A valid body is echoed back", func() {
			rec := api.request(http.MethodPost, "/courses/",
				`{"id": 10, "name": "Organic Chemistry", "description": "carbon and friends", "language": "en", "rating": 4, "tags": ["science"]}`, nil)

			So(rec.Code, ShouldEqual, http.StatusOK)

			body := decodeJSON(rec)
			So(body["id"], ShouldEqual, 10)
			So(body["name"], ShouldEqual, "Organic Chemistry")
			So(body["language"], ShouldEqual, "en")
			So(body["tags"], ShouldResemble, []interface{}{"science"})
		})

		Convey("Omitted tags default to [\"public\"]", func() {
			rec := api.request(http.MethodPost, "/courses/",
				`{"id": 11, "name": "Algebra", "description": "abcde", "rating": 5}`, nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(decodeJSON(rec)["tags"], ShouldResemble, []interface{}{"public"})
		})

		Convey("An omitted language stays null", func() {
			rec := api.request(http.MethodPost, "/courses/",
				`{"id": 12, "name": "Algebra", "description": "abcde", "rating": 5}`, nil)

			body := decodeJSON(rec)
			So(body["language"], ShouldBeNil)
		})

		Convey("A description of exactly 5 characters is accepted", func() {
			rec := api.request(http.MethodPost, "/courses/",
				`{"id": 13, "name": "Algebra", "description": "abcde", "rating": 5}`, nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(decodeJSON(rec)["description"], ShouldEqual, "abcde")
		})

		Convey("A description below 5 characters is rejected", func() {
			rec := api.request(http.MethodPost, "/courses/",
				`{"id": 14, "name": "Algebra", "description": "abcd", "rating": 5}`, nil)

			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)

			body := decodeError(rec)
			So(body.Errors[0].Field, ShouldEqual, "description")
			So(body.Errors[0].Error, ShouldEqual, "must be at least 5 characters")
		})

		Convey("A missing required field is rejected", func() {
			rec := api.request(http.MethodPost, "/courses/",
				`{"name": "Algebra", "description": "abcde", "rating": 5}`, nil)

			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(decodeError(rec).Errors[0].Field, ShouldEqual, "id")
		})

		Convey("A type-mismatched field is rejected", func() {
			rec := api.request(http.MethodPost, "/courses/",
				`{"id": "ten", "name": "Algebra", "description": "abcde", "rating": 5}`, nil)

			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)
		})

		Convey("Unknown extra fields are ignored", func() {
			rec := api.request(http.MethodPost, "/courses/",
				`{"id": 15, "name": "Algebra", "description": "abcde", "rating": 5, "bogus": 1}`, nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
		})
	})
}

func TestGetStudents(t *testing.T) {
	Convey("Given the API", t, func() {
		api := newTestAPI()
		defer api.srv.Jobs.Stop()

		Convey("Cookies and the user agent are echoed when present", func() {
			rec := api.request(http.MethodGet, "/students/", "", func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "token", Value: "tok-1"})
				r.AddCookie(&http.Cookie{Name: "ads_id", Value: "ads-9"})
				r.Header.Set("User-Agent", "test-agent/1.0")
			})

			So(rec.Code, ShouldEqual, http.StatusOK)

			body := decodeJSON(rec)
			So(body["cookie_token_found"], ShouldEqual, "tok-1")
			So(body["ads_id_in_browser"], ShouldEqual, "ads-9")
			So(body["incoming_user_agent"], ShouldEqual, "test-agent/1.0")
		})

		Convey("Absent cookies and headers come back null", func() {
			rec := api.request(http.MethodGet, "/students/", "", func(r *http.Request) {
				r.Header.Del("User-Agent")
			})

			So(rec.Code, ShouldEqual, http.StatusOK)

			body := decodeJSON(rec)
			So(body["cookie_token_found"], ShouldBeNil)
			So(body["ads_id_in_browser"], ShouldBeNil)
			So(body["incoming_user_agent"], ShouldBeNil)
		})
	})
}

func TestGetCurrentCart(t *testing.T) {
	Convey("Given the API", t, func() {
		api := newTestAPI()
		defer api.srv.Jobs.Stop()

		Convey("The cart has exactly the three declared fields", func() {
			rec := api.request(http.MethodGet, "/current_cart", "", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)

			body := decodeJSON(rec)
			So(body, ShouldHaveLength, 3)
			So(body["items"], ShouldResemble, []interface{}{"shampoo", "chocolates", "soap"})
			So(body["totalPrice"], ShouldEqual, 1500)
			So(body["promotionsAttached"], ShouldEqual, false)
		})
	})
}

func TestGetFlight(t *testing.T) {
	Convey("Given the API", t, func() {
		api := newTestAPI()
		defer api.srv.Jobs.Stop()

		Convey("A known flight returns its status", func() {
			rec := api.request(http.MethodGet, "/flights/1", "", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(decodeJSON(rec)["message"], ShouldEqual, "Fly high!")
		})

		Convey("An unknown flight is an explicit 404", func() {
			rec := api.request(http.MethodGet, "/flights/4", "", nil)

			So(rec.Code, ShouldEqual, http.StatusNotFound)

			body := decodeError(rec)
			So(body.Code, ShouldEqual, "NOT_FOUND")
			So(body.Message, ShouldEqual, "Flight not found")
		})

		Convey("A non-integer flight ID is a validation error, not a 404", func() {
			rec := api.request(http.MethodGet, "/flights/abc", "", nil)

			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)
		})
	})
}

func TestSendEmail(t *testing.T) {
	Convey("Given the API", t, func() {
		api := newTestAPI()

		Convey("The response returns immediately and the job runs exactly once", func() {
			rec := api.request(http.MethodGet, "/send_email/a@b.com", "", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.Len(), ShouldEqual, 0)

			// Draining the workers guarantees the job has finished.
			api.srv.Jobs.Stop()

			So(strings.Count(api.logs.String(), "email notification sent"), ShouldEqual, 1)
		})
	})
}

func TestSystemBehavior(t *testing.T) {
	Convey("Given the API", t, func() {
		api := newTestAPI()
		defer api.srv.Jobs.Stop()

		Convey("An unknown route is a 404 with the standard error shape", func() {
			rec := api.request(http.MethodGet, "/nope", "", nil)

			So(rec.Code, ShouldEqual, http.StatusNotFound)

			body := decodeError(rec)
			So(body.Code, ShouldEqual, "NOT_FOUND")
			So(body.Message, ShouldEqual, "Route not found")
		})

		Convey("The status endpoint reports healthy", func() {
			rec := api.request(http.MethodGet, "/status", "", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(decodeJSON(rec)["status"], ShouldEqual, "healthy")
		})

		Convey("Allowed origins receive CORS headers with credentials", func() {
			rec := api.request(http.MethodGet, "/current_cart", "", func(r *http.Request) {
				r.Header.Set(echo.HeaderOrigin, "http://localhost:8080")
			})

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get(echo.HeaderAccessControlAllowOrigin), ShouldEqual, "http://localhost:8080")
			So(rec.Header().Get(echo.HeaderAccessControlAllowCredentials), ShouldEqual, "true")
		})

		Convey("Responses carry a request ID header", func() {
			rec := api.request(http.MethodGet, "/current_cart", "", nil)

			So(rec.Header().Get(middleware.RequestIDHeader), ShouldNotBeEmpty)
		})
	})
}

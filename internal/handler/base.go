package handler

import (
	"time"

	"github.com/campushq/academy-api/internal/errs"
	"github.com/campushq/academy-api/internal/lib/job"
	"github.com/campushq/academy-api/internal/middleware"
	"github.com/campushq/academy-api/internal/server"
	"github.com/campushq/academy-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base handler type that holds shared application
// dependencies.
//
// It is embedded by concrete handlers (CatalogHandler, FlightHandler,
// ...) so they can access shared resources via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine:
// the struct only holds a pointer, so copies share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// Bindable constrains a request pointer type: it must point at Req and
// know how to validate itself. Parameter tables and defaults are
// picked up through the optional interfaces in the validation package.
type Bindable[Req any] interface {
	*Req
	validation.Validatable
}

// ResponseHandler defines how a successful handler result is written
// to the HTTP response.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured
	// logging, distinguishing handler types (json/shaped/no_content).
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// ShapedJSONResponseHandler writes JSON responses after re-validating
// the result against its declared response shape.
//
// A shape violation means the handler produced output that breaks its
// own contract; that is a loud 500, never a silently malformed body.
type ShapedJSONResponseHandler struct {
	status int
}

func (h ShapedJSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	if err := validation.CheckResponse(result); err != nil {
		middleware.GetLogger(c).Error().
			Err(err).
			Msg("response shape validation failed")
		return errs.NewInternalServerError()
	}
	return c.JSON(h.status, result)
}

func (h ShapedJSONResponseHandler) GetOperation() string {
	return "handler_shaped"
}

// NoContentResponseHandler writes responses with no body.
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It centralizes:
//
//   - request binding + validation (params table + body tags)
//   - structured logging with the request-scoped logger
//   - timing (validation duration, handler duration, total duration)
//   - response writing (json / shaped / no-content)
//   - background job handoff: jobs enqueued by the handler are
//     dispatched only after the response has been written, and only on
//     the success path
func handleRequest(
	h Handler,
	c echo.Context,
	req validation.Validatable,
	handler func(c echo.Context) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		// Let the global error handler format the response.
		return err
	}

	validationDuration := time.Since(validationStart)

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	// ---------------- Response phase -----------------------------------------
	if err := responseHandler.Handle(c, result); err != nil {
		return err
	}

	// The response is committed; background work recorded during the
	// handler can now run without touching the response path.
	if pending := job.Pending(c); len(pending) > 0 {
		h.server.Jobs.DispatchAll(pending)
		logger.Debug().Int("jobs", len(pending)).Msg("dispatched background jobs")
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return nil
}

// Handle wraps a typed handler with validation, error handling,
// logging, and JSON response writing. It returns an echo.HandlerFunc
// so it can be registered directly on routes.
//
// Usage pattern:
//
//	e.GET("/items/:item_id", handler.Handle(h.Catalog.Handler, h.Catalog.GetItem, http.StatusOK))
//
// A fresh request struct is allocated per request; nothing is shared
// across invocations.
func Handle[Req any, PReq Bindable[Req], Res any](
	h Handler,
	handler func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(h, c, req, func(c echo.Context) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleShaped is Handle for routes with a declared response shape:
// the result is re-validated against its shape before serialization.
func HandleShaped[Req any, PReq Bindable[Req], Res any](
	h Handler,
	handler func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(h, c, req, func(c echo.Context) (interface{}, error) {
			return handler(c, req)
		}, ShapedJSONResponseHandler{status: status})
	}
}

// HandleNoContent is Handle for endpoints that return no body.
func HandleNoContent[Req any, PReq Bindable[Req]](
	h Handler,
	handler func(c echo.Context, req PReq) error,
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(h, c, req, func(c echo.Context) (interface{}, error) {
			return nil, handler(c, req)
		}, NoContentResponseHandler{status: status})
	}
}

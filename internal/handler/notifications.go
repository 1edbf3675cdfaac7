package handler

import (
	"context"

	"github.com/campushq/academy-api/internal/lib/job"
	"github.com/campushq/academy-api/internal/server"
	"github.com/campushq/academy-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// notificationMessage is the fixed message the background job sends.
const notificationMessage = "Hellooo world!!"

// NotificationHandler serves the send_email endpoint, which
// demonstrates background task dispatch.
type NotificationHandler struct {
	Handler
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(s *server.Server) *NotificationHandler {
	return &NotificationHandler{
		Handler: NewHandler(s),
	}
}

// SendEmailRequest declares the email path segment.
type SendEmailRequest struct {
	Email string
}

func (r *SendEmailRequest) ParamSpecs() []validation.ParamSpec {
	return []validation.ParamSpec{
		{Name: "email", Source: validation.SourcePath, Kind: validation.KindString, Required: true},
	}
}

func (r *SendEmailRequest) ApplyParams(p validation.Params) {
	r.Email = p.String("email")
}

func (r *SendEmailRequest) Validate() error {
	return validation.Check(r)
}

// SendEmail enqueues a notification job and returns immediately.
//
// The job is only recorded here; the handler pipeline hands it to the
// job workers after the 200 has been written. Delivery takes the
// configured delay and its outcome is logged, never reported to the
// caller.
func (h *NotificationHandler) SendEmail(c echo.Context, req *SendEmailRequest) error {
	to := req.Email
	mailer := h.server.Mailer
	logger := h.server.Logger

	job.Enqueue(c, func(ctx context.Context) {
		if err := mailer.SendNotification(ctx, to, notificationMessage); err != nil {
			logger.Error().
				Err(err).
				Str("to", to).
				Msg("failed to send notification email")
		}
	})

	return nil
}

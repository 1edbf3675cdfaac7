package handler

import (
	"github.com/campushq/academy-api/internal/server"
	"github.com/campushq/academy-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// StudentHandler serves the students endpoint, which demonstrates
// reading browser cookies and request headers.
type StudentHandler struct {
	Handler
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(s *server.Server) *StudentHandler {
	return &StudentHandler{
		Handler: NewHandler(s),
	}
}

// GetStudentsRequest declares three optional parameters: two cookies
// and one header. All are nullable; an absent value stays nil rather
// than collapsing into an empty string.
type GetStudentsRequest struct {
	Token     *string
	AdsID     *string
	UserAgent *string
}

func (r *GetStudentsRequest) ParamSpecs() []validation.ParamSpec {
	return []validation.ParamSpec{
		{Name: "token", Source: validation.SourceCookie, Kind: validation.KindString},
		{Name: "ads_id", Source: validation.SourceCookie, Kind: validation.KindString},
		{Name: "User-Agent", Source: validation.SourceHeader, Kind: validation.KindString},
	}
}

func (r *GetStudentsRequest) ApplyParams(p validation.Params) {
	r.Token = p.StringPtr("token")
	r.AdsID = p.StringPtr("ads_id")
	r.UserAgent = p.StringPtr("User-Agent")
}

func (r *GetStudentsRequest) Validate() error {
	return validation.Check(r)
}

// StudentContextResponse reports what the request carried.
type StudentContextResponse struct {
	CookieTokenFound  *string `json:"cookie_token_found"`
	AdsIDInBrowser    *string `json:"ads_id_in_browser"`
	IncomingUserAgent *string `json:"incoming_user_agent"`
}

// GetStudents echoes the optional cookie and header values back.
func (h *StudentHandler) GetStudents(c echo.Context, req *GetStudentsRequest) (*StudentContextResponse, error) {
	return &StudentContextResponse{
		CookieTokenFound:  req.Token,
		AdsIDInBrowser:    req.AdsID,
		IncomingUserAgent: req.UserAgent,
	}, nil
}

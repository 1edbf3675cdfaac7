package handler

import (
	"github.com/campushq/academy-api/internal/middleware"
	"github.com/campushq/academy-api/internal/server"
	"github.com/campushq/academy-api/internal/service"
	"github.com/campushq/academy-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the item and course endpoints.
type CatalogHandler struct {
	Handler
	catalog *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(s *server.Server, catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

// --- GET /items/:item_id -----------------------------------------------------

// GetItemRequest declares the single typed path segment of the item
// lookup. A non-integer segment never reaches the handler; it fails
// coercion with a 422.
type GetItemRequest struct {
	ItemID int
}

func (r *GetItemRequest) ParamSpecs() []validation.ParamSpec {
	return []validation.ParamSpec{
		{Name: "item_id", Source: validation.SourcePath, Kind: validation.KindInt, Required: true},
	}
}

func (r *GetItemRequest) ApplyParams(p validation.Params) {
	r.ItemID = p.Int("item_id")
}

func (r *GetItemRequest) Validate() error {
	return validation.Check(r)
}

// ItemResponse echoes the coerced item ID back to the caller.
type ItemResponse struct {
	ItemID int `json:"item_id"`
}

// GetItem returns the validated item ID. There is no item state; the
// endpoint demonstrates typed path coercion, so identical requests
// always produce identical responses.
func (h *CatalogHandler) GetItem(c echo.Context, req *GetItemRequest) (*ItemResponse, error) {
	return &ItemResponse{ItemID: req.ItemID}, nil
}

// --- GET /courses/:course ----------------------------------------------------

// GetCourseRequest declares the course lookup parameters: an enum path
// segment, a required query parameter, and a defaulted one.
type GetCourseRequest struct {
	Course    service.Course
	Language  string
	MinRating int
}

// minRatingDefault is the literal applied when minRating is omitted.
var minRatingDefault = "0"

func (r *GetCourseRequest) ParamSpecs() []validation.ParamSpec {
	return []validation.ParamSpec{
		{Name: "course", Source: validation.SourcePath, Kind: validation.KindEnum, Required: true, Enum: service.CourseValues()},
		{Name: "language", Source: validation.SourceQuery, Kind: validation.KindString, Required: true},
		{Name: "minRating", Source: validation.SourceQuery, Kind: validation.KindInt, Default: &minRatingDefault},
	}
}

func (r *GetCourseRequest) ApplyParams(p validation.Params) {
	r.Course = service.Course(p.String("course"))
	r.Language = p.String("language")
	r.MinRating = p.Int("minRating")
}

func (r *GetCourseRequest) Validate() error {
	return validation.Check(r)
}

// CourseInfoResponse describes a course in the caller's terms.
type CourseInfoResponse struct {
	Description string `json:"description"`
	Language    string `json:"language"`
	MinRating   int    `json:"minRating"`
}

// GetCourse looks up the course description for a validated course
// value and echoes the query parameters back.
func (h *CatalogHandler) GetCourse(c echo.Context, req *GetCourseRequest) (*CourseInfoResponse, error) {
	description, err := h.catalog.Describe(req.Course)
	if err != nil {
		// Only reachable if the enum table and the catalog switch
		// drift apart; surfaces as a 500 via the global handler.
		return nil, errors.Wrap(err, "course lookup failed")
	}

	return &CourseInfoResponse{
		Description: description,
		Language:    req.Language,
		MinRating:   req.MinRating,
	}, nil
}

// --- POST /courses/ ----------------------------------------------------------

// CreateCourseRequest is the course creation body.
//
// ID and Rating are pointers so that a present-but-zero value is
// distinguishable from an absent field under the required rule.
// Language is nullable and optional. Tags defaults to ["public"].
type CreateCourseRequest struct {
	ID          *int     `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required,min=5"`
	Language    *string  `json:"language"`
	Rating      *int     `json:"rating" validate:"required"`
	Tags        []string `json:"tags"`
}

// ApplyDefaults fills the declared tag default when the field was
// absent from the body. Runs after binding, before validation.
func (r *CreateCourseRequest) ApplyDefaults() {
	if r.Tags == nil {
		r.Tags = []string{"public"}
	}
}

func (r *CreateCourseRequest) Validate() error {
	return validation.Check(r)
}

// CourseEntity is the course payload echoed back after creation.
type CourseEntity struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Language    *string  `json:"language"`
	Rating      int      `json:"rating"`
	Tags        []string `json:"tags"`
}

// CreateCourse echoes the validated entity back. Nothing is stored;
// the endpoint demonstrates body validation and defaulting.
func (h *CatalogHandler) CreateCourse(c echo.Context, req *CreateCourseRequest) (*CourseEntity, error) {
	middleware.GetLogger(c).Info().
		Str("name", req.Name).
		Msg("course created successfully")

	return &CourseEntity{
		ID:          *req.ID,
		Name:        req.Name,
		Description: req.Description,
		Language:    req.Language,
		Rating:      *req.Rating,
		Tags:        req.Tags,
	}, nil
}

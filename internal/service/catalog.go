package service

import (
	"fmt"
)

// Course is the closed set of courses the catalog knows about.
// Values are matched by their literal string, case-sensitively.
type Course string

const (
	CourseChemistry Course = "chemistry"
	CoursePhysics   Course = "physics"
	CourseMath      Course = "math"
)

// CourseValues lists every valid course literal, in declaration order.
// The validation layer uses this as the enum table for the course path
// parameter.
func CourseValues() []string {
	return []string{
		string(CourseChemistry),
		string(CoursePhysics),
		string(CourseMath),
	}
}

// CatalogService serves course information.
type CatalogService struct{}

// NewCatalogService constructs a CatalogService.
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Describe returns the description for a course.
//
// The switch is exhaustive over the Course constants. A value outside
// the set can only mean the enum table and this switch have drifted
// apart, so it is an internal error rather than a silent empty result.
func (s *CatalogService) Describe(course Course) (string, error) {
	switch course {
	case CourseChemistry:
		return "Let's learn about chemicals!", nil
	case CoursePhysics:
		return "Let's learn about physical matters!", nil
	case CourseMath:
		return "Let's learn about numbers!", nil
	}

	return "", fmt.Errorf("unhandled course variant %q", course)
}

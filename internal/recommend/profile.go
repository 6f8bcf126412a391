package recommend

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	MinCGPA   = 5.0
	MaxCGPA   = 10.0
	MinRating = 1
	MaxRating = 5
)

// ErrInvalidProfile wraps every profile validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile is the student a recommendation is computed for.
type Profile struct {
	Stream     string  `json:"stream" yaml:"stream"`
	Department string  `json:"department" yaml:"department"`
	Role       string  `json:"role" yaml:"role"`
	CGPA       float64 `json:"cgpa" yaml:"cgpa"`
	Internship bool    `json:"internship" yaml:"internship"`

	TechRatings map[string]int `json:"tech_ratings,omitempty" yaml:"tech_ratings,omitempty"`
	CoreRatings map[string]int `json:"core_ratings,omitempty" yaml:"core_ratings,omitempty"`
}

// Validate checks the ranges a caller is expected to enforce before calling
// Recommend. The recommender itself accepts any profile.
func (p Profile) Validate() error {
	var errs []error

	required := []struct{ name, value string }{
		{"stream", p.Stream},
		{"department", p.Department},
		{"role", p.Role},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", field.name))
		}
	}

	if p.CGPA < MinCGPA || p.CGPA > MaxCGPA {
		errs = append(errs, fmt.Errorf("cgpa %.2f is outside [%.1f, %.1f]", p.CGPA, MinCGPA, MaxCGPA))
	}

	errs = append(errs, checkRatings("technical", p.TechRatings)...)
	errs = append(errs, checkRatings("core", p.CoreRatings)...)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidProfile, errors.Join(errs...))
}

// HasSkillRatings reports whether both technical and core ratings are present.
func (p Profile) HasSkillRatings() bool {
	return len(p.TechRatings) > 0 && len(p.CoreRatings) > 0
}

func checkRatings(kind string, ratings map[string]int) []error {
	names := make([]string, 0, len(ratings))
	for name := range ratings {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		if v := ratings[name]; v < MinRating || v > MaxRating {
			errs = append(errs, fmt.Errorf("%s skill %q rating %d is outside [%d, %d]", kind, name, v, MinRating, MaxRating))
		}
	}
	return errs
}

func average(ratings map[string]int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, v := range ratings {
		sum += v
	}
	return float64(sum) / float64(len(ratings))
}

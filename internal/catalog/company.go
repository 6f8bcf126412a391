package catalog

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	StreamField     = "stream"
	DepartmentField = "department"
	RoleField       = "job_role"
	NameField       = "company_name"
	LevelField      = "company_level"
	LocationsField  = "company_locations"
	TechField       = "technologies"

	// NotSpecified is shown in place of an absent optional value.
	NotSpecified = "Not specified"
)

// RequiredColumns lists the header columns every company table must carry.
var RequiredColumns = []string{
	StreamField,
	DepartmentField,
	RoleField,
	NameField,
	LevelField,
	LocationsField,
}

// Tier is the prestige bucket of a company. Higher values are more selective.
type Tier int

const (
	TierUnknown Tier = iota
	TierStartup
	TierMid
	TierHigh
)

// TiersByPrestige lists the known tiers from the most to the least selective.
var TiersByPrestige = []Tier{TierHigh, TierMid, TierStartup}

func (t Tier) String() string {
	switch t {
	case TierStartup:
		return "STARTUP"
	case TierMid:
		return "MID"
	case TierHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// MarshalText makes tiers render by name in json and yaml output.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseTier converts a company_level cell into a Tier.
// LOW and ENTRY are accepted as the lowest tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STARTUP", "LOW", "ENTRY":
		return TierStartup, nil
	case "MID", "MEDIUM":
		return TierMid, nil
	case "HIGH":
		return TierHigh, nil
	default:
		return TierUnknown, fmt.Errorf("unknown company level %q", s)
	}
}

// Company is a single row of the company table.
type Company struct {
	Stream       string `mapstructure:"stream" json:"stream" yaml:"stream"`
	Department   string `mapstructure:"department" json:"department" yaml:"department"`
	Role         string `mapstructure:"job_role" json:"job_role" yaml:"job_role"`
	Name         string `mapstructure:"company_name" json:"company_name" yaml:"company_name"`
	Level        Tier   `mapstructure:"company_level" json:"company_level" yaml:"company_level"`
	Locations    string `mapstructure:"company_locations" json:"company_locations" yaml:"company_locations"`
	Technologies string `mapstructure:"technologies" json:"technologies,omitempty" yaml:"technologies,omitempty"`
}

// Key is the identity used to collapse duplicate company names.
func (c Company) Key() string {
	return strings.ToLower(strings.TrimSpace(c.Name))
}

// TechnologyList splits the technologies cell on pipes or commas.
func (c Company) TechnologyList() []string {
	return SplitList(c.Technologies)
}

// DisplayTechnologies returns the technologies joined for display, or NotSpecified.
func (c Company) DisplayTechnologies() string {
	list := c.TechnologyList()
	if len(list) == 0 {
		return NotSpecified
	}
	return strings.Join(list, ", ")
}

// Field returns the raw value of a named column.
func (c Company) Field(name string) string {
	switch name {
	case StreamField:
		return c.Stream
	case DepartmentField:
		return c.Department
	case RoleField:
		return c.Role
	case NameField:
		return c.Name
	case LevelField:
		return c.Level.String()
	case LocationsField:
		return c.Locations
	case TechField:
		return c.Technologies
	default:
		return ""
	}
}

// SplitList splits a pipe- or comma-separated cell into trimmed, non-empty items.
func SplitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ','
	})

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// tierDecodeHook lets mapstructure turn company_level strings into tiers.
func tierDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(TierUnknown) || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseTier(data.(string))
}

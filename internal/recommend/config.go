package recommend

import (
	"fmt"
	"strings"

	"github.com/spigell/career-advisor/internal/catalog"
)

// Band is the profile strength a student is assessed at.
type Band int

const (
	BandBeginner Band = iota
	BandIntermediate
	BandAdvanced
)

func (b Band) String() string {
	switch b {
	case BandIntermediate:
		return "intermediate"
	case BandAdvanced:
		return "advanced"
	default:
		return "beginner"
	}
}

func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Tiers returns the company tiers a band is eligible for, most prestigious first.
// Sets are nested: every band keeps the tiers of the bands below it.
func (b Band) Tiers() []catalog.Tier {
	switch b {
	case BandAdvanced:
		return []catalog.Tier{catalog.TierHigh, catalog.TierMid, catalog.TierStartup}
	case BandIntermediate:
		return []catalog.Tier{catalog.TierMid, catalog.TierStartup}
	default:
		return []catalog.Tier{catalog.TierStartup}
	}
}

// PolicyKind selects how a profile is mapped to a band.
type PolicyKind string

const (
	// PolicyAuto uses the blended policy when both technical and core ratings are present.
	PolicyAuto    PolicyKind = "auto"
	PolicyCGPA    PolicyKind = "cgpa"
	PolicyBlended PolicyKind = "blended"
)

// ParsePolicy converts a config or flag value into a PolicyKind.
func ParsePolicy(s string) (PolicyKind, error) {
	switch p := PolicyKind(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyAuto, nil
	case PolicyAuto, PolicyCGPA, PolicyBlended:
		return p, nil
	default:
		return "", fmt.Errorf("unknown policy %q (expected auto, cgpa or blended)", s)
	}
}

// Thresholds are the lower bounds of the intermediate and advanced bands.
type Thresholds struct {
	Intermediate float64
	Advanced     float64
}

// Weights of the blended score. They are expected to add up to 1.
type Weights struct {
	CGPA       float64
	Technical  float64
	Core       float64
	Internship float64
}

// Config holds the tunables of the recommender.
type Config struct {
	Policy PolicyKind

	CGPAThresholds  Thresholds
	ScoreThresholds Thresholds
	Weights         Weights

	// PerTierCaps bounds how many companies one tier contributes.
	PerTierCaps map[catalog.Tier]int
	// BandCaps bounds the whole recommended list per band.
	BandCaps map[Band]int

	FallbackLimit  int
	AlternateLimit int
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Policy:          PolicyAuto,
		CGPAThresholds:  Thresholds{Intermediate: 6.5, Advanced: 8.5},
		ScoreThresholds: Thresholds{Intermediate: 0.45, Advanced: 0.70},
		Weights:         Weights{CGPA: 0.30, Technical: 0.35, Core: 0.25, Internship: 0.10},
		PerTierCaps: map[catalog.Tier]int{
			catalog.TierHigh:    4,
			catalog.TierMid:     5,
			catalog.TierStartup: 5,
		},
		BandCaps: map[Band]int{
			BandBeginner:     5,
			BandIntermediate: 9,
			BandAdvanced:     12,
		},
		FallbackLimit:  6,
		AlternateLimit: 6,
	}
}

// Validate reports tunables that would make the recommender misbehave.
func (c Config) Validate() error {
	if _, err := ParsePolicy(string(c.Policy)); err != nil {
		return err
	}
	if c.CGPAThresholds.Intermediate > c.CGPAThresholds.Advanced {
		return fmt.Errorf("cgpa thresholds: intermediate %.2f is above advanced %.2f",
			c.CGPAThresholds.Intermediate, c.CGPAThresholds.Advanced)
	}
	if c.ScoreThresholds.Intermediate > c.ScoreThresholds.Advanced {
		return fmt.Errorf("score thresholds: intermediate %.2f is above advanced %.2f",
			c.ScoreThresholds.Intermediate, c.ScoreThresholds.Advanced)
	}
	if c.FallbackLimit < 0 || c.AlternateLimit < 0 {
		return fmt.Errorf("fallback and alternate limits must not be negative")
	}
	for band, n := range c.BandCaps {
		if n < 0 {
			return fmt.Errorf("cap of %s band must not be negative", band)
		}
	}
	return nil
}

func (c Config) bandCap(b Band) int {
	if n, ok := c.BandCaps[b]; ok {
		return n
	}
	return -1
}

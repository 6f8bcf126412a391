package recommend

import "github.com/spigell/career-advisor/internal/catalog"

// Assessment is the outcome of mapping a profile to a band.
type Assessment struct {
	Policy PolicyKind     `json:"policy" yaml:"policy"`
	Band   Band           `json:"band" yaml:"band"`
	Score  float64        `json:"score" yaml:"score"`
	Tiers  []catalog.Tier `json:"tiers" yaml:"tiers"`
}

// Assess maps a profile to a band with the configured policy. Under the CGPA
// policy Score is the raw CGPA; under the blended policy it is the blended score.
func (c Config) Assess(p Profile) Assessment {
	policy := c.Policy
	if policy == "" || policy == PolicyAuto {
		policy = PolicyCGPA
		if p.HasSkillRatings() {
			policy = PolicyBlended
		}
	}

	var (
		band  Band
		score float64
	)
	switch policy {
	case PolicyBlended:
		score = BlendedScore(p, c.Weights)
		band = bandFor(score, c.ScoreThresholds)
	default:
		policy = PolicyCGPA
		score = p.CGPA
		band = bandFor(score, c.CGPAThresholds)
	}

	return Assessment{Policy: policy, Band: band, Score: score, Tiers: band.Tiers()}
}

// BlendedScore combines CGPA, average skill ratings and internship into [0, 1].
// An empty rating group contributes nothing.
func BlendedScore(p Profile, w Weights) float64 {
	score := w.CGPA*(p.CGPA/MaxCGPA) +
		w.Technical*(average(p.TechRatings)/MaxRating) +
		w.Core*(average(p.CoreRatings)/MaxRating)
	if p.Internship {
		score += w.Internship
	}
	return score
}

func bandFor(value float64, th Thresholds) Band {
	switch {
	case value >= th.Advanced:
		return BandAdvanced
	case value >= th.Intermediate:
		return BandIntermediate
	default:
		return BandBeginner
	}
}

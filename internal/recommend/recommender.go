package recommend

import (
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/filtering"
	"github.com/spigell/career-advisor/internal/logger"
)

const (
	NoticeFallback  = "No exact matches found. Showing related companies."
	NoticeNoResults = "No companies found for the selected stream and department."

	fallbackReason = "no exact matches for role"
)

// Result is a ranked shortlist for one profile.
type Result struct {
	Profile    Profile `json:"profile" yaml:"profile"`
	Assessment `json:"assessment" yaml:"assessment"`

	Recommended []catalog.Company `json:"recommended" yaml:"recommended"`
	Alternates  []catalog.Company `json:"alternates" yaml:"alternates"`

	// Fallback is set when Recommended comes from the whole department instead of the role.
	Fallback bool   `json:"fallback" yaml:"fallback"`
	Notice   string `json:"notice,omitempty" yaml:"notice,omitempty"`

	Steps []filtering.Step `json:"steps" yaml:"steps"`
}

// Empty reports whether nothing at all could be recommended.
func (r *Result) Empty() bool {
	return len(r.Recommended) == 0
}

// Recommender ranks companies of a table for a profile. It keeps no state
// between calls, so one Recommender may serve concurrent callers.
type Recommender struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a recommender. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{cfg: cfg, logger: logger}
}

// Config returns the tuning the recommender runs with.
func (r *Recommender) Config() Config { return r.cfg }

// Recommend returns the shortlist for p. It never fails: an unknown stream or
// department simply produces an empty result with a notice.
func (r *Recommender) Recommend(table *catalog.Table, p Profile) *Result {
	log := logger.WithSelection(r.logger, p.Stream, p.Department, p.Role)
	deps := filtering.Deps{Logger: log}
	assessment := r.cfg.Assess(p)

	result := &Result{Profile: p, Assessment: assessment}

	base, steps := filtering.Run(deps, []filtering.Filter{
		filtering.NewStream(p.Stream),
		filtering.NewDepartment(p.Department),
	}, table.Companies())
	result.Steps = append(result.Steps, steps...)

	recommended, steps := filtering.Run(deps, []filtering.Filter{
		filtering.NewRole(p.Role),
		filtering.NewTierBuckets(assessment.Tiers, r.cfg.PerTierCaps, r.cfg.bandCap(assessment.Band)),
	}, base)
	result.Steps = append(result.Steps, steps...)

	if recommended.Len() == 0 {
		r.fallback(deps, base, p, result)
		logResult(log, result)
		return result
	}

	result.Recommended = recommended.Items()

	alternates, _ := filtering.Run(deps, []filtering.Filter{
		filtering.NewExcludeRole(p.Role),
		filtering.NewExcludeNames(recommended.Names()),
		filtering.NewTierBuckets(assessment.Tiers, r.cfg.PerTierCaps, r.cfg.AlternateLimit),
	}, base)
	result.Alternates = alternates.Items()

	logResult(log, result)
	return result
}

// fallback widens the query to the whole department, ignoring role and tiers.
func (r *Recommender) fallback(deps filtering.Deps, base *catalog.Companies, p Profile, result *Result) {
	widened := []filtering.Filter{
		filtering.NewRole(p.Role),
		filtering.NewDistinct(),
		filtering.NewLimit(r.cfg.FallbackLimit),
	}
	filtering.DisableByName(widened, filtering.RoleStep, fallbackReason)

	related, steps := filtering.Run(deps, widened, base)
	result.Steps = append(result.Steps, steps...)
	result.Recommended = related.Items()

	if related.Len() == 0 {
		result.Notice = NoticeNoResults
		return
	}
	result.Fallback = true
	result.Notice = NoticeFallback
}

func logResult(log *zap.Logger, result *Result) {
	log.Debug("recommendation computed",
		zap.String("policy", string(result.Policy)),
		zap.Stringer("band", result.Band),
		zap.Float64("score", result.Score),
		zap.Int("recommended", len(result.Recommended)),
		zap.Int("alternates", len(result.Alternates)),
		zap.Bool("fallback", result.Fallback),
	)
}

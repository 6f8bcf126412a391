package filtering

import (
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
)

// Filter represents a single filtering step applied to a company view.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Apply(deps Deps, v *catalog.Companies) (*catalog.Companies, Step)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Name    string `json:"name" yaml:"name"`
	Initial int    `json:"initial" yaml:"initial"`
	Dropped int    `json:"dropped" yaml:"dropped"`
	Left    int    `json:"left" yaml:"left"`
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// switchable carries the enabled state shared by all filters.
type switchable struct {
	disabled bool
	reason   string
}

func (s *switchable) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *switchable) IsEnabled() bool { return !s.disabled }

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the narrowed view
// together with a report for every executed step. The input view is never modified.
func Run(deps Deps, steps []Filter, v *catalog.Companies) (*catalog.Companies, []Step) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	report := make([]Step, 0, len(steps))
	for _, step := range steps {
		if !step.IsEnabled() {
			logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info := step.Apply(deps, v)
		info.Name = step.Name()

		logger.Debug("filter step",
			zap.String("name", info.Name),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		report = append(report, info)
		v = next
	}

	return v, report
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

func stepOf(before, after *catalog.Companies) Step {
	return Step{Initial: before.Len(), Dropped: before.Len() - after.Len(), Left: after.Len()}
}

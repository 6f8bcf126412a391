// Package wizard implements the cascading stream, department and role
// selection that precedes a recommendation.
package wizard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/recommend"
)

// State is a step of the selection flow.
type State int

const (
	StateNoSelection State = iota
	StateStreamChosen
	StateDepartmentChosen
	StateRoleChosen
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateStreamChosen:
		return "stream_chosen"
	case StateDepartmentChosen:
		return "department_chosen"
	case StateRoleChosen:
		return "role_chosen"
	case StateSubmitted:
		return "submitted"
	default:
		return "no_selection"
	}
}

// SkillKind tells technical and core skills apart.
type SkillKind int

const (
	TechnicalSkill SkillKind = iota
	CoreSkill
)

const defaultCGPA = 7.0

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnknownOption     = errors.New("unknown option")
)

// Options supplies the choices offered at every step. *catalog.Table implements it.
type Options interface {
	Streams() []string
	Departments(stream string) []string
	Roles(stream, department string) []string
}

// Skills supplies the skills rated for a role. *catalog.SkillCatalog implements it.
type Skills interface {
	Lookup(department, role string) (catalog.RoleSkills, bool)
}

// Wizard walks a student through the selection flow. Later choices are only
// accepted once the earlier ones are made, and changing an earlier choice
// clears everything after it.
type Wizard struct {
	options Options
	skills  Skills

	state   State
	profile recommend.Profile
}

// New creates a wizard. skills may be nil.
func New(options Options, skills Skills) *Wizard {
	w := &Wizard{options: options, skills: skills}
	w.Reset()
	return w
}

func (w *Wizard) State() State { return w.state }

// Profile returns the choices made so far.
func (w *Wizard) Profile() recommend.Profile { return w.profile }

// Reset returns to the initial state.
func (w *Wizard) Reset() {
	w.state = StateNoSelection
	w.profile = recommend.Profile{CGPA: defaultCGPA}
}

func (w *Wizard) StreamOptions() []string {
	return w.options.Streams()
}

func (w *Wizard) DepartmentOptions() []string {
	if w.state < StateStreamChosen {
		return nil
	}
	return w.options.Departments(w.profile.Stream)
}

func (w *Wizard) RoleOptions() []string {
	if w.state < StateDepartmentChosen {
		return nil
	}
	return w.options.Roles(w.profile.Stream, w.profile.Department)
}

func (w *Wizard) ChooseStream(stream string) error {
	if err := w.editable(StateNoSelection); err != nil {
		return err
	}
	if !slices.Contains(w.StreamOptions(), stream) {
		return fmt.Errorf("%w: stream %q", ErrUnknownOption, stream)
	}

	w.profile.Stream = stream
	w.clearFrom(StateStreamChosen)
	w.state = StateStreamChosen
	return nil
}

func (w *Wizard) ChooseDepartment(department string) error {
	if err := w.editable(StateStreamChosen); err != nil {
		return err
	}
	if !slices.Contains(w.DepartmentOptions(), department) {
		return fmt.Errorf("%w: department %q in stream %q", ErrUnknownOption, department, w.profile.Stream)
	}

	w.profile.Department = department
	w.clearFrom(StateDepartmentChosen)
	w.state = StateDepartmentChosen
	return nil
}

func (w *Wizard) ChooseRole(role string) error {
	if err := w.editable(StateDepartmentChosen); err != nil {
		return err
	}
	if !slices.Contains(w.RoleOptions(), role) {
		return fmt.Errorf("%w: role %q in department %q", ErrUnknownOption, role, w.profile.Department)
	}

	w.profile.Role = role
	w.clearFrom(StateRoleChosen)
	w.state = StateRoleChosen
	return nil
}

func (w *Wizard) SetCGPA(cgpa float64) error {
	if w.state == StateSubmitted {
		return fmt.Errorf("%w: profile already submitted", ErrInvalidTransition)
	}
	if cgpa < recommend.MinCGPA || cgpa > recommend.MaxCGPA {
		return fmt.Errorf("cgpa %.2f is outside [%.1f, %.1f]", cgpa, recommend.MinCGPA, recommend.MaxCGPA)
	}
	w.profile.CGPA = cgpa
	return nil
}

func (w *Wizard) SetInternship(done bool) error {
	if w.state == StateSubmitted {
		return fmt.Errorf("%w: profile already submitted", ErrInvalidTransition)
	}
	w.profile.Internship = done
	return nil
}

// SkillsToRate lists the technical and core skills of the chosen role. Without
// a skills catalog entry the role's default technologies are offered as
// technical skills and no core skills are asked.
func (w *Wizard) SkillsToRate() (technical, core []string) {
	if w.state < StateRoleChosen {
		return nil, nil
	}

	if entry, ok := w.lookupSkills(); ok {
		return entry.Technical, entry.Core
	}

	defaults := catalog.DefaultTechnologies(w.profile.Role)
	if defaults == catalog.NotSpecified {
		return nil, nil
	}
	return catalog.SplitList(defaults), nil
}

func (w *Wizard) RateSkill(kind SkillKind, skill string, rating int) error {
	if w.state != StateRoleChosen {
		return fmt.Errorf("%w: skills are rated after choosing a role (state %s)", ErrInvalidTransition, w.state)
	}
	if rating < recommend.MinRating || rating > recommend.MaxRating {
		return fmt.Errorf("rating %d is outside [%d, %d]", rating, recommend.MinRating, recommend.MaxRating)
	}

	technical, core := w.SkillsToRate()
	switch kind {
	case TechnicalSkill:
		if !slices.Contains(technical, skill) {
			return fmt.Errorf("%w: technical skill %q", ErrUnknownOption, skill)
		}
		if w.profile.TechRatings == nil {
			w.profile.TechRatings = make(map[string]int)
		}
		w.profile.TechRatings[skill] = rating
	case CoreSkill:
		if !slices.Contains(core, skill) {
			return fmt.Errorf("%w: core skill %q", ErrUnknownOption, skill)
		}
		if w.profile.CoreRatings == nil {
			w.profile.CoreRatings = make(map[string]int)
		}
		w.profile.CoreRatings[skill] = rating
	default:
		return fmt.Errorf("unknown skill kind %d", kind)
	}
	return nil
}

// Submit completes the flow and returns the profile to recommend for.
func (w *Wizard) Submit() (recommend.Profile, error) {
	if w.state != StateRoleChosen {
		return recommend.Profile{}, fmt.Errorf("%w: cannot submit in state %s", ErrInvalidTransition, w.state)
	}
	if err := w.profile.Validate(); err != nil {
		return recommend.Profile{}, err
	}

	w.state = StateSubmitted
	return w.profile, nil
}

// Back undoes the latest choice. Going back from the submitted state reopens
// the profile for edits without clearing it.
func (w *Wizard) Back() State {
	switch w.state {
	case StateSubmitted:
		w.state = StateRoleChosen
	case StateRoleChosen:
		w.clearFrom(StateRoleChosen)
		w.profile.Role = ""
		w.state = StateDepartmentChosen
	case StateDepartmentChosen:
		w.clearFrom(StateDepartmentChosen)
		w.profile.Department = ""
		w.state = StateStreamChosen
	case StateStreamChosen:
		w.clearFrom(StateStreamChosen)
		w.profile.Stream = ""
		w.state = StateNoSelection
	}
	return w.state
}

// editable checks that a choice made in state from is allowed now.
func (w *Wizard) editable(from State) error {
	if w.state == StateSubmitted {
		return fmt.Errorf("%w: profile already submitted", ErrInvalidTransition)
	}
	if w.state < from {
		return fmt.Errorf("%w: state %s, expected at least %s", ErrInvalidTransition, w.state, from)
	}
	return nil
}

// clearFrom drops the choices that depend on the one made to enter state s.
func (w *Wizard) clearFrom(s State) {
	if s <= StateStreamChosen {
		w.profile.Department = ""
	}
	if s <= StateDepartmentChosen {
		w.profile.Role = ""
	}
	w.profile.TechRatings = nil
	w.profile.CoreRatings = nil
}

func (w *Wizard) lookupSkills() (catalog.RoleSkills, bool) {
	if w.skills == nil {
		return catalog.RoleSkills{}, false
	}
	return w.skills.Lookup(w.profile.Department, w.profile.Role)
}

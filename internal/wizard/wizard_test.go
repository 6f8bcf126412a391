package wizard

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/recommend"
)

func testTable() *catalog.Table {
	return catalog.NewTable("test", []catalog.Company{
		{Stream: "Engineering", Department: "CSE", Role: "Backend Developer", Name: "A", Level: catalog.TierMid},
		{Stream: "Engineering", Department: "CSE", Role: "Frontend Developer", Name: "B", Level: catalog.TierMid},
		{Stream: "Engineering", Department: "ECE", Role: "VLSI Engineer", Name: "C", Level: catalog.TierHigh},
		{Stream: "Medical", Department: "MBBS", Role: "Junior Doctor", Name: "D", Level: catalog.TierHigh},
	})
}

func testSkills() *catalog.SkillCatalog {
	return catalog.NewSkillCatalog([]catalog.RoleSkills{
		{Department: "CSE", Role: "Backend Developer", Technical: []string{"Go", "SQL"}, Core: []string{"Communication"}},
	})
}

func TestHappyPath(t *testing.T) {
	t.Parallel()

	w := New(testTable(), testSkills())
	if w.State() != StateNoSelection {
		t.Fatalf("unexpected initial state %s", w.State())
	}
	if w.DepartmentOptions() != nil || w.RoleOptions() != nil {
		t.Fatalf("later options must be empty before choosing a stream")
	}

	steps := []func() error{
		func() error { return w.ChooseStream("Engineering") },
		func() error { return w.ChooseDepartment("CSE") },
		func() error { return w.ChooseRole("Backend Developer") },
		func() error { return w.SetCGPA(8.7) },
		func() error { return w.SetInternship(true) },
		func() error { return w.RateSkill(TechnicalSkill, "Go", 5) },
		func() error { return w.RateSkill(TechnicalSkill, "SQL", 3) },
		func() error { return w.RateSkill(CoreSkill, "Communication", 4) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	profile, err := w.Submit()
	if err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}

	want := recommend.Profile{
		Stream:      "Engineering",
		Department:  "CSE",
		Role:        "Backend Developer",
		CGPA:        8.7,
		Internship:  true,
		TechRatings: map[string]int{"Go": 5, "SQL": 3},
		CoreRatings: map[string]int{"Communication": 4},
	}
	if !reflect.DeepEqual(profile, want) {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if w.State() != StateSubmitted {
		t.Fatalf("expected submitted state, got %s", w.State())
	}

	if err := w.ChooseStream("Medical"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition after submit, got %v", err)
	}
}

func TestTransitionsAreValidated(t *testing.T) {
	t.Parallel()

	w := New(testTable(), nil)

	if err := w.ChooseDepartment("CSE"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if err := w.ChooseStream("Arts"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected unknown option, got %v", err)
	}
	if err := w.ChooseStream("Medical"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.ChooseDepartment("CSE"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("department of another stream must be rejected, got %v", err)
	}
	if _, err := w.Submit(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected submit to be rejected, got %v", err)
	}
	if err := w.SetCGPA(11); err == nil {
		t.Fatalf("expected cgpa range error")
	}
}

func TestChangingEarlierChoiceClearsLaterOnes(t *testing.T) {
	t.Parallel()

	w := New(testTable(), testSkills())
	mustDo(t, w.ChooseStream("Engineering"))
	mustDo(t, w.ChooseDepartment("CSE"))
	mustDo(t, w.ChooseRole("Backend Developer"))
	mustDo(t, w.RateSkill(TechnicalSkill, "Go", 4))

	mustDo(t, w.ChooseDepartment("ECE"))
	if w.State() != StateDepartmentChosen {
		t.Fatalf("expected department_chosen, got %s", w.State())
	}
	p := w.Profile()
	if p.Role != "" || p.TechRatings != nil {
		t.Fatalf("role and ratings must be cleared, got %+v", p)
	}
	if !reflect.DeepEqual(w.RoleOptions(), []string{"VLSI Engineer"}) {
		t.Fatalf("unexpected role options: %v", w.RoleOptions())
	}
}

func TestBack(t *testing.T) {
	t.Parallel()

	w := New(testTable(), nil)
	mustDo(t, w.ChooseStream("Engineering"))
	mustDo(t, w.ChooseDepartment("CSE"))
	mustDo(t, w.ChooseRole("Frontend Developer"))
	if _, err := w.Submit(); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}

	if got := w.Back(); got != StateRoleChosen {
		t.Fatalf("expected role_chosen, got %s", got)
	}
	if w.Profile().Role != "Frontend Developer" {
		t.Fatalf("reopening must keep the role")
	}

	for _, want := range []State{StateDepartmentChosen, StateStreamChosen, StateNoSelection, StateNoSelection} {
		if got := w.Back(); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
	if w.Profile().Stream != "" {
		t.Fatalf("stream must be cleared")
	}
}

func TestSkillsToRateFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	w := New(testTable(), testSkills())
	mustDo(t, w.ChooseStream("Engineering"))
	mustDo(t, w.ChooseDepartment("CSE"))
	mustDo(t, w.ChooseRole("Frontend Developer"))

	technical, core := w.SkillsToRate()
	if !reflect.DeepEqual(technical, []string{"HTML", "CSS", "JavaScript", "React"}) {
		t.Fatalf("unexpected technical skills: %v", technical)
	}
	if core != nil {
		t.Fatalf("expected no core skills, got %v", core)
	}

	if err := w.RateSkill(CoreSkill, "Communication", 3); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected unknown option, got %v", err)
	}
	if err := w.RateSkill(TechnicalSkill, "React", 9); err == nil {
		t.Fatalf("expected rating range error")
	}
}

func mustDo(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

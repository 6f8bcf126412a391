package filtering

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/career-advisor/internal/catalog"
)

func companies() *catalog.Companies {
	return catalog.NewCompanies([]catalog.Company{
		{Stream: "Engineering", Department: "CSE", Role: "Backend Developer", Name: "S1", Level: catalog.TierStartup},
		{Stream: "Engineering", Department: "CSE", Role: "Backend Developer", Name: "M1", Level: catalog.TierMid},
		{Stream: "Engineering", Department: "CSE", Role: "Backend Developer", Name: "H1", Level: catalog.TierHigh},
		{Stream: "Engineering", Department: "CSE", Role: "Backend Developer", Name: "S2", Level: catalog.TierStartup},
		{Stream: "Engineering", Department: "CSE", Role: "Backend Developer", Name: "h1", Level: catalog.TierMid},
		{Stream: "Engineering", Department: "CSE", Role: "Data Analyst", Name: "D1", Level: catalog.TierHigh},
		{Stream: "Engineering", Department: "ECE", Role: "Backend Developer", Name: "E1", Level: catalog.TierHigh},
		{Stream: "Medical", Department: "CSE", Role: "Backend Developer", Name: "X1", Level: catalog.TierHigh},
	})
}

func TestRunAppliesStepsInOrder(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	deps := Deps{Logger: zap.New(core)}

	source := companies()
	steps := []Filter{
		NewStream("Engineering"),
		NewDepartment("CSE"),
		NewRole("Backend Developer"),
	}

	got, report := Run(deps, steps, source)

	if !reflect.DeepEqual(got.Names(), []string{"S1", "M1", "H1", "S2", "h1"}) {
		t.Fatalf("unexpected names: %v", got.Names())
	}
	if source.Len() != 8 {
		t.Fatalf("source view must not change, got %d rows", source.Len())
	}

	want := []Step{
		{Name: StreamStep, Initial: 8, Dropped: 1, Left: 7},
		{Name: DepartmentStep, Initial: 7, Dropped: 1, Left: 6},
		{Name: RoleStep, Initial: 6, Dropped: 1, Left: 5},
	}
	if !reflect.DeepEqual(report, want) {
		t.Fatalf("unexpected report: %+v", report)
	}

	if n := observed.FilterMessage("filter step").Len(); n != 3 {
		t.Fatalf("expected 3 step log entries, got %d", n)
	}
}

func TestDisableByName(t *testing.T) {
	t.Parallel()

	steps := []Filter{NewDepartment("CSE"), NewRole("Nope")}
	DisableByName(steps, RoleStep, "no exact matches")

	got, report := Run(Deps{}, steps, companies())
	if got.Len() != 7 {
		t.Fatalf("expected role filter to be skipped, got %d rows", got.Len())
	}
	if len(report) != 1 {
		t.Fatalf("disabled steps must not be reported, got %+v", report)
	}

	statuses := Describe(steps)
	if statuses[1].Enabled || statuses[1].Reason != "no exact matches" {
		t.Fatalf("unexpected status: %+v", statuses[1])
	}
}

func TestExcludeRoleAndNames(t *testing.T) {
	t.Parallel()

	steps := []Filter{
		NewStream("Engineering"),
		NewDepartment("CSE"),
		NewExcludeRole("Backend Developer"),
	}
	got, _ := Run(Deps{}, steps, companies())
	if !reflect.DeepEqual(got.Names(), []string{"D1"}) {
		t.Fatalf("unexpected names: %v", got.Names())
	}

	got, report := Run(Deps{}, []Filter{NewExcludeNames([]string{"s1", "H1"})}, companies())
	if got.Len() != 5 || report[0].Dropped != 3 {
		t.Fatalf("unexpected exclusion result: %v %+v", got.Names(), report)
	}
}

func TestTierBuckets(t *testing.T) {
	t.Parallel()

	base, _ := Run(Deps{}, []Filter{
		NewStream("Engineering"),
		NewDepartment("CSE"),
		NewRole("Backend Developer"),
	}, companies())

	tests := []struct {
		name    string
		tiers   []catalog.Tier
		perTier map[catalog.Tier]int
		total   int
		want    []string
	}{
		{
			name:  "prestige order and dedupe keeps higher tier",
			tiers: []catalog.Tier{catalog.TierStartup, catalog.TierMid, catalog.TierHigh},
			total: -1,
			want:  []string{"H1", "M1", "S1", "S2"},
		},
		{
			name:  "ineligible tiers are dropped",
			tiers: []catalog.Tier{catalog.TierStartup},
			total: -1,
			want:  []string{"S1", "S2"},
		},
		{
			name:    "per tier cap",
			tiers:   []catalog.Tier{catalog.TierMid, catalog.TierStartup},
			perTier: map[catalog.Tier]int{catalog.TierMid: 1, catalog.TierStartup: 1},
			total:   -1,
			want:    []string{"M1", "S1"},
		},
		{
			name:  "total cap",
			tiers: []catalog.Tier{catalog.TierHigh, catalog.TierMid, catalog.TierStartup},
			total: 2,
			want:  []string{"H1", "M1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()
			got, report := Run(Deps{}, []Filter{NewTierBuckets(tt.tiers, tt.perTier, tt.total)}, base)
			if !reflect.DeepEqual(got.Names(), tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got.Names())
			}
			if report[0].Left != len(tt.want) {
				t.Fatalf("unexpected report: %+v", report[0])
			}
		})
	}
}

func TestDistinctAndLimit(t *testing.T) {
	t.Parallel()

	got, _ := Run(Deps{}, []Filter{NewDistinct(), NewLimit(3)}, companies())
	if !reflect.DeepEqual(got.Names(), []string{"S1", "M1", "H1"}) {
		t.Fatalf("unexpected names: %v", got.Names())
	}

	status := Describe([]Filter{NewLimit(3)})[0]
	if status.Details["limit"] != "3" {
		t.Fatalf("unexpected status: %+v", status)
	}
}

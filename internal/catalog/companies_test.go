package catalog

import (
	"reflect"
	"testing"
)

func sampleTable() *Table {
	return NewTable("test", []Company{
		{Stream: "Engineering", Department: "CSE", Role: "Backend Developer", Name: "Zoho", Level: TierStartup},
		{Stream: "Engineering", Department: "CSE", Role: "Frontend Developer", Name: "Acme", Level: TierHigh},
		{Stream: "Engineering", Department: "CSE", Role: "Backend Developer", Name: "acme ", Level: TierMid},
		{Stream: "Engineering", Department: "ECE", Role: "VLSI Engineer", Name: "Intel", Level: TierHigh},
		{Stream: "Medical", Department: "MBBS", Role: "Junior Doctor", Name: "Apollo", Level: TierMid},
	})
}

func TestCascadingOptions(t *testing.T) {
	t.Parallel()

	table := sampleTable()

	if got := table.Streams(); !reflect.DeepEqual(got, []string{"Engineering", "Medical"}) {
		t.Fatalf("unexpected streams: %v", got)
	}
	if got := table.Departments("Engineering"); !reflect.DeepEqual(got, []string{"CSE", "ECE"}) {
		t.Fatalf("unexpected departments: %v", got)
	}
	if got := table.Roles("Engineering", "CSE"); !reflect.DeepEqual(got, []string{"Backend Developer", "Frontend Developer"}) {
		t.Fatalf("unexpected roles: %v", got)
	}
	if got := table.Roles("Medical", "CSE"); len(got) != 0 {
		t.Fatalf("expected no roles for mismatched stream, got %v", got)
	}
}

func TestCompaniesViewsAreImmutable(t *testing.T) {
	t.Parallel()

	all := sampleTable().Companies()
	cse := all.FieldEquals(DepartmentField, "CSE")

	if all.Len() != 5 {
		t.Fatalf("source view changed: %d rows", all.Len())
	}
	if cse.Len() != 3 {
		t.Fatalf("expected 3 CSE rows, got %d", cse.Len())
	}

	items := cse.Items()
	items[0].Name = "Mutated"
	if cse.Items()[0].Name != "Zoho" {
		t.Fatalf("Items must return a copy")
	}

	distinct := cse.Distinct()
	if !reflect.DeepEqual(distinct.Names(), []string{"Zoho", "Acme"}) {
		t.Fatalf("unexpected distinct names: %v", distinct.Names())
	}

	kept, dropped := cse.Exclude(NameField, []string{"ACME"})
	if !reflect.DeepEqual(kept.Names(), []string{"Zoho"}) {
		t.Fatalf("unexpected kept names: %v", kept.Names())
	}
	if len(dropped) != 2 {
		t.Fatalf("expected both Acme rows dropped, got %v", dropped)
	}

	if cse.Head(1).Len() != 1 || cse.Head(-1).Len() != 3 || cse.Head(10).Len() != 3 {
		t.Fatalf("unexpected Head behaviour")
	}
}

func TestParseTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{in: "HIGH", want: TierHigh},
		{in: " mid ", want: TierMid},
		{in: "Startup", want: TierStartup},
		{in: "LOW", want: TierStartup},
		{in: "", wantErr: true},
		{in: "ULTRA", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tt := tt
			t.Parallel()
			got, err := ParseTier(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestTechnologies(t *testing.T) {
	t.Parallel()

	c := Company{Technologies: " Go | Kafka,Postgres ,"}
	if got := c.TechnologyList(); !reflect.DeepEqual(got, []string{"Go", "Kafka", "Postgres"}) {
		t.Fatalf("unexpected list: %v", got)
	}
	if got := c.DisplayTechnologies(); got != "Go, Kafka, Postgres" {
		t.Fatalf("unexpected display: %q", got)
	}
	if got := (Company{}).DisplayTechnologies(); got != NotSpecified {
		t.Fatalf("expected %q, got %q", NotSpecified, got)
	}
}

package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestBackfillTechnologiesKeepsRowsAndColumns(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "companies.csv", `stream,department,job_role,company_name,company_level,company_locations,technologies,website
Engineering,CSE,Frontend Developer,Acme,LOW,Pune,,acme.example
Engineering,CSE,Backend Developer,Broken,ELITE,Delhi,,broken.example
Engineering,CSE,Underwater Welder,,MID,Goa,,
Engineering,CSE,Frontend Developer,Vuey,HIGH,Pune,Vue,vuey.example
`)

	raw, err := ReadRaw(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filled, n, err := raw.BackfillTechnologies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 cells filled, got %d", n)
	}

	if !reflect.DeepEqual(filled.Header, raw.Header) {
		t.Fatalf("header must be kept, got %v", filled.Header)
	}

	want := [][]string{
		{"Engineering", "CSE", "Frontend Developer", "Acme", "LOW", "Pune", "HTML,CSS,JavaScript,React", "acme.example"},
		{"Engineering", "CSE", "Backend Developer", "Broken", "ELITE", "Delhi", DefaultTechnologies("Backend Developer"), "broken.example"},
		{"Engineering", "CSE", "Underwater Welder", "", "MID", "Goa", NotSpecified, ""},
		{"Engineering", "CSE", "Frontend Developer", "Vuey", "HIGH", "Pune", "Vue", "vuey.example"},
	}
	if !reflect.DeepEqual(filled.Records, want) {
		t.Fatalf("unexpected records:\n%v", filled.Records)
	}

	if raw.Records[0][6] != "" {
		t.Fatalf("source table must not change")
	}
}

func TestBackfillTechnologiesAddsColumn(t *testing.T) {
	t.Parallel()

	raw := &RawTable{
		Source: "test",
		Header: []string{"company_name", "Job_Role"},
		Records: [][]string{
			{"Acme", "Frontend Developer"},
			{"Short"},
			{"", ""},
		},
	}

	filled, n, err := raw.BackfillTechnologies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 cells filled, got %d", n)
	}
	if !reflect.DeepEqual(filled.Header, []string{"company_name", "Job_Role", TechField}) {
		t.Fatalf("unexpected header: %v", filled.Header)
	}

	want := [][]string{
		{"Acme", "Frontend Developer", "HTML,CSS,JavaScript,React"},
		{"Short", "", NotSpecified},
		{"", ""},
	}
	if !reflect.DeepEqual(filled.Records, want) {
		t.Fatalf("unexpected records: %v", filled.Records)
	}
}

func TestBackfillTechnologiesNeedsRole(t *testing.T) {
	t.Parallel()

	raw := &RawTable{Source: "test", Header: []string{"company_name"}}

	_, _, err := raw.BackfillTechnologies()
	var missing *MissingColumnsError
	if !errors.As(err, &missing) || !reflect.DeepEqual(missing.Missing, []string{RoleField}) {
		t.Fatalf("expected missing job_role, got %v", err)
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

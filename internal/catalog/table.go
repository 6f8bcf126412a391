package catalog

// Table is the company table loaded once per process. It is never mutated
// after load, so a single Table can be shared by concurrent readers.
type Table struct {
	source    string
	companies *Companies
	skipped   []RowError
}

// NewTable wraps already decoded rows. It is mostly useful in tests.
func NewTable(source string, rows []Company) *Table {
	return &Table{source: source, companies: NewCompanies(rows)}
}

// Source is the path or name the table was read from.
func (t *Table) Source() string { return t.source }

// Companies returns the full view of the table.
func (t *Table) Companies() *Companies { return t.companies }

func (t *Table) Len() int { return t.companies.Len() }

// Skipped lists data rows dropped during load.
func (t *Table) Skipped() []RowError {
	out := make([]RowError, len(t.skipped))
	copy(out, t.skipped)
	return out
}

// Streams returns the sorted streams present in the table.
func (t *Table) Streams() []string {
	return t.companies.Unique(StreamField)
}

// Departments returns the sorted departments offered within stream.
func (t *Table) Departments(stream string) []string {
	return t.companies.FieldEquals(StreamField, stream).Unique(DepartmentField)
}

// Roles returns the sorted job roles offered within stream and department.
func (t *Table) Roles(stream, department string) []string {
	return t.companies.
		FieldEquals(StreamField, stream).
		FieldEquals(DepartmentField, department).
		Unique(RoleField)
}

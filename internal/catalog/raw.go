package catalog

import (
	"slices"
	"strings"
)

// RawTable is a table file as read: the header and records exactly as they
// appear, before rows are decoded into companies.
type RawTable struct {
	Source  string
	Header  []string
	Records [][]string
}

// ReadRaw reads a table file without decoding or validating its rows.
func ReadRaw(path string, opts Options) (*RawTable, error) {
	header, records, err := readFile(path, opts)
	if err != nil {
		return nil, err
	}
	return &RawTable{Source: path, Header: header, Records: records}, nil
}

// Column returns the index of the named column, or -1.
func (r *RawTable) Column(name string) int {
	for i, h := range r.Header {
		if normalizeColumn(h) == name {
			return i
		}
	}
	return -1
}

// BackfillTechnologies returns a copy where empty technologies cells are
// filled with the default stack of the row's job role. Every row and column
// is kept as is; the technologies column is appended when the table has none.
func (r *RawTable) BackfillTechnologies() (*RawTable, int, error) {
	roleIdx := r.Column(RoleField)
	if roleIdx < 0 {
		return nil, 0, &MissingColumnsError{Source: r.Source, Missing: []string{RoleField}}
	}

	header := slices.Clone(r.Header)
	techIdx := r.Column(TechField)
	if techIdx < 0 {
		techIdx = len(header)
		header = append(header, TechField)
	}

	records := make([][]string, len(r.Records))
	filled := 0
	for i, record := range r.Records {
		out := slices.Clone(record)
		if isBlank(record) {
			records[i] = out
			continue
		}

		for len(out) <= techIdx {
			out = append(out, "")
		}
		if strings.TrimSpace(out[techIdx]) == "" {
			role := ""
			if roleIdx < len(record) {
				role = strings.TrimSpace(record[roleIdx])
			}
			out[techIdx] = DefaultTechnologies(role)
			filled++
		}
		records[i] = out
	}

	return &RawTable{Source: r.Source, Header: header, Records: records}, filled, nil
}

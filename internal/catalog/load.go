package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const defaultSQLTable = "companies"

// Options tune how a table file is read.
type Options struct {
	// Sheet is the workbook sheet to read for xlsx files. The first sheet is used when empty.
	Sheet string
	// SQLTable is the table to read for sqlite files. Defaults to "companies".
	SQLTable string
}

// Load reads a company table from path. The format is chosen by extension:
// .csv, .xlsx or .db/.sqlite/.sqlite3.
func Load(path string, opts Options) (*Table, error) {
	raw, err := ReadRaw(path, opts)
	if err != nil {
		return nil, err
	}
	return buildTable(raw.Source, raw.Header, raw.Records)
}

func readFile(path string, opts Options) ([]string, [][]string, error) {
	var (
		header  []string
		records [][]string
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		header, records, err = readCSVFile(path)
	case ".xlsx":
		header, records, err = readXLSX(path, opts.Sheet)
	case ".db", ".sqlite", ".sqlite3":
		table := opts.SQLTable
		if table == "" {
			table = defaultSQLTable
		}
		header, records, err = readSQLite(path, table)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return header, records, nil
}

// ReadCSV reads a company table in CSV form from r.
func ReadCSV(source string, r io.Reader) (*Table, error) {
	header, records, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return buildTable(source, header, records)
}

func readCSVFile(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return readCSV(file)
}

func readCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

// CheckColumns verifies that header carries every required column.
func CheckColumns(source string, header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[normalizeColumn(h)] = struct{}{}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Source: source, Missing: missing}
	}
	return nil
}

func buildTable(source string, header []string, records [][]string) (*Table, error) {
	if err := CheckColumns(source, header); err != nil {
		return nil, err
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = normalizeColumn(h)
	}

	table := &Table{source: source}
	rows := make([]Company, 0, len(records))
	for idx, record := range records {
		// header is line 1
		line := idx + 2
		if isBlank(record) {
			continue
		}

		company, err := decodeRow(columns, record)
		if err != nil {
			table.skipped = append(table.skipped, RowError{Line: line, Reason: err.Error()})
			continue
		}
		if company.Name == "" {
			table.skipped = append(table.skipped, RowError{Line: line, Reason: "empty company name"})
			continue
		}
		rows = append(rows, company)
	}

	table.companies = NewCompanies(rows)
	return table, nil
}

func decodeRow(columns []string, record []string) (Company, error) {
	raw := make(map[string]any, len(columns))
	for i, col := range columns {
		value := ""
		if i < len(record) {
			value = strings.TrimSpace(record[i])
		}
		raw[col] = value
	}

	var company Company
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &company,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       tierDecodeHook,
	})
	if err != nil {
		return Company{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Company{}, err
	}
	return company, nil
}

func normalizeColumn(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ToLower(strings.TrimSpace(s))
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

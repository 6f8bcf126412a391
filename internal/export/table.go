package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spigell/career-advisor/internal/catalog"
)

// WriteTable writes a raw table to path, header first. The format follows the
// extension: .csv or .xlsx. Anything else is rejected.
func WriteTable(table *catalog.RawTable, path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return TableToExcel(table, path)
	case ".csv":
		return path, TableToCSV(table, path)
	default:
		return "", fmt.Errorf("%w: cannot write %q", catalog.ErrUnsupportedFormat, ext)
	}
}

// TableToCSV writes a raw table as CSV.
func TableToCSV(table *catalog.RawTable, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(tableRecords(table)); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return file.Close()
}

func tableRecords(table *catalog.RawTable) [][]string {
	records := make([][]string, 0, len(table.Records)+1)
	records = append(records, table.Header)
	return append(records, table.Records...)
}

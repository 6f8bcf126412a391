package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

func readSQLite(path, table string) ([]string, [][]string, error) {
	// sql.Open would silently create a new empty database.
	if _, err := os.Stat(path); err != nil {
		return nil, nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT * FROM " + quoteIdent(table))
	if err != nil {
		return nil, nil, fmt.Errorf("query table %q: %w", table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var records [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, err
		}

		record := make([]string, len(header))
		for i, v := range values {
			record[i] = v.String
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return header, records, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

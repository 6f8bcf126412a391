package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration marks a table that cannot be used at all.
var ErrConfiguration = errors.New("invalid company table")

// ErrUnsupportedFormat is returned for table files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// MissingColumnsError reports required header columns absent from a table.
type MissingColumnsError struct {
	Source  string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrConfiguration
}

// RowError describes a data row that was skipped during load.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

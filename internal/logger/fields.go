package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	FieldStream     = "stream"
	FieldDepartment = "department"
	FieldRole       = "role"
	FieldSource     = "source"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger, defaulting to a
// no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// SelectionFields returns the fields describing a stream, department and role
// selection. Empty values are skipped.
func SelectionFields(stream, department, role string) []zap.Field {
	return StringFields(
		StringField{Key: FieldStream, Value: stream},
		StringField{Key: FieldDepartment, Value: department},
		StringField{Key: FieldRole, Value: role},
	)
}

// WithSelection attaches the selection fields to the provided logger.
func WithSelection(logger *zap.Logger, stream, department, role string) *zap.Logger {
	return WithFields(logger, SelectionFields(stream, department, role)...)
}

package table

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchema matches every *SchemaError.
	ErrSchema = errors.New("table: schema mismatch")
	// ErrMalformedRow matches every *MalformedRowError.
	ErrMalformedRow = errors.New("table: malformed row")
)

// SchemaError reports required columns absent from a source header. It aborts
// the run that raised it.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table: %s: missing required column(s) %s", e.Source, strings.Join(quoteAll(e.Missing), ", "))
}

// Is lets errors.Is(err, ErrSchema) match.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// MalformedRowError describes a single record that could not be turned into a
// Row. Loaders skip the record and surface the error as a warning.
type MalformedRowError struct {
	Source string
	Line   int
	Reason string
	Fields []string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("table: %s:%d: %s", e.Source, e.Line, e.Reason)
}

// Is lets errors.Is(err, ErrMalformedRow) match.
func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = fmt.Sprintf("%q", value)
	}
	return out
}

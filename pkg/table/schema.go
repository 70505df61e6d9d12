package table

import (
	"errors"
	"fmt"
	"strings"
)

// ColumnType describes how a column's cells are interpreted.
type ColumnType uint8

const (
	ColumnString ColumnType = iota
	ColumnBool
)

func (t ColumnType) String() string {
	switch t {
	case ColumnBool:
		return "bool"
	default:
		return "string"
	}
}

// Column declares one expected header entry.
type Column struct {
	Name     string
	Type     ColumnType
	Required bool
}

// Schema lists the columns a source must provide. Identifier names the
// column used as the table key; Flag optionally names the boolean column
// copied into Row.Flag.
type Schema struct {
	Identifier string
	Flag       string
	Columns    []Column
}

// NewSchema builds the common two-column schema: a required identifier and an
// optional boolean flag. An empty flag name declares an identifier-only
// source.
func NewSchema(identifier, flag string) Schema {
	schema := Schema{
		Identifier: identifier,
		Flag:       flag,
		Columns: []Column{
			{Name: identifier, Type: ColumnString, Required: true},
		},
	}
	if flag != "" {
		schema.Columns = append(schema.Columns, Column{Name: flag, Type: ColumnBool, Required: true})
	}
	return schema
}

// Validate checks that the schema itself is usable.
func (s Schema) Validate() error {
	if strings.TrimSpace(s.Identifier) == "" {
		return errors.New("table: schema identifier column is required")
	}

	seen := make(map[string]struct{}, len(s.Columns))
	hasIdentifier := false
	for _, column := range s.Columns {
		name := strings.TrimSpace(column.Name)
		if name == "" {
			return errors.New("table: schema contains a column with an empty name")
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("table: schema declares column %q twice", name)
		}
		seen[name] = struct{}{}
		if name == s.Identifier {
			hasIdentifier = true
			if column.Type != ColumnString {
				return fmt.Errorf("table: identifier column %q must be a string column", name)
			}
		}
		if name == s.Flag && column.Type != ColumnBool {
			return fmt.Errorf("table: flag column %q must be a bool column", name)
		}
	}
	if !hasIdentifier {
		return fmt.Errorf("table: identifier column %q is not declared", s.Identifier)
	}
	if s.Flag != "" {
		if _, ok := seen[s.Flag]; !ok {
			return fmt.Errorf("table: flag column %q is not declared", s.Flag)
		}
	}
	return nil
}

// Missing returns the required columns absent from header, in schema order.
func (s Schema) Missing(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[strings.TrimSpace(name)] = struct{}{}
	}

	var missing []string
	for _, column := range s.Columns {
		if !column.Required {
			continue
		}
		if _, ok := present[column.Name]; !ok {
			missing = append(missing, column.Name)
		}
	}
	return missing
}

// Column returns the declaration for name.
func (s Schema) Column(name string) (Column, bool) {
	for _, column := range s.Columns {
		if column.Name == name {
			return column, true
		}
	}
	return Column{}, false
}

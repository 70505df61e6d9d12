package table

// Row is one record read from a tabular source.
type Row struct {
	// Identifier is the key emitted in the generated table. Never empty for
	// rows produced by a loader.
	Identifier string

	// Flag is the parsed boolean column, FlagUnset when the schema declares
	// no flag column or the cell could not be read as a boolean.
	Flag Flag

	// Fields holds every named cell of the record, including the identifier
	// and flag columns.
	Fields map[string]string

	// Line is the 1-based line of the record in its source.
	Line int
}

// Field returns the raw cell stored under name.
func (r Row) Field(name string) (string, bool) {
	if r.Fields == nil {
		return "", false
	}
	value, ok := r.Fields[name]
	return value, ok
}

// Identifiers returns the identifiers of rows in order.
func Identifiers(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Identifier)
	}
	return out
}

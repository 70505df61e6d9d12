package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-luatable/pkg/source"
	"github.com/goliatone/go-luatable/pkg/table"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func parse(location string, data []byte, schema table.Schema, comma rune, warn func(*table.MalformedRowError)) (source.Result, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return source.Result{}, &table.SchemaError{Source: location, Missing: schema.Missing(nil)}
	}
	if err != nil {
		return source.Result{}, fmt.Errorf("source loader: %s: read header: %w", location, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if missing := schema.Missing(header); len(missing) > 0 {
		return source.Result{}, &table.SchemaError{Source: location, Missing: missing}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	identifierCol := index[schema.Identifier]
	flagCol := -1
	if schema.Flag != "" {
		flagCol = index[schema.Flag]
	}

	var result source.Result
	skip := func(malformed *table.MalformedRowError) {
		result.Warnings = append(result.Warnings, malformed)
		if warn != nil {
			warn(malformed)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return source.Result{}, fmt.Errorf("source loader: %s: %w", location, err)
			}
			skip(&table.MalformedRowError{
				Source: location,
				Line:   parseErr.StartLine,
				Reason: parseErr.Err.Error(),
				Fields: record,
			})
			continue
		}

		line, _ := reader.FieldPos(0)
		if len(record) != len(header) {
			skip(&table.MalformedRowError{
				Source: location,
				Line:   line,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(record)),
				Fields: record,
			})
			continue
		}

		identifier := record[identifierCol]
		if strings.TrimSpace(identifier) == "" {
			skip(&table.MalformedRowError{
				Source: location,
				Line:   line,
				Reason: fmt.Sprintf("empty %s", schema.Identifier),
				Fields: record,
			})
			continue
		}

		row := table.Row{
			Identifier: identifier,
			Fields:     make(map[string]string, len(header)),
			Line:       line,
		}
		for i, name := range header {
			if _, exists := row.Fields[name]; !exists {
				row.Fields[name] = record[i]
			}
		}
		if flagCol >= 0 {
			row.Flag = table.ParseFlag(record[flagCol])
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

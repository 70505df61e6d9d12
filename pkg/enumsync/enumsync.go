// Package enumsync keeps the body-location CSV in step with the game's Java
// enum. Locations registered in the enum but missing from the CSV are
// appended with an empty flag cell for a human to fill in.
package enumsync

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-luatable/pkg/prompt"
	"github.com/goliatone/go-luatable/pkg/table"
)

// DefaultPattern matches one registered body location and captures its name.
var DefaultPattern = regexp.MustCompile(`public static final ItemBodyLocation \w+ = registerBase\("(\w+)"\);`)

// DefaultPrefix namespaces scanned names the way the game does.
const DefaultPrefix = "base:"

// Scan returns the first capture group of every line matching pattern, in
// file order. A nil pattern uses DefaultPattern.
func Scan(r io.Reader, pattern *regexp.Regexp) ([]string, error) {
	if pattern == nil {
		pattern = DefaultPattern
	}
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		match := pattern.FindStringSubmatch(scanner.Text())
		if len(match) > 1 {
			names = append(names, match[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("enumsync: scan: %w", err)
	}
	return names, nil
}

// Identifier lower-cases name and adds prefix.
func Identifier(prefix, name string) string {
	return prefix + cases.Lower(language.Und).String(name)
}

// Missing returns the identifiers built from names that are not in
// existing. Order follows names; duplicates are reported once.
func Missing(existing []string, names []string, prefix string) []string {
	known := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}
	var missing []string
	for _, name := range names {
		id := Identifier(prefix, name)
		if _, ok := known[id]; ok {
			continue
		}
		known[id] = struct{}{}
		missing = append(missing, id)
	}
	return missing
}

// Options configures Sync.
type Options struct {
	// EnumPath is the Java source to scan.
	EnumPath string
	// CSVPath is the table to extend.
	CSVPath string
	// Column is the identifier column of the table.
	Column string
	// Prefix defaults to DefaultPrefix.
	Prefix string
	// Pattern defaults to DefaultPattern.
	Pattern *regexp.Regexp
	// Prompt confirms the rewrite. Nil writes without asking.
	Prompt prompt.Driver
}

// Result reports what Sync found and did.
type Result struct {
	Scanned int
	Added   []string
	Written bool
}

// ErrDeclined is returned when the user declines the rewrite.
var ErrDeclined = errors.New("enumsync: update declined")

// Sync appends missing enum entries to the CSV.
func Sync(ctx context.Context, opts Options) (Result, error) {
	if opts.Column == "" {
		return Result{}, errors.New("enumsync: identifier column is required")
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}

	enum, err := os.Open(opts.EnumPath)
	if err != nil {
		return Result{}, fmt.Errorf("enumsync: open enum: %w", err)
	}
	names, err := Scan(enum, opts.Pattern)
	enum.Close()
	if err != nil {
		return Result{}, err
	}

	header, records, err := readTable(opts.CSVPath)
	if err != nil {
		return Result{}, err
	}
	column := -1
	for i, name := range header {
		if name == opts.Column {
			column = i
			break
		}
	}
	if column < 0 {
		return Result{}, &table.SchemaError{Source: opts.CSVPath, Missing: []string{opts.Column}}
	}

	existing := make([]string, 0, len(records))
	for _, record := range records {
		if column < len(record) {
			existing = append(existing, record[column])
		}
	}

	result := Result{Scanned: len(names), Added: Missing(existing, names, opts.Prefix)}
	if len(result.Added) == 0 {
		return result, nil
	}

	if opts.Prompt != nil {
		ok, err := opts.Prompt.Confirm(ctx, prompt.ConfirmConfig{
			Message: fmt.Sprintf("Add %d missing entries to %s?", len(result.Added), opts.CSVPath),
			Default: true,
			Help:    strings.Join(result.Added, ", "),
		})
		if err != nil {
			return result, err
		}
		if !ok {
			return result, ErrDeclined
		}
	}

	for _, id := range result.Added {
		record := make([]string, len(header))
		record[column] = id
		records = append(records, record)
	}
	if err := writeTable(opts.CSVPath, header, records); err != nil {
		return result, err
	}
	result.Written = true
	return result, nil
}

func readTable(path string) ([]string, [][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("enumsync: read table: %w", err)
	}
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("enumsync: parse %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("enumsync: %s has no header row", path)
	}
	header := all[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return header, all[1:], nil
}

func writeTable(path string, header []string, records [][]string) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("enumsync: encode header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("enumsync: encode rows: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("enumsync: write %s: %w", path, err)
	}
	return nil
}

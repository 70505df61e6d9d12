// Package filter restricts and orders rows before rendering.
package filter

import (
	"slices"
	"strings"

	"github.com/goliatone/go-luatable/pkg/table"
)

// Predicate admits or rejects a row.
type Predicate func(table.Row) bool

// Contains admits rows whose identifier contains substr. The match is a
// literal, case-sensitive inclusion check; an empty substr admits every row.
func Contains(substr string) Predicate {
	return func(row table.Row) bool {
		return strings.Contains(row.Identifier, substr)
	}
}

// StrictTrue admits only rows whose flag parsed to a literal true. Unset,
// false and truthy-looking tokens such as "yes" are rejected.
func StrictTrue() Predicate {
	return func(row table.Row) bool {
		return row.Flag == table.FlagTrue
	}
}

// Apply returns the rows satisfying every predicate, in input order. Nil
// predicates are ignored. The input slice is never modified.
func Apply(rows []table.Row, predicates ...Predicate) []table.Row {
	out := make([]table.Row, 0, len(rows))
rows:
	for _, row := range rows {
		for _, pred := range predicates {
			if pred != nil && !pred(row) {
				continue rows
			}
		}
		out = append(out, row)
	}
	return out
}

// SortByIdentifier returns a copy of rows ordered by identifier using
// byte-wise comparison. Rows with equal identifiers keep their input order.
func SortByIdentifier(rows []table.Row) []table.Row {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b table.Row) int {
		return strings.Compare(a.Identifier, b.Identifier)
	})
	return out
}

// Spec bundles the filtering and ordering applied to one row group.
type Spec struct {
	// Contains, when non-empty, keeps rows whose identifier contains it.
	Contains string
	// StrictTrue keeps rows whose flag is literally true.
	StrictTrue bool
	// Sort orders the surviving rows by identifier.
	Sort bool
}

// Predicates returns the predicates s describes.
func (s Spec) Predicates() []Predicate {
	var preds []Predicate
	if s.Contains != "" {
		preds = append(preds, Contains(s.Contains))
	}
	if s.StrictTrue {
		preds = append(preds, StrictTrue())
	}
	return preds
}

// Run filters and, when requested, sorts rows.
func (s Spec) Run(rows []table.Row) []table.Row {
	out := Apply(rows, s.Predicates()...)
	if s.Sort {
		out = SortByIdentifier(out)
	}
	return out
}

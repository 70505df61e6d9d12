// Package table holds the row model shared by every stage of the generator:
// the tri-state flag parsed from spreadsheet cells, the column schema a source
// is validated against, and the error types raised while reading rows.
package table

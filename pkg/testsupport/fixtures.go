// Package testsupport holds helpers shared by the package tests: CSV fixture
// files, golden files and row builders.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-luatable/pkg/table"
)

// WriteFile writes content to name inside dir, creating parents, and
// returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// MustReadFile returns the content of path as a string.
func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got with the golden file at path, rewriting the
// golden instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := MustReadFile(t, path)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// Rows builds rows from identifier/flag pairs.
func Rows(pairs ...any) []table.Row {
	if len(pairs)%2 != 0 {
		panic("testsupport: Rows expects identifier/flag pairs")
	}
	rows := make([]table.Row, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		row := table.Row{Identifier: pairs[i].(string), Line: i/2 + 2}
		switch flag := pairs[i+1].(type) {
		case table.Flag:
			row.Flag = flag
		case bool:
			row.Flag = table.FlagOf(flag)
		case nil:
			row.Flag = table.FlagUnset
		default:
			panic("testsupport: unsupported flag value")
		}
		rows = append(rows, row)
	}
	return rows
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

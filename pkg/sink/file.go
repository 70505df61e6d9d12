package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	fcolor "github.com/fatih/color"
)

// File replaces the contents of Path with the text, creating parent
// directories as needed, then reports the path it wrote.
type File struct {
	Path string
	// Report receives the confirmation line. Nil means stdout.
	Report    io.Writer
	Highlight bool
}

// NewFile returns a file sink.
func NewFile(path string, report io.Writer, highlight bool) *File {
	return &File{Path: path, Report: report, Highlight: highlight}
}

func (f *File) Name() string {
	return "file"
}

func (f *File) Write(_ context.Context, text string) error {
	if f.Path == "" {
		return errors.New("output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", f.Path, err)
	}
	if err := os.WriteFile(f.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}

	report := f.Report
	if report == nil {
		report = os.Stdout
	}
	path := f.Path
	if f.Highlight {
		path = fcolor.New(fcolor.FgCyan).Sprint(path)
	}
	_, err := fmt.Fprintf(report, "Wrote to %s\n", path)
	return err
}

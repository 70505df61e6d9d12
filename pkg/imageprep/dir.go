package imageprep

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrOutputCollision is returned when two inputs map to the same PNG name.
var ErrOutputCollision = errors.New("imageprep: output name collision")

var inputExtensions = []string{".png", ".jpg", ".jpeg"}

// OutputName maps an input file name to the PNG written for it.
func OutputName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// ProcessDir strips every PNG/JPEG directly inside inDir and writes the
// results to outDir, creating it if needed. It returns the written paths in
// name order. Inputs sharing a base name (a.png, a.jpg) fail with
// ErrOutputCollision before anything is written.
func ProcessDir(ctx context.Context, inDir, outDir string, opts Options) ([]string, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("imageprep: read %s: %w", inDir, err)
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range inputExtensions {
			if ext == want {
				inputs = append(inputs, entry.Name())
				break
			}
		}
	}
	sort.Strings(inputs)

	claimed := make(map[string]string, len(inputs))
	for _, name := range inputs {
		out := OutputName(name)
		if first, ok := claimed[out]; ok {
			return nil, fmt.Errorf("%w: %s and %s both become %s", ErrOutputCollision, first, name, out)
		}
		claimed[out] = name
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("imageprep: create %s: %w", outDir, err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}

	written := make([]string, len(inputs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, name := range inputs {
		i, name := i, name
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := filepath.Join(outDir, OutputName(name))
			if err := processFile(filepath.Join(inDir, name), out, opts); err != nil {
				return err
			}
			written[i] = out
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}

func processFile(in, out string, opts Options) error {
	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("imageprep: open %s: %w", in, err)
	}
	img, _, err := image.Decode(src)
	src.Close()
	if err != nil {
		return fmt.Errorf("imageprep: decode %s: %w", in, err)
	}

	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("imageprep: create %s: %w", out, err)
	}
	if err := png.Encode(dst, Strip(img, opts)); err != nil {
		dst.Close()
		return fmt.Errorf("imageprep: encode %s: %w", out, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("imageprep: close %s: %w", out, err)
	}
	return nil
}

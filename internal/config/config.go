// Package config reads the command's environment settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/goliatone/go-luatable/pkg/jobs"
)

// Config holds settings that override the defaults of every command.
type Config struct {
	// Root is the mod repository root. Defaults to the working directory.
	Root string `env:"LUATABLE_ROOT"`
	// Manifest points at a jobs file used instead of the bundled one. Its
	// templates live in a "templates" directory next to it.
	Manifest string `env:"LUATABLE_MANIFEST"`
	// ImageWorkers bounds concurrent screenshots in strip-images.
	ImageWorkers int `env:"LUATABLE_IMAGE_WORKERS" envDefault:"4"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// ProjectRoot returns Root as an absolute path, or the working directory.
func (c Config) ProjectRoot() (string, error) {
	if c.Root == "" {
		return os.Getwd()
	}
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return "", fmt.Errorf("config: resolve root: %w", err)
	}
	return root, nil
}

// Jobs loads the configured manifest, falling back to the bundled one.
func (c Config) Jobs() (*jobs.Manifest, error) {
	if c.Manifest == "" {
		return jobs.LoadDefault()
	}
	path, err := filepath.Abs(c.Manifest)
	if err != nil {
		return nil, fmt.Errorf("config: resolve manifest: %w", err)
	}
	return jobs.LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

package jobs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-luatable/pkg/luacheck"
)

// Manifest is a parsed job file together with the filesystem its templates
// are read from.
type Manifest struct {
	Jobs []JobConfig `yaml:"jobs"`

	templates fs.FS
	source    string
}

// JobConfig describes one job as written in the manifest.
type JobConfig struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Template    string   `yaml:"template"`
	Highlight   bool     `yaml:"highlight"`
	Sinks       []string `yaml:"sinks"`
	Output      string   `yaml:"output"`
	// Check is the Lua compile mode: chunk (default), fields or none.
	Check  string        `yaml:"check"`
	Groups []GroupConfig `yaml:"groups"`
}

// GroupConfig describes one row group as written in the manifest.
type GroupConfig struct {
	Name       string `yaml:"name"`
	Source     string `yaml:"source"`
	Identifier string `yaml:"identifier"`
	Flag       string `yaml:"flag"`
	Contains   string `yaml:"contains"`
	StrictTrue bool   `yaml:"strictTrue"`
	Sort       bool   `yaml:"sort"`
	Format     string `yaml:"format"`
	Depth      int    `yaml:"depth"`
	// Value, when set, is emitted for every row instead of the flag.
	Value *bool `yaml:"value"`
	// UnsetAs, when set, is emitted for rows whose flag cell is blank or
	// not a boolean. Otherwise such rows are left out.
	UnsetAs *bool `yaml:"unsetAs"`
}

// Sink names accepted in a manifest.
const (
	SinkConsole   = "console"
	SinkClipboard = "clipboard"
	SinkFile      = "file"
)

// LoadFS parses the manifest called name inside fsys. Templates named by the
// manifest are resolved relative to a "templates" directory next to it.
func LoadFS(fsys fs.FS, name string) (*Manifest, error) {
	if fsys == nil {
		return nil, fmt.Errorf("jobs: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("jobs: read %s: %w", name, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("jobs: file %s is empty", name)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("jobs: parse %s: %w", name, err)
	}

	templates, err := fs.Sub(fsys, path.Join(path.Dir(name), "templates"))
	if err != nil {
		return nil, fmt.Errorf("jobs: templates for %s: %w", name, err)
	}
	manifest.templates = templates
	manifest.source = name

	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// Names lists job names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Jobs))
	for _, job := range m.Jobs {
		names = append(names, job.Name)
	}
	return names
}

// Job returns the configuration named name.
func (m *Manifest) Job(name string) (JobConfig, bool) {
	for _, job := range m.Jobs {
		if job.Name == name {
			return job, true
		}
	}
	return JobConfig{}, false
}

func (m *Manifest) validate() error {
	if len(m.Jobs) == 0 {
		return fmt.Errorf("jobs: file %s defines no jobs", m.source)
	}

	seen := make(map[string]struct{}, len(m.Jobs))
	for idx, job := range m.Jobs {
		name := strings.TrimSpace(job.Name)
		if name == "" {
			return fmt.Errorf("jobs: file %s job %d has no name", m.source, idx)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("jobs: file %s defines job %q twice", m.source, name)
		}
		seen[name] = struct{}{}

		if job.Template == "" {
			return fmt.Errorf("jobs: job %q has no template", name)
		}
		if _, err := luacheck.ParseMode(job.Check); err != nil {
			return fmt.Errorf("jobs: job %q: %w", name, err)
		}
		hasFile := false
		for _, sinkName := range job.Sinks {
			switch sinkName {
			case SinkConsole, SinkClipboard:
			case SinkFile:
				hasFile = true
			default:
				return fmt.Errorf("jobs: job %q uses unknown sink %q", name, sinkName)
			}
		}
		if hasFile && strings.TrimSpace(job.Output) == "" {
			return fmt.Errorf("jobs: job %q writes a file but has no output path", name)
		}

		groups := make(map[string]struct{}, len(job.Groups))
		for gidx, group := range job.Groups {
			if group.Name == "" {
				return fmt.Errorf("jobs: job %q group %d has no name", name, gidx)
			}
			if _, exists := groups[group.Name]; exists {
				return fmt.Errorf("jobs: job %q defines group %q twice", name, group.Name)
			}
			groups[group.Name] = struct{}{}
			if group.Source == "" || group.Identifier == "" {
				return fmt.Errorf("jobs: job %q group %q needs source and identifier", name, group.Name)
			}
			if group.Value == nil && group.Flag == "" {
				return fmt.Errorf("jobs: job %q group %q needs either a flag column or a constant value", name, group.Name)
			}
			if group.StrictTrue && group.Flag == "" {
				return fmt.Errorf("jobs: job %q group %q filters on strictTrue without a flag column", name, group.Name)
			}
		}
	}
	return nil
}

package luatable_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-luatable"
	"github.com/goliatone/go-luatable/pkg/assemble"
	"github.com/goliatone/go-luatable/pkg/filter"
	"github.com/goliatone/go-luatable/pkg/jobs"
	"github.com/goliatone/go-luatable/pkg/orchestrator"
	"github.com/goliatone/go-luatable/pkg/render"
	"github.com/goliatone/go-luatable/pkg/sink"
	"github.com/goliatone/go-luatable/pkg/source"
	"github.com/goliatone/go-luatable/pkg/table"
	"github.com/goliatone/go-luatable/pkg/testsupport"
)

func TestRun_BodyLocations(t *testing.T) {
	manifest, err := jobs.LoadDefault()
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	root := t.TempDir()
	testsupport.WriteFile(t, root, "Scripts/bodyLocations.csv", "bodyLocation,canEquip\nbase:hat,true\nbase:back,\nbase:belt,false\n")
	testsupport.WriteFile(t, root, "Scripts/bloodLocations.csv", "bloodLocation\nHead\n")

	var copied string
	results, err := luatable.Run(context.Background(), manifest, []string{"body-locations"},
		[]jobs.BuildOption{
			jobs.WithRoot(root),
			jobs.WithStdout(&bytes.Buffer{}),
			jobs.WithClipboardOptions(sink.WithClipboardWriter(func(text string) error {
				copied = text
				return nil
			})),
		},
		orchestrator.WithWarningWriter(io.Discard),
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}

	text := results[0].Text
	for _, want := range []string{
		"        [\"base:hat\"] = true,\n        [\"base:back\"] = false,\n        [\"base:belt\"] = false,",
		"        [\"Head\"] = true,",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in:\n%s", want, text)
		}
	}
	if copied != text {
		t.Fatalf("clipboard content differs from result")
	}
}

func TestRun_RequiresManifest(t *testing.T) {
	if _, err := luatable.Run(context.Background(), nil, nil, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestEmbeddedJobs(t *testing.T) {
	manifest, err := jobs.LoadFS(luatable.EmbeddedJobs(), jobs.DefaultManifest)
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if len(manifest.Names()) == 0 {
		t.Fatalf("embedded manifest has no jobs")
	}
}

func TestNewLoader_FromFS(t *testing.T) {
	files := fstest.MapFS{
		"data/saddles.csv": {Data: []byte("saddle;owned\nwestern;true\nenglish;false\nracing;true\n")},
	}
	loader := luatable.NewLoader(source.WithFileSystem(files), source.WithComma(';'))

	result, err := luatable.NewOrchestrator(orchestrator.WithLoader(loader)).Generate(context.Background(), luatable.Job{
		Name:     "saddles",
		Template: assemble.Template{Name: "saddles", Body: "return {\n{{ saddles }}\n}"},
		Groups: []luatable.Group{{
			Name:   "saddles",
			Source: source.SourceFromFS("data/saddles.csv"),
			Schema: table.NewSchema("saddle", "owned"),
			Filter: filter.Spec{Contains: "ing"},
			Format: render.LuaStringKey(1),
			Value:  render.FromFlag(),
		}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if want := "return {\n    [\"racing\"] = true,\n}"; result.Text != want {
		t.Fatalf("text = %q, want %q", result.Text, want)
	}
}

func TestRun_KeepsPartialResultOnSinkError(t *testing.T) {
	manifest, err := jobs.LoadDefault()
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	root := t.TempDir()
	testsupport.WriteFile(t, root, "Scripts/bodyLocations.csv", "bodyLocation,canEquip\nbase:hat,true\n")
	testsupport.WriteFile(t, root, "Scripts/bloodLocations.csv", "bloodLocation\nHead\n")

	var console bytes.Buffer
	results, err := luatable.Run(context.Background(), manifest, []string{"body-locations"},
		[]jobs.BuildOption{
			jobs.WithRoot(root),
			jobs.WithStdout(&console),
			jobs.WithClipboardOptions(sink.WithClipboardWriter(func(string) error {
				return errors.New("no display")
			})),
		},
		orchestrator.WithWarningWriter(io.Discard),
	)

	var sinkErr *sink.SinkError
	if !errors.As(err, &sinkErr) || sinkErr.Sink != "clipboard" {
		t.Fatalf("expected clipboard SinkError, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected the partial result, got %d results", len(results))
	}
	if results[0].Job != "body-locations" || results[0].Text == "" {
		t.Fatalf("unexpected partial result: %+v", results[0])
	}
	if len(results[0].Sinks) != 1 || results[0].Sinks[0] != "console" {
		t.Fatalf("expected delivery to console only, got %v", results[0].Sinks)
	}
	if !strings.Contains(console.String(), "[\"base:hat\"] = true,") {
		t.Fatalf("console should still show the text, got %q", console.String())
	}
}

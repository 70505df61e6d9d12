package template_test

import (
	"bytes"
	"testing"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-luatable/pkg/render/template/gotemplate"
)

func TestGoTemplateEngine_RenderStringWritesOut(t *testing.T) {
	engine := newEngine(t)

	var written bytes.Buffer
	result, err := engine.RenderString("local greeting = \"Hello {{ name }}\"\n", map[string]any{"name": "Ada"}, &written)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}

	want := "local greeting = \"Hello Ada\"\n"
	if result != want {
		t.Fatalf("render mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written.String() != want {
		t.Fatalf("render mismatch writer\nwant: %q\n got: %q", want, written.String())
	}
}

func TestGoTemplateEngine_RenderStringDoesNotEscape(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderString("t = {\n{{ body }}\n}", map[string]string{
		"body": `    ["base:a<b&c"] = true,`,
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}

	want := "t = {\n    [\"base:a<b&c\"] = true,\n}"
	if result != want {
		t.Fatalf("render string mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_EscapingIsPerEngine(t *testing.T) {
	lua := newEngine(t)
	html, err := gotemplate.New(gotemplate.WithAutoescape(true))
	if err != nil {
		t.Fatalf("new escaping engine: %v", err)
	}

	data := map[string]any{"k": `["a<b"] = true,`}

	escaped, err := html.RenderString("{{ k }}", data)
	if err != nil {
		t.Fatalf("render escaped: %v", err)
	}
	if want := "[&quot;a&lt;b&quot;] = true,"; escaped != want {
		t.Fatalf("escaping engine output\nwant: %q\n got: %q", want, escaped)
	}

	raw, err := lua.RenderString("{{ k }}", data)
	if err != nil {
		t.Fatalf("render raw: %v", err)
	}
	if want := `["a<b"] = true,`; raw != want {
		t.Fatalf("raw engine changed by a later engine\nwant: %q\n got: %q", want, raw)
	}

	again, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new raw engine: %v", err)
	}
	if out, _ := html.RenderString("{{ k }}", data); out != escaped {
		t.Fatalf("escaping engine changed by a later engine: %q", out)
	}
	if out, _ := again.RenderString("{{ k }}", pongo2.Context{"k": "<"}); out != "<" {
		t.Fatalf("pongo2.Context data should be accepted unescaped, got %q", out)
	}
}

func TestGoTemplateEngine_Errors(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderString("{% if %}", nil); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := engine.RenderString("{{ a }}", 42); err == nil {
		t.Fatalf("expected error for unsupported data")
	}

	var nilEngine *gotemplate.Engine
	if _, err := nilEngine.RenderString("x", nil); err == nil {
		t.Fatalf("expected error for nil engine")
	}
}

func TestGoTemplateEngine_NilDataRendersEmpty(t *testing.T) {
	out, err := newEngine(t).RenderString("[{{ missing }}]", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "[]" {
		t.Fatalf("unexpected output %q", out)
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

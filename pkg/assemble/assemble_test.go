package assemble_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-luatable/pkg/assemble"
)

const twoTables = `first = {
{{ bodyLocations }}
},
second = {
{{bloodLocations}}
},`

func TestPlaceholders(t *testing.T) {
	tpl := assemble.Template{Name: "two", Body: twoTables}
	if diff := cmp.Diff([]string{"bodyLocations", "bloodLocations"}, tpl.Placeholders()); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_FillsEveryRegion(t *testing.T) {
	a := mustNew(t, assemble.Template{Name: "two", Body: twoTables})

	got, err := a.Assemble(map[string][]string{
		"bodyLocations":  {`    ["Hat"] = true,`, `    ["Mask"] = false,`},
		"bloodLocations": {`    ["Head"] = true,`},
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := "first = {\n    [\"Hat\"] = true,\n    [\"Mask\"] = false,\n},\nsecond = {\n    [\"Head\"] = true,\n},"
	if got != want {
		t.Fatalf("assembled mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestAssemble_EmptyGroupKeepsRegion(t *testing.T) {
	a := mustNew(t, assemble.Template{Name: "blocker", Body: "validActions = {\n{{ timedActions }}\n},"})

	got, err := a.Assemble(map[string][]string{"timedActions": nil})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if want := "validActions = {\n\n},"; got != want {
		t.Fatalf("empty region mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestAssemble_GroupMismatchIsConfigError(t *testing.T) {
	a := mustNew(t, assemble.Template{Name: "two", Body: twoTables})

	_, err := a.Assemble(map[string][]string{"bodyLocations": nil})
	if !errors.Is(err, assemble.ErrTemplateConfig) {
		t.Fatalf("expected config error for unfilled placeholder, got %v", err)
	}

	_, err = a.Assemble(map[string][]string{"bodyLocations": nil, "bloodLocations": nil, "extra": nil})
	if !errors.Is(err, assemble.ErrTemplateConfig) {
		t.Fatalf("expected config error for unknown group, got %v", err)
	}
}

func TestNew_RejectsBadTemplates(t *testing.T) {
	bad := []assemble.Template{
		{Name: "twice", Body: "{{ a }} and {{ a }}"},
		{Name: "tag", Body: "{% if a %}{{ a }}{% endif %}"},
		{Name: "filter", Body: "{{ a|upper }}"},
		{Name: "comment", Body: "{# note #}{{ a }}"},
	}
	for _, tpl := range bad {
		if _, err := assemble.New(tpl); !errors.Is(err, assemble.ErrTemplateConfig) {
			t.Errorf("template %q: expected config error, got %v", tpl.Name, err)
		}
	}
}

func TestAssemble_LeavesLuaBracesAlone(t *testing.T) {
	a := mustNew(t, assemble.Template{Name: "nested", Body: "local t = { {1}, {2} }\nlocal u = {\n{{ rows }}\n}"})

	got, err := a.Assemble(map[string][]string{"rows": {`["a&b"] = true,`}})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if want := "local t = { {1}, {2} }\nlocal u = {\n[\"a&b\"] = true,\n}"; got != want {
		t.Fatalf("mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestJoin(t *testing.T) {
	if got := assemble.Join(nil, "\n"); got != "" {
		t.Fatalf("join of nothing should be empty, got %q", got)
	}
	if got := assemble.Join([]string{"a", "b"}, "\n"); got != "a\nb" {
		t.Fatalf("unexpected join %q", got)
	}
	if got := assemble.Join([]string{"a", ""}, "\n"); got != "a\n" {
		t.Fatalf("only a single trailing separator is trimmed, got %q", got)
	}
}

func mustNew(t *testing.T, tpl assemble.Template) *assemble.Assembler {
	t.Helper()
	a, err := assemble.New(tpl)
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	return a
}

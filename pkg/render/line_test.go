package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-luatable/pkg/assemble"
	"github.com/goliatone/go-luatable/pkg/render"
	"github.com/goliatone/go-luatable/pkg/table"
	"github.com/goliatone/go-luatable/pkg/testsupport"
)

func TestLines_EquipTableRoundTrip(t *testing.T) {
	rows := testsupport.Rows("base:a", true, "base:b", false)

	lines, skipped := render.Lines(rows, render.LuaStringKey(0), render.FromFlag())
	if skipped != 0 {
		t.Fatalf("unexpected skipped rows: %d", skipped)
	}

	want := "[\"base:a\"] = true,\n[\"base:b\"] = false,"
	if got := assemble.Join(lines, "\n"); got != want {
		t.Fatalf("round trip mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestLine_IndentsByDepth(t *testing.T) {
	row := table.Row{Identifier: "ISEatFoodAction", Flag: table.FlagTrue}

	got, ok := render.Line(row, render.LuaStringKey(2), render.FromFlag())
	if !ok {
		t.Fatalf("row should render")
	}
	if want := `        ["ISEatFoodAction"] = true,`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}

	narrow := render.LuaStringKey(1)
	narrow.IndentWidth = 2
	got, _ = render.Line(row, narrow, render.FromFlag())
	if want := `  ["ISEatFoodAction"] = true,`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestLine_ConstantIgnoresFlag(t *testing.T) {
	rows := testsupport.Rows("Head", false, "Neck", nil)

	lines, skipped := render.Lines(rows, render.LuaStringKey(0), render.Constant(true))
	if skipped != 0 {
		t.Fatalf("constant values never skip, got %d", skipped)
	}
	if diff := cmp.Diff([]string{`["Head"] = true,`, `["Neck"] = true,`}, lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLine_UnsetFlag(t *testing.T) {
	rows := testsupport.Rows("base:new", nil, "base:hat", true)

	lines, skipped := render.Lines(rows, render.LuaStringKey(0), render.FromFlag())
	if skipped != 1 || len(lines) != 1 {
		t.Fatalf("unset row should be skipped, got %d lines and %d skipped", len(lines), skipped)
	}

	lines, skipped = render.Lines(rows, render.LuaStringKey(0).WithUnsetAs(false), render.FromFlag())
	if skipped != 0 {
		t.Fatalf("UnsetAs should prevent skipping")
	}
	if lines[0] != `["base:new"] = false,` {
		t.Fatalf("unexpected default line %q", lines[0])
	}
}

func TestEscapeKey(t *testing.T) {
	cases := map[string]string{
		"base:hat_01":   "base:hat_01",
		`say "hi"`:      `say \"hi\"`,
		`back\slash`:    `back\\slash`,
		"two\nlines":    `two\nlines`,
		"crlf\r\n":      `crlf\r\n`,
		"nul\x00" + "1": `nul\0001`,
		"tab\there":     `tab\009here`,
		"del\x7f":       `del\127`,
		"café":          "café",
	}
	for in, want := range cases {
		if got := render.EscapeKey(in); got != want {
			t.Errorf("EscapeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLines_Deterministic(t *testing.T) {
	rows := testsupport.Rows("b", true, "a", false, "c", nil)
	format := render.LuaStringKey(2).WithUnsetAs(true)

	first, _ := render.Lines(rows, format, render.FromFlag())
	second, _ := render.Lines(rows, format, render.FromFlag())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("rendering is not deterministic:\n%s", diff)
	}
}

func TestRegistry(t *testing.T) {
	registry := render.DefaultRegistry()

	format, err := registry.Get("lua")
	if err != nil {
		t.Fatalf("get lua: %v", err)
	}
	if format.Open != `["` || format.Close != "," {
		t.Fatalf("unexpected lua format: %#v", format)
	}
	if err := registry.Register("lua", format); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if err := registry.Register("plain", render.LineFormat{Assign: " = "}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if diff := cmp.Diff([]string{"lua", "plain"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

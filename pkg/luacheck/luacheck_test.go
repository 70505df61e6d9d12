package luacheck_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-luatable/pkg/luacheck"
)

const blocker = `---generated
local ActionBlocker = {
    validActions = {
        ["ISEat"] = true,
        ["IS\"Quoted\""] = true,
    },
}

return ActionBlocker`

const fragment = `    allowedBodyLocations = {
        ["base:hat"] = true,
        ["base:belt"] = false,
    },

    allowedBloodLocations = {
    },`

func TestCheck(t *testing.T) {
	if err := luacheck.Check("blocker", blocker, luacheck.ModeChunk); err != nil {
		t.Fatalf("valid chunk rejected: %v", err)
	}
	if err := luacheck.Check("fragment", fragment, luacheck.ModeFields); err != nil {
		t.Fatalf("valid fragment rejected: %v", err)
	}
	if err := luacheck.Check("fragment", fragment, luacheck.ModeChunk); !errors.Is(err, luacheck.ErrSyntax) {
		t.Fatalf("fragment compiled as chunk should fail, got %v", err)
	}
	if err := luacheck.Check("broken", "local t = {\n[\"a\"] = true\n[\"b\"] = true\n}", luacheck.ModeChunk); err == nil {
		t.Fatalf("missing separator should be a syntax error")
	}
	if err := luacheck.Check("skipped", "not lua at all {{", luacheck.ModeNone); err != nil {
		t.Fatalf("ModeNone should skip, got %v", err)
	}
}

func TestSyntaxErrorNamesSource(t *testing.T) {
	err := luacheck.Check("ActionBlocker.lua", "return {", luacheck.ModeChunk)
	var syntaxErr *luacheck.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if syntaxErr.Name != "ActionBlocker.lua" || syntaxErr.Message == "" {
		t.Fatalf("unexpected error fields: %+v", syntaxErr)
	}
}

func TestBoolTable(t *testing.T) {
	got, err := luacheck.BoolTable("blocker", blocker, luacheck.ModeChunk, "validActions")
	if err != nil {
		t.Fatalf("bool table: %v", err)
	}
	want := map[string]bool{"ISEat": true, `IS"Quoted"`: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}

	body, err := luacheck.BoolTable("fragment", fragment, luacheck.ModeFields, "allowedBodyLocations")
	if err != nil {
		t.Fatalf("fragment table: %v", err)
	}
	if diff := cmp.Diff(map[string]bool{"base:hat": true, "base:belt": false}, body); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}

	if _, err := luacheck.BoolTable("blocker", blocker, luacheck.ModeChunk, "missing"); err == nil {
		t.Fatalf("expected error for missing field")
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]luacheck.Mode{"": luacheck.ModeChunk, "Chunk": luacheck.ModeChunk, "fields": luacheck.ModeFields, "none": luacheck.ModeNone} {
		got, err := luacheck.ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := luacheck.ParseMode("strict"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

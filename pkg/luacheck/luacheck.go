// Package luacheck compiles generated Lua with an embedded interpreter so a
// broken template is caught before anything is written.
package luacheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"
)

// Mode selects how generated text is compiled.
type Mode string

const (
	// ModeNone skips the check.
	ModeNone Mode = "none"
	// ModeChunk compiles the text as a complete Lua chunk.
	ModeChunk Mode = "chunk"
	// ModeFields compiles the text as the inside of a table constructor,
	// for fragments pasted into a larger file.
	ModeFields Mode = "fields"
)

// ParseMode maps a manifest value to a Mode. Empty means ModeChunk.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeChunk:
		return ModeChunk, nil
	case ModeFields:
		return ModeFields, nil
	case ModeNone:
		return ModeNone, nil
	default:
		return "", fmt.Errorf("luacheck: unknown mode %q", value)
	}
}

// ErrSyntax matches every *SyntaxError.
var ErrSyntax = errors.New("luacheck: syntax error")

// SyntaxError carries the interpreter's message for the generated text.
type SyntaxError struct {
	Name    string
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("luacheck: %s: %s", e.Name, e.Message)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Check compiles text without running it. name labels error messages.
func Check(name, text string, mode Mode) error {
	source, ok := wrap(text, mode)
	if !ok {
		return nil
	}

	state := lua.NewState()
	if err := lua.LoadBuffer(state, source, "="+name, ""); err != nil {
		message, _ := state.ToString(-1)
		if message == "" {
			message = err.Error()
		}
		return &SyntaxError{Name: name, Message: message}
	}
	return nil
}

// Eval runs text and returns the state with the chunk's results on the
// stack. ModeFields text evaluates to a single table.
func Eval(name, text string, mode Mode) (*lua.State, error) {
	source, ok := wrap(text, mode)
	if !ok {
		return nil, errors.New("luacheck: nothing to evaluate in mode none")
	}

	state := lua.NewState()
	lua.OpenLibraries(state)
	if err := lua.LoadBuffer(state, source, "="+name, ""); err != nil {
		message, _ := state.ToString(-1)
		return nil, &SyntaxError{Name: name, Message: message}
	}
	if err := state.ProtectedCall(0, lua.MultipleReturns, 0); err != nil {
		message, _ := state.ToString(-1)
		return nil, fmt.Errorf("luacheck: run %s: %s", name, message)
	}
	return state, nil
}

func wrap(text string, mode Mode) (string, bool) {
	switch mode {
	case ModeNone:
		return "", false
	case ModeFields:
		return "return {\n" + text + "\n}", true
	default:
		return text, true
	}
}

// BoolTable evaluates text and returns the string-keyed boolean entries of
// the table found by following path from the chunk's first result.
func BoolTable(name, text string, mode Mode, path ...string) (map[string]bool, error) {
	state, err := Eval(name, text, mode)
	if err != nil {
		return nil, err
	}
	if state.Top() < 1 || !state.IsTable(1) {
		return nil, fmt.Errorf("luacheck: %s does not return a table", name)
	}
	state.SetTop(1)
	for _, key := range path {
		state.Field(-1, key)
		if !state.IsTable(-1) {
			return nil, fmt.Errorf("luacheck: %s: field %q is not a table", name, key)
		}
	}

	out := make(map[string]bool)
	state.PushNil()
	for state.Next(-2) {
		if state.TypeOf(-2) == lua.TypeString && state.IsBoolean(-1) {
			key, _ := state.ToString(-2)
			out[key] = state.ToBoolean(-1)
		}
		state.Pop(1)
	}
	return out, nil
}

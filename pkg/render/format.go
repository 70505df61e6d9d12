package render

import (
	"fmt"
	"strings"
)

// DefaultIndentWidth is the number of spaces emitted per nesting level.
const DefaultIndentWidth = 4

// LineFormat describes the text surrounding each key and value.
type LineFormat struct {
	// Depth is the nesting level of the table body; the line is indented by
	// Depth*IndentWidth spaces.
	Depth int
	// IndentWidth defaults to DefaultIndentWidth when zero.
	IndentWidth int
	// Open precedes the key.
	Open string
	// Assign sits between the key and the value.
	Assign string
	// Close follows the value.
	Close string
	// UnsetAs supplies the value for rows whose flag is unset when values are
	// taken from the row. Nil skips such rows.
	UnsetAs *bool
}

// LuaStringKey is the `["key"] = value,` format used for string-keyed Lua
// tables.
func LuaStringKey(depth int) LineFormat {
	return LineFormat{
		Depth:       depth,
		IndentWidth: DefaultIndentWidth,
		Open:        `["`,
		Assign:      `"] = `,
		Close:       `,`,
	}
}

// WithUnsetAs returns a copy of f that renders unset flags as value.
func (f LineFormat) WithUnsetAs(value bool) LineFormat {
	f.UnsetAs = &value
	return f
}

// Indent returns the leading whitespace for one line.
func (f LineFormat) Indent() string {
	width := f.IndentWidth
	if width <= 0 {
		width = DefaultIndentWidth
	}
	if f.Depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", f.Depth*width)
}

// EscapeKey escapes the characters a double-quoted Lua string cannot hold
// verbatim. Newlines and carriage returns use their short escapes; other
// control bytes become three-digit decimal escapes so a following digit is
// never absorbed. Identifiers seen in practice (letters, digits, colons,
// underscores) pass through untouched.
func EscapeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '"':
			b.WriteString(`\"`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\%03d`, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-luatable/pkg/table"
)

// ValueSource picks the boolean emitted for a row.
type ValueSource struct {
	constant *bool
}

// FromFlag takes the value from the row's flag column.
func FromFlag() ValueSource {
	return ValueSource{}
}

// Constant emits value for every row regardless of its flag. Used when
// presence in the source already implies the flag.
func Constant(value bool) ValueSource {
	return ValueSource{constant: &value}
}

// IsConstant reports whether the source ignores row flags.
func (v ValueSource) IsConstant() bool {
	return v.constant != nil
}

func (v ValueSource) resolve(row table.Row, unsetAs *bool) (bool, bool) {
	if v.constant != nil {
		return *v.constant, true
	}
	if value, ok := row.Flag.Bool(); ok {
		return value, true
	}
	if unsetAs != nil {
		return *unsetAs, true
	}
	return false, false
}

// Line renders one row. ok is false when the row has no value to emit: the
// value comes from an unset flag and the format defines no UnsetAs.
func Line(row table.Row, format LineFormat, value ValueSource) (string, bool) {
	resolved, ok := value.resolve(row, format.UnsetAs)
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString(format.Indent())
	b.WriteString(format.Open)
	b.WriteString(EscapeKey(row.Identifier))
	b.WriteString(format.Assign)
	b.WriteString(strconv.FormatBool(resolved))
	b.WriteString(format.Close)
	return b.String(), true
}

// Lines renders rows in order and reports how many were skipped for lack of a
// value.
func Lines(rows []table.Row, format LineFormat, value ValueSource) ([]string, int) {
	out := make([]string, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		line, ok := Line(row, format, value)
		if !ok {
			skipped++
			continue
		}
		out = append(out, line)
	}
	return out, skipped
}

package table

import "strings"

// Flag is a boolean cell that may also be unset. Spreadsheet exports leave
// blank or free-form cells behind; those parse to FlagUnset instead of
// failing so callers can tell "absent" apart from "false".
type Flag uint8

const (
	FlagUnset Flag = iota
	FlagFalse
	FlagTrue
)

// ParseFlag accepts case-insensitive "true"/"false" tokens. Anything else,
// including blanks, "yes" and "1", yields FlagUnset.
func ParseFlag(token string) Flag {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "true":
		return FlagTrue
	case "false":
		return FlagFalse
	default:
		return FlagUnset
	}
}

// FlagOf wraps a literal boolean.
func FlagOf(value bool) Flag {
	if value {
		return FlagTrue
	}
	return FlagFalse
}

// Bool returns the flag value and whether it was set.
func (f Flag) Bool() (bool, bool) {
	switch f {
	case FlagTrue:
		return true, true
	case FlagFalse:
		return false, true
	default:
		return false, false
	}
}

// IsSet reports whether the flag carries a value.
func (f Flag) IsSet() bool {
	return f == FlagTrue || f == FlagFalse
}

func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "unset"
	}
}

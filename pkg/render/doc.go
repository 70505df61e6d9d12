// Package render turns rows into lines of Lua table syntax.
//
// A LineFormat fixes the punctuation and indentation of every line, and a
// ValueSource decides which boolean literal each row receives. Rendering is
// a pure function of the row and the format, so identical input always
// produces byte-identical output.
package render

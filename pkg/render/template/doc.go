// Package template defines the engine contract the assembler substitutes
// placeholders through, plus a pongo2-backed adapter in the gotemplate
// subpackage.
package template

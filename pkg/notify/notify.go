// Package notify prints styled status lines for the command-line tools.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
)

// MessageType selects the symbol and colour of a message.
type MessageType int

const (
	// ErrorType is red with a ✗ symbol.
	ErrorType MessageType = iota
	// WarningType is yellow with a ⚠ symbol.
	WarningType
	// GenerateType is uncoloured with a ✚ symbol.
	GenerateType
	// SuccessType is green with a ✔ symbol.
	SuccessType
	// InfoType is blue with an ℹ symbol.
	InfoType
)

// Message is a single notification.
type Message struct {
	Type    MessageType
	Content string
	Args    []any
	// Writer defaults to os.Stdout.
	Writer io.Writer
}

// Errorf writes an error message to the writer.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a warning message to the writer.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Generatef writes a file generation message to the writer.
func Generatef(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: GenerateType, Content: format, Args: args, Writer: writer})
}

// Successf writes a success message to the writer.
func Successf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: writer})
}

// Infof writes an informational message to the writer.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// WriteMessage formats and writes msg. Continuation lines of multi-line
// content are indented to line up with the first.
func WriteMessage(msg Message) {
	if msg.Writer == nil {
		msg.Writer = os.Stdout
	}

	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	symbol, color := style(msg.Type)
	content = strings.ReplaceAll(content, "\n", "\n"+strings.Repeat(" ", len([]rune(symbol))))

	if _, err := color.Fprintf(msg.Writer, "%s%s\n", symbol, content); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

func style(msgType MessageType) (string, *fcolor.Color) {
	switch msgType {
	case ErrorType:
		return "✗ ", fcolor.New(fcolor.FgRed)
	case WarningType:
		return "⚠ ", fcolor.New(fcolor.FgYellow)
	case GenerateType:
		return "✚ ", fcolor.New(fcolor.Reset)
	case SuccessType:
		return "✔ ", fcolor.New(fcolor.FgGreen)
	case InfoType:
		return "ℹ ", fcolor.New(fcolor.FgBlue)
	default:
		return "", fcolor.New(fcolor.Reset)
	}
}

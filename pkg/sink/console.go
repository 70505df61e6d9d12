package sink

import (
	"context"
	"io"
	"os"

	fcolor "github.com/fatih/color"
)

// Console prints the text, optionally highlighted for review.
type Console struct {
	Writer    io.Writer
	Highlight bool
}

// NewConsole returns a console sink writing to w, or stdout when w is nil.
func NewConsole(w io.Writer, highlight bool) *Console {
	return &Console{Writer: w, Highlight: highlight}
}

func (c *Console) Name() string {
	return "console"
}

func (c *Console) Write(_ context.Context, text string) error {
	w := c.Writer
	if w == nil {
		w = os.Stdout
	}
	if c.Highlight {
		_, err := fcolor.New(fcolor.FgYellow).Fprintln(w, text)
		return err
	}
	_, err := io.WriteString(w, text+"\n")
	return err
}

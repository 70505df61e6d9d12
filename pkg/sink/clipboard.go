package sink

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

// Clipboard copies the text to the system clipboard.
type Clipboard struct {
	write  func(string) error
	system bool
}

// ClipboardOption configures a Clipboard sink.
type ClipboardOption func(*Clipboard)

// WithClipboardWriter replaces the system clipboard, mainly for tests and
// headless environments.
func WithClipboardWriter(fn func(string) error) ClipboardOption {
	return func(c *Clipboard) {
		c.write = fn
		c.system = false
	}
}

// NewClipboard returns a clipboard sink.
func NewClipboard(options ...ClipboardOption) *Clipboard {
	c := &Clipboard{write: clipboard.WriteAll, system: true}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Clipboard) Name() string {
	return "clipboard"
}

func (c *Clipboard) Write(_ context.Context, text string) error {
	if c.write == nil {
		return errors.New("clipboard writer is not configured")
	}
	if c.system && clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return c.write(text)
}

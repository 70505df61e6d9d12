// Package sink delivers generated text to its destinations: the console, the
// system clipboard and files on disk.
package sink

import (
	"context"
	"fmt"
)

// Sink accepts the final generated text.
type Sink interface {
	Name() string
	Write(ctx context.Context, text string) error
}

// SinkError reports a destination that could not accept the text. Sinks
// delivered before the failing one keep what they received.
type SinkError struct {
	Sink string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %s: %v", e.Sink, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// Deliver writes text to each sink in order and returns the names of the
// sinks that accepted it. The first failure stops delivery.
func Deliver(ctx context.Context, text string, sinks ...Sink) ([]string, error) {
	delivered := make([]string, 0, len(sinks))
	for _, s := range sinks {
		if s == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return delivered, &SinkError{Sink: s.Name(), Err: err}
		}
		if err := s.Write(ctx, text); err != nil {
			return delivered, &SinkError{Sink: s.Name(), Err: err}
		}
		delivered = append(delivered, s.Name())
	}
	return delivered, nil
}

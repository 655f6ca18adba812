package suite

import (
	"context"

	"benchsuite/internal/core"
)

// Completion is the single result of an asynchronous run: an Outcome or an error.
type Completion struct {
	Outcome *core.Outcome
	Err     error
}

// RunAsync starts Run on a new goroutine. The returned channel receives exactly one
// Completion and is then closed. Progress is delivered from that goroutine.
func (e *Executor) RunAsync(ctx context.Context, g core.Group, onProgress core.ProgressFunc) <-chan Completion {
	ch := make(chan Completion, 1)
	go func() {
		defer close(ch)
		outcome, err := e.Run(ctx, g, onProgress)
		ch <- Completion{Outcome: outcome, Err: err}
	}()
	return ch
}

// Wait blocks until the completion arrives or ctx is done.
// The run itself keeps going if ctx ends first.
func Wait(ctx context.Context, ch <-chan Completion) (*core.Outcome, error) {
	select {
	case c := <-ch:
		return c.Outcome, c.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

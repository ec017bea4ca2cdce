package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/quartz"
)

// Deadline wraps an Oracle with a per-call time limit. The core protocol
// defines no timeout semantics, so the limit is applied at this adapter
// boundary instead.
type Deadline struct {
	inner   Oracle
	clock   quartz.Clock
	timeout time.Duration
}

// WithDeadline wraps inner so every Recommend call fails after timeout.
// A nil clock uses the real clock.
func WithDeadline(inner Oracle, clock quartz.Clock, timeout time.Duration) *Deadline {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Deadline{inner: inner, clock: clock, timeout: timeout}
}

type recommendResult struct {
	text string
	err  error
}

// Recommend invokes the wrapped oracle, abandoning the call once the
// timeout fires. The underlying call still observes ctx cancellation.
func (d *Deadline) Recommend(ctx context.Context, task string) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan recommendResult, 1)
	go func() {
		text, err := d.inner.Recommend(ctx, task)
		results <- recommendResult{text: text, err: err}
	}()

	timedOut := make(chan struct{})
	timer := d.clock.AfterFunc(d.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case res := <-results:
		return res.text, res.err
	case <-timedOut:
		cancel()
		return "", fmt.Errorf("oracle call exceeded %s deadline", d.timeout)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

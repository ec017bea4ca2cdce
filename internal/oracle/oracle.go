// Package oracle provides access to the generative advisor model.
//
// The model is a black box: given a textual task it returns free-form text
// that is expected, but not guaranteed, to contain a JSON recommendation.
// Two invocations with the same task generally produce different text, so
// callers that need a trustworthy value must cross-check independent
// invocations (see internal/consensus).
package oracle

import (
	"context"
	"fmt"
	"sync"
)

// Oracle produces one raw model response for a task.
type Oracle interface {
	Recommend(ctx context.Context, task string) (string, error)
}

// Scripted replays a fixed queue of responses. Each call consumes the next
// entry; an exhausted script is an error rather than a repeat, so tests
// notice unexpected extra invocations. Safe for concurrent use, since
// validator runs may invoke the oracle in parallel.
type Scripted struct {
	mu        sync.Mutex
	responses []string
	next      int
}

// NewScripted creates a scripted oracle from the given responses in order.
func NewScripted(responses ...string) *Scripted {
	return &Scripted{responses: responses}
}

// Recommend returns the next scripted response.
func (s *Scripted) Recommend(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.responses) {
		return "", fmt.Errorf("scripted oracle exhausted after %d responses", len(s.responses))
	}
	resp := s.responses[s.next]
	s.next++
	return resp, nil
}

// Calls reports how many responses have been consumed.
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Func adapts a plain function to the Oracle interface.
type Func func(ctx context.Context, task string) (string, error)

// Recommend implements Oracle.
func (f Func) Recommend(ctx context.Context, task string) (string, error) {
	return f(ctx, task)
}

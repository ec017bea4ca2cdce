// Package consensus agrees on a single recommendation produced by a
// non-reproducible generative oracle.
//
// Two invocations of the oracle with the same task yield different text,
// so the result of one run cannot be re-derived and checked exactly.
// Instead the Coordinator executes one leader run and one or more
// independent validator runs, then applies a tolerance-based equivalence
// predicate between the leader's result and each validator's own result.
// Only a leader value every validator agrees with is accepted.
package consensus

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-advisor/internal/oracle"
)

// ErrNoConsensus indicates the oracle runs failed to agree, or produced
// output that could not be parsed. Callers may retry the whole request;
// nothing is mutated on this path.
var ErrNoConsensus = errors.New("no consensus on oracle recommendation")

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithEvaluator replaces the equivalence policy.
func WithEvaluator(e Evaluator) CoordinatorOption {
	return func(c *Coordinator) { c.evaluator = e }
}

// WithValidators sets the number of validator runs. Values below 1 are
// clamped to 1: an unvalidated leader value is never accepted.
func WithValidators(n int) CoordinatorOption {
	return func(c *Coordinator) {
		if n < 1 {
			n = 1
		}
		c.validators = n
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) CoordinatorOption {
	return func(c *Coordinator) { c.logger = logger }
}

// Coordinator runs the leader/validator protocol against an oracle.
type Coordinator struct {
	oracle     oracle.Oracle
	evaluator  Evaluator
	validators int
	logger     zerolog.Logger
}

// NewCoordinator builds a Coordinator with one validator and the
// reference tolerance policy unless overridden.
func NewCoordinator(o oracle.Oracle, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		oracle:     o,
		evaluator:  ToleranceEvaluator{},
		validators: 1,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Recommend executes the leader run, fans out the validator runs, and
// checks each validator's result against the leader's. Every run builds
// the identical task from the snapshot; no run observes another's output
// before producing its own, which keeps the samples independent. All runs
// complete before any comparison happens.
//
// With more than one validator the quorum rule is unanimity: a single
// disagreeing validator rejects the leader value.
//
// An accepted all-in is normalized to the snapshot's stack, since all-in
// is defined relative to live state rather than the oracle's guess.
func (c *Coordinator) Recommend(ctx context.Context, snap Snapshot) (Recommendation, error) {
	task := Task(snap)

	leaderRaw, err := c.oracle.Recommend(ctx, task)
	if err != nil {
		// A failed run rejects the request rather than crashing it or
		// falling back to an unvalidated leader value.
		return Recommendation{}, fmt.Errorf("%w: leader run: %v", ErrNoConsensus, err)
	}

	// Validator runs fan out concurrently. Each receives only the task,
	// never the leader's output, so the samples stay independent.
	validatorRaws := make([]string, c.validators)
	g, gctx := errgroup.WithContext(ctx)
	for i := range validatorRaws {
		g.Go(func() error {
			text, err := c.oracle.Recommend(gctx, task)
			if err != nil {
				return fmt.Errorf("validator run %d: %w", i, err)
			}
			validatorRaws[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Recommendation{}, fmt.Errorf("%w: %v", ErrNoConsensus, err)
	}

	leader, err := parseRecommendation(leaderRaw)
	if err != nil {
		return Recommendation{}, fmt.Errorf("%w: leader: %v", ErrNoConsensus, err)
	}

	for i, raw := range validatorRaws {
		validator, err := parseRecommendation(raw)
		if err != nil {
			// Malformed validator output is automatic disagreement.
			return Recommendation{}, fmt.Errorf("%w: validator %d: %v", ErrNoConsensus, i, err)
		}
		if !c.evaluator.Equivalent(leader, validator, snap.BigBlind) {
			c.logger.Debug().
				Str("leader_action", leader.Action).
				Int("leader_amount", leader.Amount).
				Str("validator_action", validator.Action).
				Int("validator_amount", validator.Amount).
				Int("validator", i).
				Msg("validator disagrees with leader")
			return Recommendation{}, fmt.Errorf("%w: validator %d proposed %s:%d against leader %s:%d",
				ErrNoConsensus, i, validator.Action, validator.Amount, leader.Action, leader.Amount)
		}
	}

	if leader.Action == ActionAllIn {
		leader.Amount = snap.Stack
	}

	c.logger.Debug().
		Str("action", leader.Action).
		Int("amount", leader.Amount).
		Int("validators", c.validators).
		Msg("recommendation accepted")
	return leader, nil
}

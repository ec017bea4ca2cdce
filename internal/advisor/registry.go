// Package advisor implements the hand registry and the per-hand state
// machine for a single-player Texas Hold'em advisory session.
//
// A hand is created with its immutable preflop facts, advanced through
// flop, turn and river as community cards land, and asked for one agreed
// action recommendation per betting round. Recommendations come from an
// injected Recommender (see internal/consensus); the registry validates
// them against the betting rules before committing any state.
package advisor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lox/holdem-advisor/internal/consensus"
)

// Recommender yields one agreed recommendation for a hand snapshot.
type Recommender interface {
	Recommend(ctx context.Context, snap consensus.Snapshot) (consensus.Recommendation, error)
}

// CreateParams holds the immutable facts a hand starts with.
type CreateParams struct {
	PlayerAddress string `json:"playerAddress"`
	HoleCards     string `json:"holeCards"`
	Position      int    `json:"position"`
	NumPlayers    int    `json:"numPlayers"`
	PotSize       int    `json:"potSize"`
	SmallBlind    int    `json:"smallBlind"`
	BigBlind      int    `json:"bigBlind"`
	Stack         int    `json:"stack"`
	CurrentBet    int    `json:"currentBet"`
}

// Registry maps hand identifiers to hands and issues new identifiers.
type Registry struct {
	logger      zerolog.Logger
	recommender Recommender

	mu      sync.RWMutex
	hands   map[string]*Hand
	counter atomic.Uint64
}

// NewRegistry constructs an empty registry backed by the given recommender.
func NewRegistry(recommender Recommender, logger zerolog.Logger) *Registry {
	return &Registry{
		logger:      logger.With().Str("component", "registry").Logger(),
		recommender: recommender,
		hands:       make(map[string]*Hand),
	}
}

// CreateHand validates params, allocates a fresh identifier and stores a
// new preflop hand. Identifiers come from a monotonically increasing
// counter and are never reused.
func (r *Registry) CreateHand(params CreateParams) (CreateResult, error) {
	if params.Position < 0 || params.Position > 9 {
		return CreateResult{}, fmt.Errorf("%w: position must be between 0 and 9", ErrValidation)
	}
	if params.NumPlayers < 2 {
		return CreateResult{}, fmt.Errorf("%w: number of players must be at least 2", ErrValidation)
	}
	if params.PotSize < 0 {
		return CreateResult{}, fmt.Errorf("%w: pot size cannot be negative", ErrValidation)
	}
	if params.SmallBlind <= 0 || params.BigBlind <= 0 {
		return CreateResult{}, fmt.Errorf("%w: blinds must be positive", ErrValidation)
	}
	if params.Stack <= 0 {
		return CreateResult{}, fmt.Errorf("%w: player stack must be positive", ErrValidation)
	}
	if params.CurrentBet < 0 {
		return CreateResult{}, fmt.Errorf("%w: current bet cannot be negative", ErrValidation)
	}

	id := fmt.Sprintf("hand_%d", r.counter.Add(1)-1)
	hand := &Hand{
		id:            id,
		playerAddress: params.PlayerAddress,
		holeCards:     params.HoleCards,
		position:      params.Position,
		numPlayers:    params.NumPlayers,
		potSize:       params.PotSize,
		smallBlind:    params.SmallBlind,
		bigBlind:      params.BigBlind,
		stack:         params.Stack,
		currentBet:    params.CurrentBet,
		stage:         StagePreflop,
		active:        true,
	}

	r.mu.Lock()
	r.hands[id] = hand
	r.mu.Unlock()

	r.logger.Info().
		Str("hand", id).
		Str("player", params.PlayerAddress).
		Int("stack", params.Stack).
		Msg("hand created")

	return CreateResult{
		ID:            id,
		PlayerAddress: params.PlayerAddress,
		Stage:         StagePreflop.String(),
		Active:        true,
	}, nil
}

func (r *Registry) lookup(id string) (*Hand, error) {
	r.mu.RLock()
	hand, ok := r.hands[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return hand, nil
}

// RequestAction obtains an agreed recommendation for the hand's current
// snapshot, validates it and applies it. The hand's lock is held for the
// whole operation, including the oracle runs, so no two mutations on one
// hand interleave. Any failure leaves the hand unchanged; callers may
// simply re-invoke to re-run the agreement protocol.
func (r *Registry) RequestAction(ctx context.Context, id string) (ActionResult, error) {
	hand, err := r.lookup(id)
	if err != nil {
		return ActionResult{}, err
	}

	hand.mu.Lock()
	defer hand.mu.Unlock()

	if err := hand.ensureActive(); err != nil {
		return ActionResult{}, err
	}

	snap := hand.snapshot()
	rec, err := r.recommender.Recommend(ctx, snap)
	if err != nil {
		return ActionResult{}, err
	}

	result, err := hand.applyAction(rec)
	if err != nil {
		return ActionResult{}, err
	}

	r.logger.Info().
		Str("hand", id).
		Str("action", result.Action).
		Int("amount", result.Amount).
		Int("deducted", result.AmountDeducted).
		Str("stage", result.Stage).
		Msg("action applied")
	return result, nil
}

// AdvanceStage moves a hand to the stage identified by the new board
// cards, replacing pot, bet and optionally stack.
func (r *Registry) AdvanceStage(id, boardCards string, potSize, currentBet int, stack *int) (StageResult, error) {
	hand, err := r.lookup(id)
	if err != nil {
		return StageResult{}, err
	}

	hand.mu.Lock()
	defer hand.mu.Unlock()

	if err := hand.ensureActive(); err != nil {
		return StageResult{}, err
	}

	result, err := hand.advanceStage(boardCards, potSize, currentBet, stack)
	if err != nil {
		return StageResult{}, err
	}

	r.logger.Info().
		Str("hand", id).
		Str("stage", result.Stage).
		Int("pot", result.PotSize).
		Int("bet", result.CurrentBet).
		Msg("stage advanced")
	return result, nil
}

// View returns the full public snapshot of a hand. Terminal hands remain
// queryable; there is no delete operation.
func (r *Registry) View(id string) (View, error) {
	hand, err := r.lookup(id)
	if err != nil {
		return View{}, err
	}

	hand.mu.Lock()
	defer hand.mu.Unlock()
	return hand.view(), nil
}

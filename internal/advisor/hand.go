package advisor

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lox/holdem-advisor/internal/consensus"
)

// Stage represents one phase of a hand's betting rounds. Progression is
// strictly monotone; a hand never revisits or skips backward.
type Stage int

const (
	StagePreflop Stage = iota
	StageFlop
	StageTurn
	StageRiver
	StageFinished
)

func (s Stage) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "finished"}[s]
}

// Hand owns the state of one poker hand in progress. All mutation goes
// through the registry, which holds the hand's lock for the duration of
// each operation.
type Hand struct {
	mu sync.Mutex

	id            string
	playerAddress string
	holeCards     string
	boardCards    string
	position      int
	numPlayers    int
	potSize       int
	smallBlind    int
	bigBlind      int
	stack         int
	currentBet    int
	stage         Stage
	lastAction    string
	active        bool
}

// View is the full public snapshot of a hand.
type View struct {
	ID            string `json:"id"`
	PlayerAddress string `json:"playerAddress"`
	HoleCards     string `json:"holeCards"`
	BoardCards    string `json:"boardCards"`
	Position      int    `json:"position"`
	NumPlayers    int    `json:"numPlayers"`
	PotSize       int    `json:"potSize"`
	SmallBlind    int    `json:"smallBlind"`
	BigBlind      int    `json:"bigBlind"`
	Stack         int    `json:"stack"`
	CurrentBet    int    `json:"currentBet"`
	Stage         string `json:"stage"`
	LastAction    string `json:"lastAction"`
	Active        bool   `json:"active"`
}

// CreateResult is returned when a hand is created.
type CreateResult struct {
	ID            string `json:"id"`
	PlayerAddress string `json:"playerAddress"`
	Stage         string `json:"stage"`
	Active        bool   `json:"active"`
}

// ActionResult is returned when a recommended action is applied.
type ActionResult struct {
	ID             string `json:"id"`
	Action         string `json:"action"`
	Amount         int    `json:"amount"`
	Stage          string `json:"stage"`
	Active         bool   `json:"active"`
	Stack          int    `json:"stack"`
	AmountDeducted int    `json:"amountDeducted"`
}

// StageResult is returned when a hand advances to a new stage.
type StageResult struct {
	ID         string `json:"id"`
	BoardCards string `json:"boardCards"`
	PotSize    int    `json:"potSize"`
	CurrentBet int    `json:"currentBet"`
	Stage      string `json:"stage"`
	Active     bool   `json:"active"`
	Stack      int    `json:"stack"`
}

// ensureActive rejects operations on a hand that can no longer mutate.
func (h *Hand) ensureActive() error {
	if !h.active {
		return fmt.Errorf("%w: hand %s is not active", ErrInvalidState, h.id)
	}
	if h.stage == StageFinished {
		return fmt.Errorf("%w: hand %s is finished", ErrInvalidState, h.id)
	}
	return nil
}

// snapshot copies the fields the oracle is allowed to see. The copy is
// taken before any oracle call; the oracle never observes live state.
func (h *Hand) snapshot() consensus.Snapshot {
	return consensus.Snapshot{
		HoleCards:  h.holeCards,
		BoardCards: h.boardCards,
		Stage:      h.stage.String(),
		Position:   h.position,
		NumPlayers: h.numPlayers,
		PotSize:    h.potSize,
		SmallBlind: h.smallBlind,
		BigBlind:   h.bigBlind,
		Stack:      h.stack,
		CurrentBet: h.currentBet,
	}
}

func (h *Hand) view() View {
	return View{
		ID:            h.id,
		PlayerAddress: h.playerAddress,
		HoleCards:     h.holeCards,
		BoardCards:    h.boardCards,
		Position:      h.position,
		NumPlayers:    h.numPlayers,
		PotSize:       h.potSize,
		SmallBlind:    h.smallBlind,
		BigBlind:      h.bigBlind,
		Stack:         h.stack,
		CurrentBet:    h.currentBet,
		Stage:         h.stage.String(),
		LastAction:    h.lastAction,
		Active:        h.active,
	}
}

// applyAction validates an agreed recommendation against the betting rules
// and commits it. Every check runs before the first write, so a failure on
// any path leaves the hand untouched.
func (h *Hand) applyAction(rec consensus.Recommendation) (ActionResult, error) {
	if err := ValidateAction(rec.Action, rec.Amount, h.currentBet, h.stack); err != nil {
		return ActionResult{}, err
	}

	action := strings.ToLower(rec.Action)
	var deduction int
	switch action {
	case consensus.ActionCall:
		deduction = h.currentBet
	case consensus.ActionRaise:
		deduction = rec.Amount
	case consensus.ActionAllIn:
		deduction = h.stack
	}
	// fold and check deduct nothing.

	if h.stack-deduction < 0 {
		return ActionResult{}, fmt.Errorf("%w: cannot deduct %d from stack %d",
			ErrInsufficientFunds, deduction, h.stack)
	}

	h.stack -= deduction
	h.lastAction = fmt.Sprintf("%s:%d", action, rec.Amount)
	if action == consensus.ActionFold {
		h.active = false
		h.stage = StageFinished
	}

	return ActionResult{
		ID:             h.id,
		Action:         action,
		Amount:         rec.Amount,
		Stage:          h.stage.String(),
		Active:         h.active,
		Stack:          h.stack,
		AmountDeducted: deduction,
	}, nil
}

// advanceStage moves the hand to the stage identified by the new board.
// stack is optional; nil keeps the current stack.
func (h *Hand) advanceStage(boardCards string, potSize, currentBet int, stack *int) (StageResult, error) {
	count := CountCards(boardCards)
	expected, ok := stageForCount(count)
	if !ok {
		return StageResult{}, fmt.Errorf("%w: invalid board cards count: %d, must be 0, 3, 4, or 5 cards",
			ErrValidation, count)
	}
	if expected <= h.stage {
		return StageResult{}, fmt.Errorf("%w: cannot go back to %s, current stage is %s",
			ErrValidation, expected, h.stage)
	}
	if potSize < 0 {
		return StageResult{}, fmt.Errorf("%w: pot size cannot be negative", ErrValidation)
	}
	if currentBet < 0 {
		return StageResult{}, fmt.Errorf("%w: current bet cannot be negative", ErrValidation)
	}
	if stack != nil && *stack < 0 {
		return StageResult{}, fmt.Errorf("%w: player stack cannot be negative", ErrValidation)
	}

	h.boardCards = boardCards
	h.potSize = potSize
	h.currentBet = currentBet
	h.stage = expected
	h.lastAction = ""
	if stack != nil {
		h.stack = *stack
	}

	return StageResult{
		ID:         h.id,
		BoardCards: h.boardCards,
		PotSize:    h.potSize,
		CurrentBet: h.currentBet,
		Stage:      h.stage.String(),
		Active:     h.active,
		Stack:      h.stack,
	}, nil
}

package consensus

// Canonical action strings as emitted by the oracle and recorded on hands.
const (
	ActionFold  = "fold"
	ActionCheck = "check"
	ActionCall  = "call"
	ActionRaise = "raise"
	ActionAllIn = "all-in"
)

// Recommendation is one structured oracle decision. Amount is only a free
// choice for raises; for the other actions it is a derived constant.
type Recommendation struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

// Snapshot is an immutable copy of the hand data the oracle is allowed to
// see. It must be captured before any oracle call: the oracle runs in an
// isolated execution context that cannot observe live mutable state, and
// leader and validator runs must see identical inputs.
type Snapshot struct {
	HoleCards  string
	BoardCards string
	Stage      string
	Position   int
	NumPlayers int
	PotSize    int
	SmallBlind int
	BigBlind   int
	Stack      int
	CurrentBet int
}

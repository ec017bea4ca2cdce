package consensus

import "strings"

// Evaluator decides whether two independently produced recommendations
// represent the same decision. Implementations are injected into the
// Coordinator so stricter or laxer policies can be swapped in.
type Evaluator interface {
	Equivalent(leader, validator Recommendation, bigBlind int) bool
}

const (
	// raisePercentTolerance accepts raise amounts within this relative
	// drift of each other.
	raisePercentTolerance = 20.0

	// raiseBigBlindMultiple accepts raise amounts within this many big
	// blinds of each other, regardless of relative drift.
	raiseBigBlindMultiple = 2
)

// ToleranceEvaluator is the reference equivalence policy.
//
// Actions must match (case-insensitive). Categorical actions (fold, check,
// call, all-in) must agree on the exact amount. Raise amounts are allowed
// to drift: equivalent when within 20% of each other or within two big
// blinds of each other. Either criterion alone accepts, so at large
// blind sizes the absolute criterion dominates.
type ToleranceEvaluator struct{}

// Equivalent implements Evaluator.
func (ToleranceEvaluator) Equivalent(leader, validator Recommendation, bigBlind int) bool {
	action := strings.ToLower(leader.Action)
	if action != strings.ToLower(validator.Action) {
		return false
	}

	switch action {
	case ActionFold, ActionCheck, ActionCall, ActionAllIn:
		return leader.Amount == validator.Amount

	case ActionRaise:
		diff := leader.Amount - validator.Amount
		if diff < 0 {
			diff = -diff
		}
		if diff == 0 {
			return true
		}
		percentDiff := float64(diff) / float64(max(leader.Amount, validator.Amount, 1)) * 100
		toleranceAbs := raiseBigBlindMultiple * bigBlind
		return percentDiff <= raisePercentTolerance || diff <= toleranceAbs

	default:
		// Unknown action strings never agree.
		return false
	}
}

package advisor

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-advisor/internal/consensus"
)

// ValidateAction checks a proposed action against the betting rules. It is
// a pure function of its arguments and runs after consensus, so an agreed
// recommendation can still be rejected here.
func ValidateAction(action string, amount, currentBet, stack int) error {
	switch strings.ToLower(action) {
	case consensus.ActionFold:
		return nil

	case consensus.ActionCheck:
		if currentBet != 0 {
			return fmt.Errorf("%w: cannot check when current bet is %d, must call or fold",
				ErrIllegalAction, currentBet)
		}
		return nil

	case consensus.ActionCall:
		if stack < currentBet {
			return fmt.Errorf("%w: insufficient stack (%d) to call bet (%d)",
				ErrIllegalAction, stack, currentBet)
		}
		return nil

	case consensus.ActionRaise:
		if amount <= currentBet {
			return fmt.Errorf("%w: raise amount (%d) must be greater than current bet (%d)",
				ErrIllegalAction, amount, currentBet)
		}
		if stack < amount {
			return fmt.Errorf("%w: insufficient stack (%d) to raise to %d",
				ErrIllegalAction, stack, amount)
		}
		return nil

	case consensus.ActionAllIn:
		if stack <= 0 {
			return fmt.Errorf("%w: cannot go all-in with zero stack", ErrIllegalAction)
		}
		return nil

	default:
		return fmt.Errorf("%w: invalid action %q, must be fold, check, call, raise, or all-in",
			ErrIllegalAction, action)
	}
}

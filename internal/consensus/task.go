package consensus

import (
	"fmt"
	"strings"
)

// positionNames maps table positions to their conventional names. Positions
// beyond the table fall back to a numeric label.
var positionNames = [8]string{
	"Under the Gun",
	"Under the Gun +1",
	"Middle Position",
	"Middle Position +1",
	"Cutoff",
	"Button",
	"Small Blind",
	"Big Blind",
}

// PositionName returns the conventional name for a table position.
func PositionName(position int) string {
	if position >= 0 && position < len(positionNames) {
		return positionNames[position]
	}
	return fmt.Sprintf("Position %d", position)
}

// Task renders the advisor task for a snapshot. Leader and validator runs
// must build the task from the same snapshot so their inputs are
// byte-identical; only the model's sampling differs between runs.
func Task(snap Snapshot) string {
	boardDisplay := snap.BoardCards
	if boardDisplay == "" {
		boardDisplay = "None (Pre-flop)"
	}

	return fmt.Sprintf(`You are an expert Texas Hold'em poker advisor. Analyze the current game situation and recommend the best action.

GAME INFORMATION:
- Player's Hole Cards: %s
- Community Cards: %s
- Game Stage: %s
- Player Position: %s (Position %d)
- Number of Players: %d
- Pot Size: %d
- Small Blind: %d
- Big Blind: %d
- Player Stack: %d
- Current Bet to Call: %d

CARD NOTATION:
- Suit symbols: ♠ (spades), ♥ (hearts), ♦ (diamonds), ♣ (clubs)
- Ranks: A (Ace), K (King), Q (Queen), J (Jack), 10, 9, 8, 7, 6, 5, 4, 3, 2
- Example: "♠A♥K" means Ace of spades and King of hearts

AVAILABLE ACTIONS:
- fold: Give up the hand (always valid)
- check: Pass when no bet to call (only valid if current_bet == 0)
- call: Match the current bet (valid if player_stack >= current_bet)
- raise: Increase the bet (valid if amount > current_bet and player_stack >= amount)
- all-in: Bet entire stack (valid if player_stack > 0)

STRATEGY CONSIDERATIONS:
- Consider hand strength, position, pot odds, stack depth, and opponent behavior
- Be aggressive with strong hands, cautious with weak hands
- Consider implied odds and fold equity
- Adjust strategy based on position (tight in early position, loose in late position)

Respond in JSON format:
{
    "action": "fold|check|call|raise|all-in",
    "amount": 0
}

IMPORTANT:
- Your response must be ONLY valid JSON, nothing else.
- For raise actions, amount must be greater than current_bet.
- For all-in, set action to "all-in" and amount to 0 (or player_stack if you want to specify).
- Be strategic and consider all factors.`,
		snap.HoleCards,
		boardDisplay,
		strings.ToUpper(snap.Stage),
		PositionName(snap.Position),
		snap.Position,
		snap.NumPlayers,
		snap.PotSize,
		snap.SmallBlind,
		snap.BigBlind,
		snap.Stack,
		snap.CurrentBet,
	)
}

package consensus

import (
	"strings"
	"testing"
)

func TestPositionName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		position int
		want     string
	}{
		{0, "Under the Gun"},
		{4, "Cutoff"},
		{5, "Button"},
		{7, "Big Blind"},
		{8, "Position 8"},
		{9, "Position 9"},
	}

	for _, tt := range tests {
		if got := PositionName(tt.position); got != tt.want {
			t.Errorf("PositionName(%d) = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestTaskContents(t *testing.T) {
	t.Parallel()
	snap := Snapshot{
		HoleCards:  "♠A♥K",
		BoardCards: "♠2♥7♦J",
		Stage:      "flop",
		Position:   5,
		NumPlayers: 6,
		PotSize:    120,
		SmallBlind: 5,
		BigBlind:   10,
		Stack:      880,
		CurrentBet: 40,
	}
	task := Task(snap)

	for _, want := range []string{
		"♠A♥K",
		"♠2♥7♦J",
		"Game Stage: FLOP",
		"Button (Position 5)",
		"Pot Size: 120",
		"Current Bet to Call: 40",
		"Respond in JSON format",
	} {
		if !strings.Contains(task, want) {
			t.Errorf("task missing %q", want)
		}
	}
}

func TestTaskEmptyBoard(t *testing.T) {
	t.Parallel()
	task := Task(Snapshot{HoleCards: "♠A♥K", Stage: "preflop"})
	if !strings.Contains(task, "None (Pre-flop)") {
		t.Error("empty board should render as None (Pre-flop)")
	}
}

func TestTaskDeterministic(t *testing.T) {
	t.Parallel()
	snap := Snapshot{HoleCards: "♠A♥K", Stage: "preflop", Position: 3, BigBlind: 10, Stack: 500}
	if Task(snap) != Task(snap) {
		t.Error("identical snapshots must build identical tasks")
	}
}

package advisor

import "testing"

func TestCountCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  int
	}{
		{"empty", "", 0},
		{"hole cards", "♠A♥K", 2},
		{"flop", "♠A♥K♦Q", 3},
		{"turn", "♠A♥K♦Q♣J", 4},
		{"river", "♠A♥K♦Q♣J♠10", 5},
		{"ten rank is one card", "♦10", 1},
		{"no glyphs", "AKQ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CountCards(tt.cards); got != tt.want {
				t.Errorf("CountCards(%q) = %d, want %d", tt.cards, got, tt.want)
			}
		})
	}
}

func TestStageForCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		count int
		want  Stage
		ok    bool
	}{
		{0, StagePreflop, true},
		{3, StageFlop, true},
		{4, StageTurn, true},
		{5, StageRiver, true},
		{1, StagePreflop, false},
		{2, StagePreflop, false},
		{6, StagePreflop, false},
	}

	for _, tt := range tests {
		got, ok := stageForCount(tt.count)
		if ok != tt.ok {
			t.Errorf("stageForCount(%d) ok = %v, want %v", tt.count, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Errorf("stageForCount(%d) = %s, want %s", tt.count, got, tt.want)
		}
	}
}

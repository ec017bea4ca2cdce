package consensus

import "testing"

func TestToleranceEvaluatorActions(t *testing.T) {
	t.Parallel()
	e := ToleranceEvaluator{}

	tests := []struct {
		name      string
		leader    Recommendation
		validator Recommendation
		bigBlind  int
		want      bool
	}{
		{"different actions", Recommendation{"fold", 0}, Recommendation{"call", 0}, 10, false},
		{"case insensitive match", Recommendation{"FOLD", 0}, Recommendation{"fold", 0}, 10, true},
		{"fold equal amounts", Recommendation{"fold", 0}, Recommendation{"fold", 0}, 10, true},
		{"check equal amounts", Recommendation{"check", 0}, Recommendation{"check", 0}, 10, true},
		{"call amounts must match exactly", Recommendation{"call", 50}, Recommendation{"call", 40}, 10, false},
		{"all-in equal amounts", Recommendation{"all-in", 500}, Recommendation{"all-in", 500}, 10, true},
		{"all-in different amounts", Recommendation{"all-in", 500}, Recommendation{"all-in", 400}, 10, false},
		{"unknown action never agrees", Recommendation{"dance", 0}, Recommendation{"dance", 0}, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := e.Equivalent(tt.leader, tt.validator, tt.bigBlind); got != tt.want {
				t.Errorf("Equivalent(%+v, %+v, bb=%d) = %v, want %v",
					tt.leader, tt.validator, tt.bigBlind, got, tt.want)
			}
		})
	}
}

func TestToleranceEvaluatorRaises(t *testing.T) {
	t.Parallel()
	e := ToleranceEvaluator{}

	tests := []struct {
		name      string
		leader    int
		validator int
		bigBlind  int
		want      bool
	}{
		{"exact match", 100, 100, 10, true},
		// 15/115 = 13% <= 20%
		{"within percent tolerance", 100, 115, 10, true},
		// 200/300 = 66% > 20%, but 200 <= 2*200
		{"within absolute tolerance at big blinds", 100, 300, 200, true},
		// 200/300 = 66% > 20% and 200 > 2*10
		{"outside both tolerances", 100, 300, 10, false},
		// 25/125 = 20% boundary holds
		{"percent boundary inclusive", 100, 125, 1, true},
		// diff 20 == 2*10 boundary holds
		{"absolute boundary inclusive", 100, 120, 10, true},
		{"symmetric when validator lower", 115, 100, 10, true},
		{"zero amounts", 0, 0, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			leader := Recommendation{Action: ActionRaise, Amount: tt.leader}
			validator := Recommendation{Action: ActionRaise, Amount: tt.validator}
			if got := e.Equivalent(leader, validator, tt.bigBlind); got != tt.want {
				t.Errorf("Equivalent(raise %d, raise %d, bb=%d) = %v, want %v",
					tt.leader, tt.validator, tt.bigBlind, got, tt.want)
			}
		})
	}
}

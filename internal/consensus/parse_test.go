package consensus

import "testing"

func TestParseRecommendation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		want    Recommendation
		wantErr bool
	}{
		{"plain json", `{"action": "raise", "amount": 100}`, Recommendation{"raise", 100}, false},
		{"missing amount defaults to zero", `{"action": "fold"}`, Recommendation{"fold", 0}, false},
		{"action is lowercased", `{"action": "RAISE", "amount": 50}`, Recommendation{"raise", 50}, false},
		{"surrounding whitespace", "  {\"action\": \"check\", \"amount\": 0}\n", Recommendation{"check", 0}, false},
		{"markdown fence", "```json\n{\"action\": \"call\", \"amount\": 0}\n```", Recommendation{"call", 0}, false},
		{"bare fence", "```\n{\"action\": \"call\", \"amount\": 0}\n```", Recommendation{"call", 0}, false},
		{"not json", "I recommend folding here.", Recommendation{}, true},
		{"missing action", `{"amount": 100}`, Recommendation{}, true},
		{"empty action", `{"action": "", "amount": 100}`, Recommendation{}, true},
		{"wrong amount type", `{"action": "raise", "amount": "lots"}`, Recommendation{}, true},
		{"empty input", "", Recommendation{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseRecommendation(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRecommendation(%q) = %+v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRecommendation(%q) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseRecommendation(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

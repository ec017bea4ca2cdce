package consensus

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseRecommendation extracts a Recommendation from raw oracle text.
// Models occasionally wrap JSON in a markdown fence despite instructions,
// so fences are stripped before decoding. A missing amount defaults to 0;
// a missing or empty action is an error.
func parseRecommendation(raw string) (Recommendation, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var payload struct {
		Action *string `json:"action"`
		Amount *int    `json:"amount"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return Recommendation{}, fmt.Errorf("oracle output is not valid JSON: %w", err)
	}
	if payload.Action == nil || strings.TrimSpace(*payload.Action) == "" {
		return Recommendation{}, fmt.Errorf("oracle output missing action")
	}

	rec := Recommendation{Action: strings.ToLower(strings.TrimSpace(*payload.Action))}
	if payload.Amount != nil {
		rec.Amount = *payload.Amount
	}
	return rec, nil
}

package advisor

// Card strings interleave suit glyphs with rank tokens, e.g. "♠A♥K" or
// "♦10♣J♠2". Card counts are derived by counting glyph occurrences rather
// than splitting on delimiters, since rank tokens vary in width.
var suitGlyphs = [...]rune{'♠', '♥', '♦', '♣'}

// CountCards returns the number of cards encoded in a card string.
func CountCards(cards string) int {
	count := 0
	for _, r := range cards {
		for _, glyph := range suitGlyphs {
			if r == glyph {
				count++
				break
			}
		}
	}
	return count
}

// stageForCount maps a community card count to the stage it identifies.
// Only 0, 3, 4 and 5 are valid board sizes.
func stageForCount(count int) (Stage, bool) {
	switch count {
	case 0:
		return StagePreflop, true
	case 3:
		return StageFlop, true
	case 4:
		return StageTurn, true
	case 5:
		return StageRiver, true
	default:
		return StagePreflop, false
	}
}

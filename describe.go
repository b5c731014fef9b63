package partid

import "strings"

// Describe builds the display payload for tokens: the joined reading, the
// space-separated romaji hint and the engine that produced them.
func Describe(tokens Tokens) Preview {
	return Preview{
		Reading:    tokens.Reading(),
		RomajiHint: tokens.Roman(),
		Engine:     tokens.Engine(),
	}
}

// Breakdown renders each token as surface(category: reading), starring
// curated railway terms, joined with " + ".
func (tokens Tokens) Breakdown() string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		label := t.Category.Label()
		if t.IsRailwayTerm {
			label += "★"
		}
		reading := t.Reading
		if reading == "" {
			reading = t.Surface
		}
		parts = append(parts, t.Surface+"("+label+": "+reading+")")
	}
	return strings.Join(parts, " + ")
}

// Hint formats a suggestion the way the parts form shows it below the text
// field: "読み: … → 推奨ID: …". The reading is omitted when it equals text.
func (s Suggestion) Hint(text string) string {
	var parts []string
	if s.Reading != text {
		parts = append(parts, "読み: "+s.Reading)
	}
	if s.ID != "" {
		parts = append(parts, "推奨ID: "+s.ID)
	}
	return strings.Join(parts, " → ")
}

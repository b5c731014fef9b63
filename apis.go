package partid

import "strings"

// Tokenized returns the surfaces joined with the smart spacing rule.
func (tokens Tokens) Tokenized() string {
	return JoinWithSpacingRule(tokens.SurfaceParts())
}

// SurfaceParts returns the surface of every token.
func (tokens Tokens) SurfaceParts() (parts []string) {
	for _, t := range tokens {
		parts = append(parts, t.Surface)
	}
	return
}

// Surface concatenates all surfaces. For dictionary segmentation this is
// the analysed text.
func (tokens Tokens) Surface() string {
	return strings.Join(tokens.SurfaceParts(), "")
}

// Reading concatenates every token's reading, using the surface where the
// reading is missing.
func (tokens Tokens) Reading() string {
	return strings.Join(tokens.ReadingParts(), "")
}

// ReadingParts returns the reading of each token, or its surface.
func (tokens Tokens) ReadingParts() (parts []string) {
	for _, t := range tokens {
		if t.Reading != "" {
			parts = append(parts, t.Reading)
		} else {
			parts = append(parts, t.Surface)
		}
	}
	return
}

// Hiragana returns Reading with katakana folded to hiragana.
func (tokens Tokens) Hiragana() string {
	return KatakanaToHiragana(tokens.Reading())
}

// Roman returns the romaji of all tokens separated by spaces.
func (tokens Tokens) Roman() string {
	return strings.Join(tokens.RomanParts(), " ")
}

// RomanParts returns the romaji of each token, or its surface.
func (tokens Tokens) RomanParts() (parts []string) {
	for _, t := range tokens {
		if t.Romaji != "" {
			parts = append(parts, t.Romaji)
		} else {
			parts = append(parts, t.Surface)
		}
	}
	return
}

// Engine reports the statistical engine if any token came from it.
func (tokens Tokens) Engine() EngineKind {
	for _, t := range tokens {
		if t.Engine == EngineStatistical {
			return EngineStatistical
		}
	}
	return EngineDictionary
}

// Content drops particles, inflectional endings and symbols.
func (tokens Tokens) Content() Tokens {
	var out Tokens
	for _, t := range tokens {
		if !skipsID(t.Category) {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy so cached results cannot be mutated by callers.
func (tokens Tokens) Clone() Tokens {
	out := make(Tokens, len(tokens))
	for i, t := range tokens {
		c := *t
		out[i] = &c
	}
	return out
}

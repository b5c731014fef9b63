package partid

import (
	"fmt"
	"strings"
)

// Category is the grammatical class of a token or dictionary entry.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryPlaceName
	CategoryTrainType
	CategoryAdverb
	CategoryNoun
	CategoryAdjective
	CategoryVerb
	CategoryParticle
	CategorySuffix
	CategoryAdnominal
	CategoryConjunction
	CategoryInterjection
	CategorySymbol
	CategoryNumeral
	CategoryInflectionalEnding
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryUnknown,
	CategoryPlaceName,
	CategoryTrainType,
	CategoryAdverb,
	CategoryNoun,
	CategoryAdjective,
	CategoryVerb,
	CategoryParticle,
	CategorySuffix,
	CategoryAdnominal,
	CategoryConjunction,
	CategoryInterjection,
	CategorySymbol,
	CategoryNumeral,
	CategoryInflectionalEnding,
}

// String returns the English name of the category.
func (c Category) String() string {
	switch c {
	case CategoryPlaceName:
		return "PlaceName"
	case CategoryTrainType:
		return "TrainType"
	case CategoryAdverb:
		return "Adverb"
	case CategoryNoun:
		return "Noun"
	case CategoryAdjective:
		return "Adjective"
	case CategoryVerb:
		return "Verb"
	case CategoryParticle:
		return "Particle"
	case CategorySuffix:
		return "Suffix"
	case CategoryAdnominal:
		return "AdnominalForm"
	case CategoryConjunction:
		return "Conjunction"
	case CategoryInterjection:
		return "Interjection"
	case CategorySymbol:
		return "Symbol"
	case CategoryNumeral:
		return "Numeral"
	case CategoryInflectionalEnding:
		return "InflectionalEnding"
	}
	return "Unknown"
}

// Label returns the Japanese label used in persisted dictionaries.
func (c Category) Label() string {
	switch c {
	case CategoryPlaceName:
		return "地名"
	case CategoryTrainType:
		return "列車種別"
	case CategoryAdverb:
		return "副詞"
	case CategoryNoun:
		return "名詞"
	case CategoryAdjective:
		return "形容詞"
	case CategoryVerb:
		return "動詞"
	case CategoryParticle:
		return "助詞"
	case CategorySuffix:
		return "接尾辞"
	case CategoryAdnominal:
		return "連体詞"
	case CategoryConjunction:
		return "接続詞"
	case CategoryInterjection:
		return "感動詞"
	case CategorySymbol:
		return "記号"
	case CategoryNumeral:
		return "数詞"
	case CategoryInflectionalEnding:
		return "語尾"
	}
	return "未知語"
}

// ParseCategory accepts either the Japanese label or the English name
// (case-insensitive) of a category.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if s == c.Label() || strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("unknown category %q", s)
}

// MarshalText implements encoding.TextMarshaler using the Japanese label.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// EngineKind identifies which analyzer produced a token stream.
type EngineKind int

const (
	EngineDictionary EngineKind = iota
	EngineStatistical
)

func (e EngineKind) String() string {
	if e == EngineStatistical {
		return "statistical"
	}
	return "dictionary"
}

// Token is one analysed unit of input text.
type Token struct {
	Surface       string     // Text as it appeared in the input
	Reading       string     // Kana reading
	Romaji        string     // Hepburn romanization, ASCII
	Category      Category   // Grammatical class
	ShortForm     string     // Precomputed abbreviation used for IDs
	IsRailwayTerm bool       // Curated domain vocabulary hit
	Engine        EngineKind // Analyzer that produced the token
}

// Tokens is an ordered analysis result.
type Tokens []*Token

// Entry is a vocabulary item keyed by its surface form.
type Entry struct {
	Surface  string   `json:"-"`
	Reading  string   `json:"reading"`
	Romaji   string   `json:"romaji"`
	Category Category `json:"type"`
	Short    string   `json:"short,omitempty"`
}

// token materializes the entry as a dictionary-engine token.
func (e Entry) token(surface string, engine EngineKind) *Token {
	return &Token{
		Surface:       surface,
		Reading:       e.Reading,
		Romaji:        e.Romaji,
		Category:      e.Category,
		ShortForm:     e.Short,
		IsRailwayTerm: true,
		Engine:        engine,
	}
}

// Preview is the display payload shown next to a text field.
type Preview struct {
	Reading    string
	RomajiHint string
	Engine     EngineKind
}

// Suggestion is a Preview completed with a generated identifier.
type Suggestion struct {
	Preview
	ID        string
	Breakdown string // e.g. "名古屋(地名★: なごや) + 行き(接尾辞★: いき)"
}

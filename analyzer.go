package partid

import (
	"fmt"
)

// Morpheme is one unit produced by a morphological analysis library.
type Morpheme struct {
	Surface       string
	Reading       string   // katakana reading, may be empty for unknown words
	Pronunciation string   // katakana pronunciation, may be empty
	POS           []string // part-of-speech hierarchy, e.g. ["名詞", "固有名詞", "地域", "一般"]
	BaseForm      string
}

// Tokenizer is the contract a statistical analysis library must satisfy.
type Tokenizer interface {
	Tokenize(text string) []Morpheme
}

// Analyzer normalizes the output of a statistical Tokenizer into Tokens.
// User dictionary entries and curated railway terms override the library's
// classification.
type Analyzer struct {
	tokenizer Tokenizer
	dict      *Dictionary
}

// NewAnalyzer returns an Analyzer over t. dict may be nil, in which case
// only the curated railway terms override the library.
func NewAnalyzer(t Tokenizer, dict *Dictionary) *Analyzer {
	return &Analyzer{tokenizer: t, dict: dict}
}

// Analyze tokenizes text with the statistical library. A panic raised by the
// library is recovered and returned as an *AnalysisError.
func (a *Analyzer) Analyze(text string) (tokens Tokens, err error) {
	if a == nil || a.tokenizer == nil {
		return nil, ErrNotReady
	}
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = &AnalysisError{Text: text, Cause: fmt.Errorf("%v", r)}
		}
	}()

	morphemes := a.tokenizer.Tokenize(text)
	tokens = make(Tokens, 0, len(morphemes))
	for _, m := range morphemes {
		tokens = append(tokens, a.normalize(m))
	}
	Logger.Debug().Str("component", "analyzer").Int("tokens", len(tokens)).Msgf("analyzed %q", stringCapLen(text, 32))
	return tokens, nil
}

func (a *Analyzer) normalize(m Morpheme) *Token {
	reading := m.Reading
	if reading == "" {
		reading = m.Surface
	}
	t := &Token{
		Surface: m.Surface,
		Reading: reading,
		Engine:  EngineStatistical,
	}

	if e, ok := a.override(m.Surface); ok {
		t.Category = e.Category
		t.Romaji = e.Romaji
		t.ShortForm = e.Short
		t.IsRailwayTerm = true
		if e.Reading != "" {
			t.Reading = e.Reading
		}
	} else {
		t.Category = ClassifyPOS(m.POS)
		t.Romaji = Transliterate(reading)
		t.ShortForm = Shorten(t.Romaji, t.Category)
	}

	t.Romaji = reNotRomaji.ReplaceAllString(t.Romaji, "")
	t.ShortForm = reNotRomaji.ReplaceAllString(t.ShortForm, "")
	return t
}

// override looks surface up in the user overlay, then in the railway terms.
func (a *Analyzer) override(surface string) (Entry, bool) {
	if a.dict != nil {
		if e, ok := a.dict.lookupOverlay(surface); ok {
			return e, true
		}
	}
	e, ok := railwayTerms[surface]
	return e, ok
}

// ClassifyPOS maps an IPA/UniDic part-of-speech hierarchy onto a Category.
// Tags with no mapping fall to CategoryUnknown.
func ClassifyPOS(pos []string) Category {
	if len(pos) == 0 {
		return CategoryUnknown
	}
	sub := func(i int) string {
		if i < len(pos) {
			return pos[i]
		}
		return ""
	}
	switch pos[0] {
	case "名詞":
		switch {
		case sub(1) == "数" || sub(1) == "数詞":
			return CategoryNumeral
		case sub(1) == "固有名詞" && (sub(2) == "地域" || sub(2) == "地名"):
			return CategoryPlaceName
		case sub(1) == "接尾":
			return CategorySuffix
		}
		return CategoryNoun
	case "動詞":
		return CategoryVerb
	case "形容詞":
		return CategoryAdjective
	case "副詞":
		return CategoryAdverb
	case "助詞":
		return CategoryParticle
	case "助動詞":
		return CategoryInflectionalEnding
	case "連体詞":
		return CategoryAdnominal
	case "接続詞":
		return CategoryConjunction
	case "感動詞", "フィラー":
		return CategoryInterjection
	case "記号", "補助記号":
		return CategorySymbol
	case "接尾辞":
		return CategorySuffix
	case "数", "数詞":
		return CategoryNumeral
	default:
		// 接頭詞, その他, 未知語 and anything new.
		return CategoryUnknown
	}
}

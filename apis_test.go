package partid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestTokens() Tokens {
	return Tokens{
		{Surface: "まもなく", Reading: "まもなく", Romaji: "mamonaku", Category: CategoryAdverb, ShortForm: "soon", IsRailwayTerm: true},
		{Surface: "名古屋", Reading: "ナゴヤ", Romaji: "nagoya", Category: CategoryPlaceName, ShortForm: "nagoya", IsRailwayTerm: true, Engine: EngineStatistical},
		{Surface: "に", Reading: "", Romaji: "ni", Category: CategoryParticle},
		{Surface: "、", Reading: "", Romaji: "", Category: CategorySymbol},
	}
}

func TestTokensAccessors(t *testing.T) {
	tokens := createTestTokens()

	assert.Equal(t, []string{"まもなく", "名古屋", "に", "、"}, tokens.SurfaceParts())
	assert.Equal(t, "まもなく名古屋に、", tokens.Surface())
	assert.Equal(t, []string{"まもなく", "ナゴヤ", "に", "、"}, tokens.ReadingParts())
	assert.Equal(t, "まもなくナゴヤに、", tokens.Reading())
	assert.Equal(t, "まもなくなごやに、", tokens.Hiragana())
	assert.Equal(t, []string{"mamonaku", "nagoya", "ni", "、"}, tokens.RomanParts())
	assert.Equal(t, "mamonaku nagoya ni 、", tokens.Roman())
	assert.Equal(t, EngineStatistical, tokens.Engine())
}

func TestTokensContent(t *testing.T) {
	content := createTestTokens().Content()
	assert.Equal(t, []string{"まもなく", "名古屋"}, content.SurfaceParts())
}

func TestTokensClone(t *testing.T) {
	tokens := createTestTokens()
	clone := tokens.Clone()
	clone[0].ShortForm = "changed"
	assert.Equal(t, "soon", tokens[0].ShortForm)
	assert.Equal(t, tokens.Surface(), clone.Surface())
}

func TestTokensEmpty(t *testing.T) {
	var tokens Tokens
	assert.Empty(t, tokens.Reading())
	assert.Empty(t, tokens.Roman())
	assert.Equal(t, EngineDictionary, tokens.Engine())
	assert.Empty(t, tokens.Breakdown())
}

func TestDescribeAndBreakdown(t *testing.T) {
	tokens := createTestTokens()[:2]
	p := Describe(tokens)
	assert.Equal(t, "まもなくナゴヤ", p.Reading)
	assert.Equal(t, "mamonaku nagoya", p.RomajiHint)
	assert.Equal(t, EngineStatistical, p.Engine)
	assert.Equal(t, "まもなく(副詞★: まもなく) + 名古屋(地名★: ナゴヤ)", tokens.Breakdown())

	unknown := Tokens{{Surface: "鬱", Reading: "鬱", Romaji: "鬱"}}
	assert.Equal(t, "鬱(未知語: 鬱)", unknown.Breakdown())
}

func TestSuggestionHint(t *testing.T) {
	s := Suggestion{Preview: Preview{Reading: "なごや"}, ID: "nagoya"}
	assert.Equal(t, "読み: なごや → 推奨ID: nagoya", s.Hint("名古屋"))
	assert.Equal(t, "推奨ID: nagoya", s.Hint("なごや"))
}

package partid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tassa-yoniso-manasi-karoto/translitkit/common"
)

var announcementParts = []string{
	"まもなく", "、", "2", "番線", "に", "特急", "名古屋", "行き", "が", "まいります", "。",
	"黄色い", "線", "まで", "お", "下がり", "ください", "。",
}

func TestJoinWithSpacingRule(t *testing.T) {
	testCases := []struct {
		tokens   []string
		expected string
		desc     string
	}{
		{
			[]string{"名古屋", "行き", "が", "まいります"},
			"名古屋 行き が まいります",
			"Japanese tokens are spaced",
		},
		{
			[]string{"まいります", "。"},
			"まいります。",
			"No space before the full stop",
		},
		{
			[]string{"Hello", ",", "world", "!"},
			"Hello, world!",
			"English with punctuation",
		},
		{
			[]string{"名古屋", "行き", "）"},
			"名古屋 行き）",
			"No space before a closing bracket",
		},
		{nil, "", "Empty input"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, JoinWithSpacingRule(tc.tokens), tc.desc)
	}
}

func TestTokensTokenized(t *testing.T) {
	tokens := Tokens{
		{Surface: "名古屋"}, {Surface: "行き"}, {Surface: "が"}, {Surface: "まいります"}, {Surface: "。"},
	}
	assert.Equal(t, "名古屋 行き が まいります。", tokens.Tokenized())
}

func TestNeedsSpace(t *testing.T) {
	testCases := []struct {
		prev     string
		current  string
		expected bool
	}{
		{"Hello", ",", false},
		{"が", "、", false},
		{"まいります", "。", false},
		{"東京", "）", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, needsSpace(tc.prev, tc.current), "%q + %q", tc.prev, tc.current)
	}
	// everything else is decided by the shared rule
	assert.Equal(t, common.DefaultSpacingRule("名古屋", "行き"), needsSpace("名古屋", "行き"))
	assert.Equal(t, common.DefaultSpacingRule("Hello", "world"), needsSpace("Hello", "world"))
}

func BenchmarkSimpleJoin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = strings.Join(announcementParts, " ")
	}
}

func BenchmarkSmartJoin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = JoinWithSpacingRule(announcementParts)
	}
}

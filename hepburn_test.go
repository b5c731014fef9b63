package partid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"digraph with long vowel", "きょう", "kyo"},
		{"long vowels collapse", "とうきょう", "tokyo"},
		{"shi chi tsu fu", "しちつふ", "shichitsufu"},
		{"ji and wo", "じを", "jio"},
		{"katakana", "カタカナ", "katakana"},
		{"katakana digraph", "ジュンキュウ", "junkyu"},
		{"sha cha", "しゃちゃ", "shacha"},
		{"nasal before b", "しんぶん", "shimbun"},
		{"nasal before p", "さんぽ", "sampo"},
		{"nasal before m", "さんま", "samma"},
		{"nasal elsewhere", "ばんせん", "bansen"},
		{"ii collapses", "いいえ", "ie"},
		{"prolonged sound mark", "ほーむ", "homu"},
		{"sokuon dropped", "はっしゃ", "hasha"},
		{"oo untouched", "おおさか", "oosaka"},
		{"ascii lowered", "ABC-def", "abcdef"},
		{"ascii punctuation dropped", "a b.c!", "abc"},
		{"underscore kept", "part_01", "part_01"},
		{"kanji dropped", "名古屋", ""},
		{"mixed", "2ばんせん", "2bansen"},
		{"lone small kana dropped", "ゃ", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transliterate(tt.input))
		})
	}
}

func TestTransliterateDigraphPrecedence(t *testing.T) {
	// き + ょ must not become "ki" + nothing
	assert.Equal(t, "kyoto", Transliterate("きょうと"))
	assert.Equal(t, "ryokan", Transliterate("りょかん"))
	assert.Equal(t, "byoin", Transliterate("びょういん"))
}

func TestTransliterateIdempotent(t *testing.T) {
	inputs := []string{
		"uuu", "ouou", "eee", "iiii", "nbnpnm", "a-b-c", "Hello World", "kyou",
		"しんばし", "ぎゅうにゅう", "ちょうちょう", "ぐりーんしゃ", "toukyou-eki", "x__y",
	}
	for _, in := range inputs {
		once := Transliterate(in)
		assert.Equal(t, once, Transliterate(once), "input %q", in)
	}
}

func TestTransliterateCharset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9_]*$`)
	for _, in := range []string{"東京駅まで", "Ｔｅｓｔ", "ＡＢＣ", "é", "ヴァイオリン", "①②"} {
		assert.Regexp(t, valid, Transliterate(in), "input %q", in)
	}
}

func TestKatakanaToHiragana(t *testing.T) {
	assert.Equal(t, "なごや", KatakanaToHiragana("ナゴヤ"))
	assert.Equal(t, "ほーむ", KatakanaToHiragana("ホーム"))
	assert.Equal(t, "abcかな", KatakanaToHiragana("abcカナ"))
}

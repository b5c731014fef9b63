package partid

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// hiragana → Hepburn. Katakana is derived from the same table.
var monographs = map[rune]string{
	'あ': "a", 'い': "i", 'う': "u", 'え': "e", 'お': "o",
	'か': "ka", 'き': "ki", 'く': "ku", 'け': "ke", 'こ': "ko",
	'が': "ga", 'ぎ': "gi", 'ぐ': "gu", 'げ': "ge", 'ご': "go",
	'さ': "sa", 'し': "shi", 'す': "su", 'せ': "se", 'そ': "so",
	'ざ': "za", 'じ': "ji", 'ず': "zu", 'ぜ': "ze", 'ぞ': "zo",
	'た': "ta", 'ち': "chi", 'つ': "tsu", 'て': "te", 'と': "to",
	'だ': "da", 'ぢ': "ji", 'づ': "zu", 'で': "de", 'ど': "do",
	'な': "na", 'に': "ni", 'ぬ': "nu", 'ね': "ne", 'の': "no",
	'は': "ha", 'ひ': "hi", 'ふ': "fu", 'へ': "he", 'ほ': "ho",
	'ば': "ba", 'び': "bi", 'ぶ': "bu", 'べ': "be", 'ぼ': "bo",
	'ぱ': "pa", 'ぴ': "pi", 'ぷ': "pu", 'ぺ': "pe", 'ぽ': "po",
	'ま': "ma", 'み': "mi", 'む': "mu", 'め': "me", 'も': "mo",
	'や': "ya", 'ゆ': "yu", 'よ': "yo",
	'ら': "ra", 'り': "ri", 'る': "ru", 'れ': "re", 'ろ': "ro",
	'わ': "wa", 'を': "o", 'ん': "n",
	'っ': "", 'ー': "",
}

// consonant part of a kana followed by a small ya/yu/yo
var digraphOnsets = map[rune]string{
	'き': "ky", 'ぎ': "gy",
	'し': "sh", 'じ': "j",
	'ち': "ch", 'ぢ': "j",
	'に': "ny",
	'ひ': "hy", 'び': "by", 'ぴ': "py",
	'み': "my",
	'り': "ry",
}

var smallY = map[rune]string{'ゃ': "a", 'ゅ': "u", 'ょ': "o"}

var (
	reLabialNasal = regexp.MustCompile(`n([bpm])`)
	reNotIDChar   = regexp.MustCompile(`[^a-z0-9_]`)
)

// Transliterate converts kana to lower-case Hepburn romaji made only of
// letters, digits and underscores. ASCII passes through lower-cased, any
// other unmapped rune is dropped. It never fails and is idempotent on its
// own output.
func Transliterate(kana string) string {
	runes := []rune(kana)
	var b strings.Builder
	b.Grow(len(kana))
	for i := 0; i < len(runes); i++ {
		r := toHiragana(runes[i])
		if i+1 < len(runes) {
			if onset, ok := digraphOnsets[r]; ok {
				if vowel, ok := smallY[toHiragana(runes[i+1])]; ok {
					b.WriteString(onset + vowel)
					i++
					continue
				}
			}
		}
		if r < utf8.RuneSelf {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteString(monographs[r])
	}
	return correctRomaji(b.String())
}

// correctRomaji applies the long-vowel, nasal and charset corrections in
// their fixed order until the string stops changing.
func correctRomaji(s string) string {
	for {
		next := strings.ReplaceAll(s, "uu", "u")
		next = strings.ReplaceAll(next, "ou", "o")
		next = strings.ReplaceAll(next, "ee", "e")
		next = strings.ReplaceAll(next, "ii", "i")
		next = reLabialNasal.ReplaceAllString(next, "m$1")
		next = strings.ReplaceAll(next, "-", "")
		next = reNotIDChar.ReplaceAllString(next, "")
		if next == s {
			return s
		}
		s = next
	}
}

// toHiragana maps a katakana rune onto its hiragana counterpart.
// The prolonged sound mark and non-katakana runes are returned unchanged.
func toHiragana(r rune) rune {
	if r >= 'ァ' && r <= 'ヶ' {
		return r - 0x60
	}
	return r
}

// KatakanaToHiragana converts every katakana rune of s to hiragana.
func KatakanaToHiragana(s string) string {
	return strings.Map(toHiragana, s)
}

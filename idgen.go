package partid

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	reNotAlnum      = regexp.MustCompile(`[^a-zA-Z0-9]`)
	reNotIDFragment = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	reNotRomaji     = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// minIDLength is the shortest joined candidate accepted before falling back
// to the transliterated reading.
const minIDLength = 2

// Shorten applies the abbreviation rule of category to a romanized word.
// Categories without a rule return romaji unchanged.
func Shorten(romaji string, category Category) string {
	switch category {
	case CategoryPlaceName:
		return truncate(romaji, 6)
	case CategoryTrainType:
		return strings.ReplaceAll(strings.ReplaceAll(romaji, "kyuu", "kyu"), "soku", "sok")
	case CategoryAdverb:
		return truncate(romaji, 4)
	case CategoryNoun:
		return truncate(romaji, 5)
	case CategoryVerb:
		return strings.ReplaceAll(strings.ReplaceAll(romaji, "masu", ""), "desu", "")
	case CategoryNumeral:
		r := strings.Replace(romaji, "ichi", "1", 1)
		r = strings.Replace(r, "ni", "2", 1)
		return strings.Replace(r, "san", "3", 1)
	default:
		// Unknown and every other category keep the romaji as is.
		return romaji
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// skipsID reports whether tokens of category never contribute to an ID.
func skipsID(c Category) bool {
	return c == CategoryInflectionalEnding || c == CategoryParticle || c == CategorySymbol
}

// fragment returns the ID contribution of a single token.
func fragment(t *Token) string {
	if t.ShortForm != "" {
		if s := reNotIDFragment.ReplaceAllString(t.ShortForm, ""); s != "" {
			return s
		}
	}
	if t.Romaji == "" || t.Category == CategoryUnknown {
		return ""
	}
	r := strings.ReplaceAll(t.Romaji, "uu", "u")
	r = strings.ReplaceAll(r, "ou", "o")
	r = strings.ReplaceAll(r, "-", "")
	r = reNotAlnum.ReplaceAllString(r, "")
	return reNotAlnum.ReplaceAllString(Shorten(r, t.Category), "")
}

// Candidate joins the fragments of tokens into an ID without checking it
// against existing IDs. It falls back to the transliterated reading, then to
// a random "part_" ID, so the result is never empty.
func (tokens Tokens) Candidate() string {
	var parts []string
	for _, t := range tokens {
		if skipsID(t.Category) {
			continue
		}
		if f := fragment(t); f != "" {
			parts = append(parts, f)
		}
	}
	id := strings.Join(parts, "_")
	if len(id) >= minIDLength {
		return id
	}
	id = Transliterate(tokens.Reading())
	if len(id) >= minIDLength {
		return id
	}
	return RandomID()
}

// GenerateID returns an identifier for tokens that is not in existing.
// Collisions are resolved by appending _1, _2, … to the candidate.
func GenerateID(tokens Tokens, existing map[string]bool) string {
	return Unique(tokens.Candidate(), existing)
}

// Unique appends the first free numeric suffix to base.
func Unique(base string, existing map[string]bool) string {
	if !existing[base] {
		return base
	}
	for i := 1; ; i++ {
		id := base + "_" + strconv.Itoa(i)
		if !existing[id] {
			return id
		}
	}
}

// RandomID returns "part_" followed by six random lower-case alphanumerics.
func RandomID() string {
	return "part_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

// ExistingIDs builds the lookup set expected by GenerateID.
func ExistingIDs(ids ...string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

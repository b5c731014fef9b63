package partid

import (
	"strings"
	"unicode/utf8"

	"github.com/tassa-yoniso-manasi-karoto/translitkit/common"
)

// closingPunct never takes a space before it.
const closingPunct = "。、，．！？,.!?:;)]}）」』】"

// JoinWithSpacingRule joins tokens, inserting a space only where the
// default spacing rule asks for one and the next token is not closing
// punctuation.
func JoinWithSpacingRule(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(tokens[0])
	for i := 1; i < len(tokens); i++ {
		if needsSpace(tokens[i-1], tokens[i]) {
			builder.WriteRune(' ')
		}
		builder.WriteString(tokens[i])
	}
	return builder.String()
}

func needsSpace(prev, current string) bool {
	if r, _ := utf8.DecodeRuneInString(current); strings.ContainsRune(closingPunct, r) {
		return false
	}
	return common.DefaultSpacingRule(prev, current)
}

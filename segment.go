package partid

// maxMunch is the longest surface, in runes, the segmenter tries to match.
const maxMunch = 10

// Segment splits text into tokens by greedy longest match against the
// merged vocabulary. Runes no entry covers become single-rune Unknown tokens
// whose reading and romaji are the rune itself. The surfaces of the result
// concatenate back to text.
func (d *Dictionary) Segment(text string) Tokens {
	runes := []rune(text)
	tokens := make(Tokens, 0, len(runes))

	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := 0; i < len(runes); {
		n := min(len(runes)-i, maxMunch)
		matched := false
		for ; n >= 1; n-- {
			surface := string(runes[i : i+n])
			if e, ok := d.merged[surface]; ok {
				tokens = append(tokens, e.token(surface, EngineDictionary))
				i += n
				matched = true
				break
			}
		}
		if !matched {
			ch := string(runes[i])
			tokens = append(tokens, &Token{
				Surface:  ch,
				Reading:  ch,
				Romaji:   ch,
				Category: CategoryUnknown,
				Engine:   EngineDictionary,
			})
			i++
		}
	}
	return tokens
}

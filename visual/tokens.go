package visual

// token is a maximal word or whitespace-gap slice of a run's text.
type token struct {
	text string
	gap  bool
	pos  int // 1-based byte position of the token within the run text
}

// Gap bytes are the weak whitespace characters a run can absorb.
func isGapByte(b byte) bool {
	return b == ' ' || b == '\t'
}

// tokenize splits text into alternating word and gap tokens. The exact
// gap content is preserved, not normalized.
func tokenize(text string) []token {
	var toks []token
	for i := 0; i < len(text); {
		start := i
		gap := isGapByte(text[i])
		for i < len(text) && isGapByte(text[i]) == gap {
			i++
		}
		toks = append(toks, token{text: text[start:i], gap: gap, pos: start + 1})
	}
	return toks
}

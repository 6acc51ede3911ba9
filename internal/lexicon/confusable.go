// Package lexicon builds the confusable-aware prefix tree used for
// dictionary segmentation of concatenated OCR text.
package lexicon

// confusables groups characters the OCR model routinely swaps for one
// another on price-tag typefaces.
var confusables = map[byte][]byte{
	'i': {'i', 'l', '1'},
	'l': {'i', 'l', '1'},
	'1': {'i', 'l', '1'},
	'r': {'r', 'j'},
	'j': {'r', 'j'},
	'e': {'e', 'o'},
	'o': {'e', 'o'},
}

// Variants expands a word into every spelling reachable by substituting
// confusable characters independently at each position. At every position
// the unchanged character is taken first, so the canonical spelling is
// always the first entry and no spelling repeats.
func Variants(word string) []string {
	var positions []int
	for i := 0; i < len(word); i++ {
		if _, ok := confusables[word[i]]; ok {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return []string{word}
	}

	variants := []string{word}
	for _, pos := range positions {
		expanded := make([]string, 0, len(variants)*3)
		for _, v := range variants {
			cur := v[pos]
			expanded = append(expanded, v)
			for _, sub := range confusables[cur] {
				if sub == cur {
					continue
				}
				w := []byte(v)
				w[pos] = sub
				expanded = append(expanded, string(w))
			}
		}
		variants = expanded
	}
	return variants
}

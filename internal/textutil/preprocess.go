// Package textutil normalizes raw OCR text before segmentation and matching.
package textutil

import (
	"regexp"
	"strings"
)

// Package-level compiled regex pattern for performance
var nonASCIIRegex = regexp.MustCompile(`[^\x00-\x7F]`)

// czechFold maps Czech diacritics to their ASCII base letters. The OCR model
// is unreliable on diacritics, so the lexicon and all queries work in the
// folded alphabet.
var czechFold = strings.NewReplacer(
	"á", "a", "č", "c", "ç", "c", "ď", "d", "é", "e", "ě", "e",
	"í", "i", "ň", "n", "ó", "o", "ř", "r", "š", "s", "ť", "t",
	"ú", "u", "ů", "u", "ý", "y", "ž", "z",
	"Á", "A", "Č", "C", "Ď", "D", "É", "E", "Ě", "E",
	"Í", "I", "Ň", "N", "Ó", "O", "Ř", "R", "Š", "S", "Ť", "T",
	"Ú", "U", "Ů", "U", "Ý", "Y", "Ž", "Z",
)

// Preprocess lowercases OCR text, folds Czech diacritics to ASCII, strips
// control and separator junk, and replaces any remaining non-ASCII runes
// with spaces.
func Preprocess(text string) string {
	text = strings.NewReplacer("\t", "", "\n", "", " ", " ", "|", "").Replace(text)
	text = strings.TrimSpace(text)
	text = czechFold.Replace(strings.ToLower(text))
	text = nonASCIIRegex.ReplaceAllString(text, " ")
	return text
}

// Concatenate strips all whitespace, producing the space-free string the
// segmentation engine expects.
func Concatenate(text string) string {
	return strings.Join(strings.Fields(text), "")
}

// Package spell patches individual segmentation leftovers with a
// dictionary-backed spell checker. It runs strictly after segmentation.
package spell

import (
	"github.com/sajari/fuzzy"
)

// Checker validates tokens against a dictionary and offers ranked
// suggestions for the rest. Train once at startup; reads are lock-free.
type Checker struct {
	model *fuzzy.Model
	known map[string]bool
}

// NewChecker trains a suggestion model on the dictionary words.
func NewChecker(words []string) *Checker {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(words)

	known := make(map[string]bool, len(words))
	for _, w := range words {
		known[w] = true
	}
	return &Checker{model: model, known: known}
}

// Correct returns the token itself when it validates, the first ranked
// suggestion when one exists, and the token unchanged otherwise.
func (c *Checker) Correct(token string) string {
	if c.known[token] {
		return token
	}
	if s := c.model.SpellCheck(token); s != "" {
		return s
	}
	return token
}

// Known reports dictionary membership.
func (c *Checker) Known(token string) bool {
	return c.known[token]
}

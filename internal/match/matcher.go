// Package match implements the edit-distance nearest-match corrector used
// for price, volume, percentage, and price-per-unit fields.
package match

import (
	"context"
	"log"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/salesbot/backend/internal/domain"
)

// budgetCheckInterval is how many corpus entries are scanned between
// context checks. Large corpora make per-entry checks too hot.
const budgetCheckInterval = 512

// Matcher runs Levenshtein scans over variation corpora. It is stateless
// apart from configuration and safe for concurrent use.
type Matcher struct {
	params             *levenshtein.Params
	enableDebugLogging bool
}

// NewMatcher creates a matcher with unit edit costs.
func NewMatcher(enableDebugLogging bool) *Matcher {
	return &Matcher{
		params:             levenshtein.NewParams(),
		enableDebugLogging: enableDebugLogging,
	}
}

// FindNearest returns the corpus entry with minimum edit distance to the
// case-folded query. Ties keep the first minimal entry in corpus order. The
// scan honors ctx: on deadline it returns ErrBudgetExceeded and the caller
// degrades to the uncorrected text.
func (m *Matcher) FindNearest(ctx context.Context, query string, entries []string) (string, int, error) {
	if len(entries) == 0 {
		return "", 0, domain.ErrEmptyCorpus
	}

	folded := strings.ToLower(query)
	best := ""
	bestDist := -1
	for i, entry := range entries {
		if i%budgetCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return "", 0, domain.ErrBudgetExceeded
			default:
			}
		}
		d := levenshtein.Distance(strings.ToLower(entry), folded, m.params)
		if bestDist < 0 || d < bestDist {
			best, bestDist = entry, d
			if d == 0 {
				break
			}
		}
	}

	if m.enableDebugLogging {
		log.Printf("[MATCH] %q -> %q (distance %d, corpus %d entries)", query, best, bestDist, len(entries))
	}
	return best, bestDist, nil
}

// FindNearestWithPreference behaves like FindNearest but, when preferLength
// is set, first restricts candidates to entries exactly one character longer
// than the query (OCR frequently drops a single decimal-separator glyph) and
// only falls back to the global nearest match if none qualify.
func (m *Matcher) FindNearestWithPreference(ctx context.Context, query string, entries []string, preferLength bool) (string, error) {
	if preferLength {
		preferred := make([]string, 0, 16)
		want := len(query) + 1
		for _, entry := range entries {
			if len(entry) == want {
				preferred = append(preferred, entry)
			}
		}
		if len(preferred) > 0 {
			best, _, err := m.FindNearest(ctx, query, preferred)
			return best, err
		}
	}
	best, _, err := m.FindNearest(ctx, query, entries)
	return best, err
}

// SplitAndMatch corrects a compound "<quantity>=<price>" expression by
// matching each side against its own sub-corpus and recombining. Queries
// without an '=' come back unchanged: they are not per-unit expressions.
func (m *Matcher) SplitAndMatch(ctx context.Context, query string, quantities, prices []string) (string, error) {
	qty, price, ok := strings.Cut(query, "=")
	if !ok {
		return query, nil
	}

	nearestQty, _, err := m.FindNearest(ctx, strings.TrimSpace(qty), quantities)
	if err != nil {
		return "", err
	}
	nearestPrice, _, err := m.FindNearest(ctx, strings.TrimSpace(price), prices)
	if err != nil {
		return "", err
	}
	return nearestQty + "=" + nearestPrice, nil
}

// SplitCorpus decomposes a combined "<qty>=<price>" corpus into its two
// sides, deduplicated in first-seen order. Used when the per-unit corpus is
// loaded from a snapshot instead of generated side-by-side.
func SplitCorpus(entries []string) (quantities, prices []string) {
	seenQty := make(map[string]bool)
	seenPrice := make(map[string]bool)
	for _, entry := range entries {
		qty, price, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if !seenQty[qty] {
			seenQty[qty] = true
			quantities = append(quantities, qty)
		}
		if !seenPrice[price] {
			seenPrice[price] = true
			prices = append(prices, price)
		}
	}
	return quantities, prices
}

// MatchVolume corrects a "<multiplier> x <measurement>" fragment by matching
// only the substring after the last 'x' against the measurement corpus. The
// multiplier is packaging detail, not part of the measurement.
func (m *Matcher) MatchVolume(ctx context.Context, text string, measures []string) (string, error) {
	part := text
	if idx := strings.LastIndex(text, "x"); idx >= 0 {
		part = text[idx+1:]
	}
	best, _, err := m.FindNearest(ctx, strings.TrimSpace(part), measures)
	return best, err
}

// ClassifyAndMatch decides whether a price-field fragment is a plain amount
// or a stray per-unit expression, and corrects it against the right corpus.
// Exactly one of the two return values is non-empty on success.
func (m *Matcher) ClassifyAndMatch(ctx context.Context, text string, prices, perUnitQuantities, perUnitPrices []string) (price, perUnit string, err error) {
	parts := strings.Fields(text)

	var withEquals []string
	for _, p := range parts {
		if strings.Contains(p, "=") {
			withEquals = append(withEquals, p)
		}
	}

	if len(withEquals) > 0 {
		for _, p := range withEquals {
			perUnit, err = m.SplitAndMatch(ctx, p, perUnitQuantities, perUnitPrices)
			if err != nil {
				return "", "", err
			}
		}
		return "", perUnit, nil
	}

	switch {
	case len(parts) > 1:
		longest := parts[0]
		for _, p := range parts[1:] {
			if len(p) > len(longest) {
				longest = p
			}
		}
		price, err = m.FindNearestWithPreference(ctx, longest, prices, true)
	case len(parts) == 1:
		price, _, err = m.FindNearest(ctx, parts[0], prices)
	}
	if err != nil {
		return "", "", err
	}
	return price, "", nil
}

package corpus

import (
	"fmt"
	"sort"
)

// PriceConfig bounds the price-amount generator. All values are in cents to
// keep the perturbation arithmetic exact.
type PriceConfig struct {
	BaseCents     int64 // first base price, e.g. 10 for 0.10
	MaxCents      int64 // ceiling, e.g. 100000 for 1000.00
	IntVariation  int64 // integer-part perturbation +-K
	CentVariation int64 // fractional perturbation +-C in 0.01 steps
}

// DefaultPriceConfig mirrors the ranges the offline snapshots were built
// with: every price up to 1000 Kc, +-1 crown and +-10 hellers around each
// integer base.
func DefaultPriceConfig() PriceConfig {
	return PriceConfig{BaseCents: 10, MaxCents: 100000, IntVariation: 1, CentVariation: 10}
}

// GeneratePrices emits every price reachable from an integer base by the
// configured perturbations, deduplicated, ascending, formatted with two
// decimals.
func GeneratePrices(cfg PriceConfig) *Corpus {
	seen := make(map[int64]bool)
	for base := cfg.BaseCents; base <= cfg.MaxCents; base += 100 {
		intPart := base / 100
		centPart := base % 100
		for i := -cfg.IntVariation; i <= cfg.IntVariation; i++ {
			newInt := intPart + i
			if newInt < 0 {
				continue
			}
			for j := -cfg.CentVariation; j <= cfg.CentVariation; j++ {
				ni, nc := newInt, centPart+j
				if nc >= 100 {
					nc -= 100
					ni++
				} else if nc < 0 {
					if ni == 0 {
						break
					}
					nc += 100
					ni--
				}
				if cents := ni*100 + nc; cents <= cfg.MaxCents {
					seen[cents] = true
				}
			}
		}
	}

	cents := make([]int64, 0, len(seen))
	for c := range seen {
		cents = append(cents, c)
	}
	sort.Slice(cents, func(i, j int) bool { return cents[i] < cents[j] })

	c := &Corpus{Name: "price_variations", Entries: make([]string, 0, len(cents))}
	for _, v := range cents {
		c.Entries = append(c.Entries, FormatCents(v))
	}
	return c
}

// FormatCents renders a cent amount as "<int>.<2-digit cents>".
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

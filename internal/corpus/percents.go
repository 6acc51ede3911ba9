package corpus

import "fmt"

// PercentConfig bounds the sale-percentage generator.
type PercentConfig struct {
	Min int
	Max int
}

// DefaultPercentConfig covers every discount badge: -99% through -1%.
func DefaultPercentConfig() PercentConfig {
	return PercentConfig{Min: -99, Max: -1}
}

// GeneratePercents emits "<n>%" for every integer in [Min, Max], ascending.
func GeneratePercents(cfg PercentConfig) *Corpus {
	c := &Corpus{Name: "percent_variations"}
	for n := cfg.Min; n <= cfg.Max; n++ {
		c.Entries = append(c.Entries, fmt.Sprintf("%d%%", n))
	}
	return c
}

package corpus

import (
	"bufio"
	"fmt"
	"io"
)

// perUnitUnit is one unit with its quantity range.
type perUnitUnit struct {
	unit string
	from int
	to   int
	step int
}

// perUnitUnits lists the units appearing on Czech price-per-unit lines with
// the quantity ranges seen in the wild.
var perUnitUnits = []perUnitUnit{
	{unit: "ml", from: 100, to: 1000, step: 10},
	{unit: "g", from: 100, to: 1000, step: 10},
	{unit: "kg", from: 1, to: 10, step: 1},
	{unit: "l", from: 1, to: 10, step: 1},
	{unit: "liter", from: 1, to: 10, step: 1},
	{unit: "kus", from: 1, to: 10, step: 1},
	{unit: "ks", from: 1, to: 10, step: 1},
}

// PerUnitConfig bounds the price axis of the per-unit cross product.
type PerUnitConfig struct {
	MaxPriceCents int64 // price axis ceiling, 0.01 steps
}

// DefaultPerUnitConfig matches the offline snapshot: prices 0.00..1000.00.
func DefaultPerUnitConfig() PerUnitConfig {
	return PerUnitConfig{MaxPriceCents: 100000}
}

// GeneratePerUnitQuantities emits the quantity side of the per-unit
// expressions ("<qty><unit>"), in unit declaration order. This is the corpus
// the decomposed matcher scans; it stays in the hundreds of entries.
func GeneratePerUnitQuantities() *Corpus {
	c := &Corpus{Name: "price_per_unit_quantities"}
	for _, u := range perUnitUnits {
		for q := u.from; q <= u.to; q += u.step {
			c.Entries = append(c.Entries, fmt.Sprintf("%d%s", q, u.unit))
		}
	}
	return c
}

// GeneratePerUnitPrices emits the price side ("<price> Kč") stepped by 0.01
// up to the ceiling.
func GeneratePerUnitPrices(cfg PerUnitConfig) *Corpus {
	c := &Corpus{Name: "price_per_unit_prices", Entries: make([]string, 0, cfg.MaxPriceCents+1)}
	for p := int64(0); p <= cfg.MaxPriceCents; p++ {
		c.Entries = append(c.Entries, FormatCents(p)+" Kč")
	}
	return c
}

// WritePerUnitVariations streams the full quantity x price cross product as
// "<qty><unit>=<price> Kč" lines. The combined corpus runs into the millions
// of entries, so it is never materialized in memory; only the snapshot file
// holds it.
func WritePerUnitVariations(w io.Writer, cfg PerUnitConfig) (int64, error) {
	bw := bufio.NewWriterSize(w, 1<<20)
	var written int64
	for _, u := range perUnitUnits {
		for q := u.from; q <= u.to; q += u.step {
			for p := int64(0); p <= cfg.MaxPriceCents; p++ {
				if _, err := fmt.Fprintf(bw, "%d%s=%s Kč\n", q, u.unit, FormatCents(p)); err != nil {
					return written, err
				}
				written++
			}
		}
	}
	return written, bw.Flush()
}

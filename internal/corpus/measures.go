package corpus

import "fmt"

// GenerateMeasures emits the measurement phrases seen on volume fields:
// piece counts, liter increments, gram and kilogram ranges, roll counts,
// deposit-bottle liter variants, and the fixed multi-unit pricing idioms.
func GenerateMeasures() *Corpus {
	c := &Corpus{Name: "measure_variations"}
	for i := 1; i < 50; i++ {
		c.Entries = append(c.Entries, fmt.Sprintf("%d ks", i))
	}
	for i := 0; i < 10000; i++ {
		c.Entries = append(c.Entries, fmt.Sprintf("%d.%d l", i/10, i%10))
	}
	for i := 200; i < 10000; i++ {
		c.Entries = append(c.Entries, fmt.Sprintf("%d g", i))
	}
	for i := 1; i < 100; i++ {
		c.Entries = append(c.Entries, fmt.Sprintf("%d kg", i))
	}
	c.Entries = append(c.Entries, "1 roli", "2 role", "3 role", "4 role")
	for i := 0; i < 10; i++ {
		deci := 5 + i
		c.Entries = append(c.Entries, fmt.Sprintf("%d.%d l+zaloha", deci/10, deci%10))
	}
	for i := 1; i <= 10; i++ {
		c.Entries = append(c.Entries, fmt.Sprintf("%d Kus", i))
	}
	c.Entries = append(c.Entries,
		"cena za 1 kus pri koupu baleni 6 kus",
		"cen za multipack",
	)
	return c
}

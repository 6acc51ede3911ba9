// Package corpus generates and persists the variation corpora the
// nearest-match corrector searches: price amounts, price-per-unit
// expressions, measurement phrases, and sale percentages.
package corpus

import (
	"bufio"
	"fmt"
	"os"
)

// Corpus is a named, ordered, deduplicated sequence of canonical strings.
// Built once, read-only afterwards.
type Corpus struct {
	Name    string
	Entries []string
}

// Load reads a corpus snapshot, one entry per line, UTF-8, no escaping.
func Load(name, path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", name, err)
	}
	defer f.Close()

	c := &Corpus{Name: name}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			c.Entries = append(c.Entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", name, err)
	}
	return c, nil
}

// Save writes the corpus snapshot, one entry per line.
func (c *Corpus) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create corpus %s: %w", c.Name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range c.Entries {
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return fmt.Errorf("write corpus %s: %w", c.Name, err)
		}
	}
	return w.Flush()
}

// Len returns the entry count.
func (c *Corpus) Len() int {
	return len(c.Entries)
}

package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/salesbot/backend/internal/textutil"
)

// Lexicon couples the canonical word list with its confusable-aware trie.
// Build it once at process start and share the handle read-only.
type Lexicon struct {
	trie  *Trie
	words []string
}

// New builds a lexicon from canonical item-name tokens. Each token is
// preprocessed the same way query text is, so trie lookups and OCR input
// live in the same folded alphabet.
func New(words []string) *Lexicon {
	lex := &Lexicon{trie: NewTrie()}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		for _, token := range tokenizeLine(w) {
			if token == "" || seen[token] {
				continue
			}
			seen[token] = true
			lex.words = append(lex.words, token)
			lex.trie.Insert(token)
		}
	}
	return lex
}

// Load reads a word list file, one canonical item-name entry per line.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return New(lines), nil
}

// Trie exposes the underlying prefix tree for segmentation.
func (l *Lexicon) Trie() *Trie {
	return l.trie
}

// Words returns the deduplicated, preprocessed word list in insertion order.
// The spell checker trains on this.
func (l *Lexicon) Words() []string {
	return l.words
}

// Contains reports trie membership for an already-preprocessed token.
func (l *Lexicon) Contains(word string) bool {
	return l.trie.Contains(word)
}

func tokenizeLine(line string) []string {
	return strings.Fields(textutil.Preprocess(line))
}

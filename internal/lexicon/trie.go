package lexicon

// Candidate is a trie-recognized substring of a query text. Start/End form a
// half-open span.
type Candidate struct {
	Word  string
	Start int
	End   int
}

type trieNode struct {
	children map[byte]*trieNode
	isWord   bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[byte]*trieNode)}
}

// Trie is a prefix tree over confusable-expanded lexicon words. It is built
// once at startup and read-only afterwards.
type Trie struct {
	root *trieNode
	size int
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert adds a word and all of its confusable variants as terminal entries,
// so corrupted spellings are recognized directly during the scan.
func (t *Trie) Insert(word string) {
	for _, variant := range Variants(word) {
		node := t.root
		for i := 0; i < len(variant); i++ {
			child, ok := node.children[variant[i]]
			if !ok {
				child = newTrieNode()
				node.children[variant[i]] = child
			}
			node = child
		}
		if !node.isWord {
			node.isWord = true
			t.size++
		}
	}
}

// Contains reports whether the exact word (canonical or variant spelling) is
// a terminal entry.
func (t *Trie) Contains(word string) bool {
	node := t.root
	for i := 0; i < len(word); i++ {
		child, ok := node.children[word[i]]
		if !ok {
			return false
		}
		node = child
	}
	return node.isWord
}

// Size returns the number of terminal entries, variants included.
func (t *Trie) Size() int {
	return t.size
}

// FindAllWords scans every starting offset of text and walks the trie while
// characters match, emitting a candidate at every terminal node reached.
// Overlapping candidates are intentional; the segmentation DP chooses among
// them. Candidates come out ordered by start, then end, which the DP relies
// on for deterministic tie-breaking.
func (t *Trie) FindAllWords(text string) []Candidate {
	var words []Candidate
	for start := 0; start < len(text); start++ {
		node := t.root
		for end := start; end < len(text); end++ {
			child, ok := node.children[text[end]]
			if !ok {
				break
			}
			node = child
			if node.isWord {
				words = append(words, Candidate{Word: text[start : end+1], Start: start, End: end + 1})
			}
		}
	}
	return words
}

// Package segment picks the best non-overlapping word cover of a
// concatenated OCR string from trie candidates via dynamic programming.
package segment

import (
	"github.com/salesbot/backend/internal/lexicon"
)

const (
	// shortWordPenalty penalizes recognized substrings of at most 3
	// characters; those are usually coincidental matches inside noise.
	shortWordPenalty = -10
	// gapPenalty is the per-character cost of skipping an uncoverable
	// position. Skipped runs surface as residual spans instead of
	// silently vanishing.
	gapPenalty = -1
)

// Result is the chosen segmentation: recognized words in text order plus the
// residual raw-text spans no trie candidate covered.
type Result struct {
	Words    []string
	Residual []string
}

type pathElem struct {
	text string
	gap  bool
}

type dpState struct {
	score     int
	path      []pathElem
	reachable bool
}

func wordScore(word string) int {
	if len(word) > 3 {
		return len(word)
	}
	return shortWordPenalty
}

// BestWordCombination runs the cover DP over positions 0..len(text).
// Candidates must be in the canonical trie scan order (start asc, end asc);
// with strict improvement tests the earliest-discovered path wins ties, so
// the result is deterministic. Word transitions at a position are relaxed
// before the gap step, so a word path is never displaced by an equal-scoring
// skip.
func BestWordCombination(candidates []lexicon.Candidate, text string) Result {
	n := len(text)
	dp := make([]dpState, n+1)
	dp[0] = dpState{reachable: true}

	byStart := make([][]lexicon.Candidate, n+1)
	for _, c := range candidates {
		if c.Start < 0 || c.End > n {
			continue
		}
		byStart[c.Start] = append(byStart[c.Start], c)
	}

	for pos := 0; pos < n; pos++ {
		if !dp[pos].reachable {
			continue
		}
		for _, c := range byStart[pos] {
			score := dp[pos].score + wordScore(c.Word)
			if !dp[c.End].reachable || score > dp[c.End].score {
				dp[c.End] = dpState{
					score:     score,
					path:      appendElem(dp[pos].path, pathElem{text: c.Word}),
					reachable: true,
				}
			}
		}
		// Gap transition: skip one character, remembering it.
		score := dp[pos].score + gapPenalty
		if !dp[pos+1].reachable || score > dp[pos+1].score {
			dp[pos+1] = dpState{
				score:     score,
				path:      appendElem(dp[pos].path, pathElem{text: text[pos : pos+1], gap: true}),
				reachable: true,
			}
		}
	}

	return assemble(dp[n].path)
}

func appendElem(path []pathElem, e pathElem) []pathElem {
	out := make([]pathElem, len(path), len(path)+1)
	copy(out, path)
	return append(out, e)
}

// assemble merges adjacent gap characters into residual spans and collects
// recognized words in order.
func assemble(path []pathElem) Result {
	var res Result
	gapRun := ""
	for _, e := range path {
		if e.gap {
			gapRun += e.text
			continue
		}
		if gapRun != "" {
			res.Residual = append(res.Residual, gapRun)
			gapRun = ""
		}
		res.Words = append(res.Words, e.text)
	}
	if gapRun != "" {
		res.Residual = append(res.Residual, gapRun)
	}
	return res
}

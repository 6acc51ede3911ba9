// Package shops extracts structured price records from OCR'd price-tag
// fragments using per-retailer layout heuristics.
package shops

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numberRegex pulls numeric runs with an optional single decimal separator
// out of a fragment.
var numberRegex = regexp.MustCompile(`\d+[.,]?\d*`)

// ParsePrice normalizes one numeric token. Every character outside
// [0-9.,'] is stripped and the separators collapse to '.'. A separator-free
// run longer than two digits gets a decimal point inserted two digits from
// the right: OCR routinely loses the decimal glyph and concatenates crowns
// with hellers ("4990" -> 49.90). Short runs parse as plain integers.
func ParsePrice(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == ',' || r == '\'':
			b.WriteByte('.')
		}
	}
	s := b.String()
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ".") {
		return toFloat(s)
	}
	if len(s) > 2 {
		return toFloat(s[:len(s)-2] + "." + s[len(s)-2:])
	}
	return toFloat(s)
}

func toFloat(s string) (float64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// extractNumbers returns the raw numeric tokens of a fragment, in order.
func extractNumbers(raw string) []string {
	return numberRegex.FindAllString(raw, -1)
}

// parseNumbers extracts and parses every numeric token, dropping the
// unparsable ones.
func parseNumbers(raw string) []float64 {
	var vals []float64
	for _, tok := range extractNumbers(raw) {
		if v, ok := ParsePrice(tok); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// mergeCents combines a crowns number and a cents number that OCR split
// apart ("14 90" -> 14.90).
func mergeCents(crowns, cents float64) float64 {
	return float64(int64(crowns)) + float64(int64(cents))/100
}

// isWholeNumber reports whether v has no fractional part.
func isWholeNumber(v float64) bool {
	return v == math.Trunc(v)
}

// centsSuffix reports whether a raw second token is a cents fragment rather
// than a second price: a bare two-digit run that is either a common cents
// value (90/99) or zero-padded ("06").
func centsSuffix(tok string, v float64) bool {
	if len(tok) != 2 || strings.ContainsAny(tok, ".,") {
		return false
	}
	return v == 90 || v == 99 || tok[0] == '0'
}

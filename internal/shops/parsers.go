package shops

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/salesbot/backend/internal/domain"
)

// PriceType is the record field a price-class fragment targets, derived
// from the detector class.
type PriceType int

const (
	TypeItem PriceType = iota
	TypeMember
	TypeInitial
)

type parserFunc func(raw string, pt PriceType) *domain.PriceRecord

// number is a numeric token with both its raw spelling and parsed value;
// several heuristics need the spelling (leading zeros, separator presence).
type number struct {
	tok string
	val float64
}

func numbers(raw string) []number {
	var ns []number
	for _, tok := range extractNumbers(raw) {
		if v, ok := ParsePrice(tok); ok {
			ns = append(ns, number{tok: tok, val: v})
		}
	}
	return ns
}

func f(v float64) *float64 {
	return &v
}

// recordFor puts a single parsed value into the field the price type asks
// for.
func recordFor(pt PriceType, v float64) *domain.PriceRecord {
	switch pt {
	case TypeMember:
		return &domain.PriceRecord{MemberPrice: f(v)}
	case TypeInitial:
		return &domain.PriceRecord{InitialPrice: f(v)}
	default:
		return &domain.PriceRecord{ItemPrice: f(v)}
	}
}

// recordWithInitial fills the primary field plus the crossed-out original
// price next to it.
func recordWithInitial(pt PriceType, v, initial float64) *domain.PriceRecord {
	rec := recordFor(pt, v)
	rec.InitialPrice = f(initial)
	return rec
}

// parseSimple covers the retailers whose tags carry one number and nothing
// else: EsoMarket, Lidl, Lidl Shop, the CBA family, Bene.
func parseSimple(raw string, pt PriceType) *domain.PriceRecord {
	v, ok := ParsePrice(raw)
	if !ok {
		return nil
	}
	return recordFor(pt, v)
}

// parsePenny handles Penny tags: the current price is frequently split into
// a crowns number and a cents number, with the crossed-out price trailing.
func parsePenny(raw string, pt PriceType) *domain.PriceRecord {
	ns := numbers(raw)

	// A trailing integer below 5 is a quantity qualifier ("2 kusy"), not a
	// price.
	if len(ns) > 3 {
		last := ns[len(ns)-1]
		if last.val < 5 && isWholeNumber(last.val) {
			ns = ns[:len(ns)-1]
		}
	}

	switch len(ns) {
	case 3:
		return recordWithInitial(pt, mergeCents(ns[0].val, ns[1].val), ns[2].val)
	case 2:
		if centsSuffix(ns[1].tok, ns[1].val) {
			return recordFor(pt, mergeCents(ns[0].val, ns[1].val))
		}
		return recordWithInitial(pt, ns[0].val, ns[1].val)
	case 1:
		return recordFor(pt, ns[0].val)
	}
	return nil
}

// parseBilla handles Billa tags, where a second small integer is a
// purchase-quantity condition rather than a crossed-out price.
func parseBilla(raw string, pt PriceType) *domain.PriceRecord {
	if isLoyaltyPoints(raw) {
		return nil
	}

	ns := numbers(raw)
	switch len(ns) {
	case 2:
		if ns[1].val < 5 && isWholeNumber(ns[1].val) {
			rec := recordFor(pt, ns[0].val)
			rec.Volume = strconv.Itoa(int(ns[1].val))
			return rec
		}
		return recordWithInitial(pt, ns[0].val, ns[1].val)
	case 1:
		return recordFor(pt, ns[0].val)
	}
	return nil
}

var albertCleanRegex = regexp.MustCompile(`[^0-9\s.,'\-:]`)

// parseAlbert handles both Albert formats. Trailing '-' and ':' glyphs are
// decimal-point substitutes ("499-" is 499.00, not 4.99), leading zeros are
// OCR artifacts, and anything below 5 is a stray digit from a percentage
// badge.
func parseAlbert(raw string, pt PriceType) *domain.PriceRecord {
	clean := albertCleanRegex.ReplaceAllString(raw, "")

	var vals []float64
	var toks []string
	for _, tok := range strings.Fields(clean) {
		if trimmed := strings.TrimRight(tok, "-:"); trimmed != tok {
			if !strings.ContainsAny(trimmed, ".,'") {
				trimmed += "."
			}
			if v, ok := ParsePrice(trimmed); ok {
				vals = append(vals, v)
				toks = append(toks, tok)
			}
			continue
		}
		zeroTrimmed := strings.TrimLeft(tok, "0")
		if zeroTrimmed == "" {
			zeroTrimmed = "0"
		}
		if v, ok := ParsePrice(zeroTrimmed); ok {
			vals = append(vals, v)
			toks = append(toks, zeroTrimmed)
		}
	}

	if len(vals) == 0 || vals[0] < 5 {
		return nil
	}

	// Two bare numbers with a two-digit second token: crowns and cents that
	// OCR split apart ("22 30" is 22.30, not a price pair).
	if len(vals) >= 2 && len(toks[1]) == 2 && !strings.ContainsAny(toks[1], ".,'") {
		return recordFor(pt, mergeCents(vals[0], vals[1]))
	}
	return recordFor(pt, vals[0])
}

var tescoDateRegex = regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\s*-\s*\d{1,2}\.\d{1,2}\.`)

// parseTesco handles both Tesco formats: validity date ranges are stripped,
// percentage badges and "HOP!" marketing fragments carry no price.
func parseTesco(raw string, pt PriceType) *domain.PriceRecord {
	clean := tescoDateRegex.ReplaceAllString(raw, "")
	if strings.Contains(clean, "%") || strings.Contains(clean, "HOP") {
		return nil
	}
	ns := numbers(clean)
	if len(ns) == 0 {
		return nil
	}
	return recordFor(pt, ns[0].val)
}

var kauflandMultiPriceRegex = regexp.MustCompile(`\d+[.,]\d+\s+\d+[.,]\d+`)

// parseKaufland handles Kaufland tags. Runs of several well-formed decimal
// prices are variant tables ("od 49,90 119,90 169,90"), not a single item
// price. With two numbers the discounted price prints after the recommended
// one.
func parseKaufland(raw string, pt PriceType) *domain.PriceRecord {
	if kauflandMultiPriceRegex.MatchString(raw) {
		return nil
	}
	ns := numbers(raw)
	switch len(ns) {
	case 2:
		return recordWithInitial(pt, ns[1].val, ns[0].val)
	case 1:
		return recordFor(pt, ns[0].val)
	}
	return nil
}

// parseFlopTop handles Flop and Flop Top tags.
func parseFlopTop(raw string, pt PriceType) *domain.PriceRecord {
	ns := numbers(raw)
	switch len(ns) {
	case 2:
		return recordWithInitial(pt, ns[0].val, ns[1].val)
	case 1:
		return recordFor(pt, ns[0].val)
	}
	return nil
}

// parseTravelFree handles Travel Free duty-free tags. With two numbers the
// sale price is always the smaller one, whatever order OCR produced.
func parseTravelFree(raw string, pt PriceType) *domain.PriceRecord {
	clean := strings.ReplaceAll(raw, "€", "")
	ns := numbers(clean)
	switch len(ns) {
	case 2:
		lo, hi := ns[0].val, ns[1].val
		if lo > hi {
			lo, hi = hi, lo
		}
		return recordWithInitial(pt, lo, hi)
	case 1:
		return recordFor(pt, ns[0].val)
	}
	return nil
}

// parseRatio handles Ratio cash-and-carry tags, which print the ex-VAT
// price first and the VAT-inclusive price second. Only the VAT-inclusive
// value fits the record contract.
func parseRatio(raw string, pt PriceType) *domain.PriceRecord {
	ns := numbers(raw)
	if len(ns) != 2 {
		return nil
	}
	return recordFor(pt, ns[1].val)
}

var globusForeignRegex = regexp.MustCompile(`[^\d.,'\s\-]`)
var globusSplitCentsRegex = regexp.MustCompile(`\d+\s+\d{2}`)

// parseGlobus handles Globus tags: anything beyond digits and separators is
// a marketing fragment, apostrophes and single spaces stand in for the
// decimal point.
func parseGlobus(raw string, pt PriceType) *domain.PriceRecord {
	if strings.Contains(raw, "%") || globusForeignRegex.MatchString(raw) {
		return nil
	}
	clean := strings.ReplaceAll(raw, "'", ".")
	if globusSplitCentsRegex.MatchString(clean) {
		clean = strings.ReplaceAll(clean, " ", ".")
	}
	ns := numbers(clean)
	if len(ns) != 1 {
		return nil
	}
	return recordFor(pt, ns[0].val)
}

var tamdaCurrencyRegex = regexp.MustCompile(`[KCkc]+`)

// parseTamda handles Tamda Foods tags with their trailing currency tokens
// ("1290 KC", "3490Kc").
func parseTamda(raw string, pt PriceType) *domain.PriceRecord {
	if strings.Contains(raw, "%") || strings.Contains(raw, "(") {
		return nil
	}
	clean := strings.TrimSpace(tamdaCurrencyRegex.ReplaceAllString(raw, ""))
	ns := numbers(clean)
	if len(ns) != 1 {
		return nil
	}
	return recordFor(pt, ns[0].val)
}

var makroPackagingRegex = regexp.MustCompile(`(?i)^(\d+(?:\s*-\s*\d+)?\s*(?:BAL\.?|KS)\s*(?:A\s*V\s*I\s*CE)?)`)

// parseMakro handles Makro wholesale tags: an optional leading packaging
// condition ("3 BAL. A VICE", "5 ksAViCE"), then the per-package price and
// the VAT-inclusive price.
func parseMakro(raw string, pt PriceType) *domain.PriceRecord {
	if isLoyaltyPoints(raw) {
		return nil
	}

	rest := raw
	packaging := ""
	if m := makroPackagingRegex.FindString(raw); m != "" {
		packaging = strings.TrimSpace(m)
		rest = strings.TrimSpace(raw[len(m):])
	}

	ns := numbers(rest)
	switch {
	case len(ns) >= 2:
		rec := &domain.PriceRecord{
			ItemPrice:    f(ns[0].val),
			InitialPrice: f(ns[1].val),
			Packaging:    packaging,
		}
		return rec
	case len(ns) == 1:
		rec := recordFor(pt, ns[0].val)
		rec.Packaging = packaging
		return rec
	}
	return nil
}

// isLoyaltyPoints detects bonus-point fragments ("75bodi", "10000bodu")
// that look numeric but carry no price.
func isLoyaltyPoints(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "bodi") || strings.Contains(lower, "bodu")
}

package shops

import (
	"github.com/salesbot/backend/internal/domain"
)

// Registry maps shop names to their parsing functions. Built once at
// startup, read-only afterwards.
type Registry struct {
	parsers map[string]parserFunc
}

// NewRegistry registers every supported retailer, aliases included.
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]parserFunc)}

	register := func(fn parserFunc, names ...string) {
		for _, name := range names {
			r.parsers[name] = fn
		}
	}

	register(parseSimple, "EsoMarket", "Lidl", "Lidl Shop", "CBA Potraviny", "CBA Premium", "CBA Market", "Bene")
	register(parsePenny, "Penny")
	register(parseBilla, "Billa")
	register(parseAlbert, "Albert Hypermarket", "Albert Supermarket")
	register(parseTesco, "Tesco Supermarket", "Tesco Hypermarket")
	register(parseKaufland, "Kaufland")
	register(parseFlopTop, "Flop", "Flop Top")
	register(parseTravelFree, "Travel Free")
	register(parseRatio, "Ratio")
	register(parseGlobus, "Globus")
	register(parseTamda, "Tamda Foods")
	register(parseMakro, "Makro")

	return r
}

// Supported reports whether a parser is registered for the shop.
func (r *Registry) Supported(shop string) bool {
	_, ok := r.parsers[shop]
	return ok
}

// Shops returns the registered shop names, for diagnostics.
func (r *Registry) Shops() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	return names
}

// Parse extracts a price record from a raw fragment. An unknown shop is an
// explicit ErrUnsupportedShop, distinct from a registered parser finding
// nothing usable (nil record, nil error). Non-price classes never reach
// this registry.
func (r *Registry) Parse(shop string, class domain.FieldClass, raw string) (*domain.PriceRecord, error) {
	if !class.IsPrice() {
		return nil, domain.ErrInvalidRequest
	}
	fn, ok := r.parsers[shop]
	if !ok {
		return nil, domain.ErrUnsupportedShop
	}
	return fn(raw, priceTypeFor(class)), nil
}

func priceTypeFor(class domain.FieldClass) PriceType {
	switch class {
	case domain.ClassMemberPrice:
		return TypeMember
	case domain.ClassInitialPrice:
		return TypeInitial
	default:
		return TypeItem
	}
}

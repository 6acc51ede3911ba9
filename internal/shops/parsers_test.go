package shops

import (
	"testing"

	"github.com/salesbot/backend/internal/domain"
)

// record is a flat fixture shape for parser expectations.
type record struct {
	item      float64
	initial   float64
	member    float64
	packaging string
	volume    string
}

func checkRecord(t *testing.T, got *domain.PriceRecord, want *record) {
	t.Helper()

	if want == nil {
		if got != nil && !got.Empty() {
			t.Fatalf("got %+v, want nothing", got)
		}
		return
	}
	if got == nil {
		t.Fatalf("got nil, want %+v", want)
	}

	checkField := func(name string, got *float64, want float64) {
		t.Helper()
		if want == 0 {
			if got != nil {
				t.Errorf("%s = %v, want unset", name, *got)
			}
			return
		}
		if got == nil {
			t.Errorf("%s = nil, want %v", name, want)
		} else if *got != want {
			t.Errorf("%s = %v, want %v", name, *got, want)
		}
	}

	checkField("ItemPrice", got.ItemPrice, want.item)
	checkField("InitialPrice", got.InitialPrice, want.initial)
	checkField("MemberPrice", got.MemberPrice, want.member)
	if got.Packaging != want.packaging {
		t.Errorf("Packaging = %q, want %q", got.Packaging, want.packaging)
	}
	if got.Volume != want.volume {
		t.Errorf("Volume = %q, want %q", got.Volume, want.volume)
	}
}

func TestParseSimple(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{name: "split crowns and cents", raw: "17 90", want: &record{item: 17.9}},
		{name: "comma separator", raw: "24,90", want: &record{item: 24.9}},
		{name: "separator-free run", raw: "4990", want: &record{item: 49.9}},
		{name: "no digits", raw: "akce", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseSimple(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParsePenny(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{
			name: "loyalty banner with one glued price",
			raw:  "CENA BE Z PENNY KART Y 8490",
			want: &record{item: 84.9},
		},
		{
			name: "split crowns and cents",
			raw:  "14 90",
			want: &record{item: 14.9},
		},
		{
			name: "two full prices form a sale pair",
			raw:  "129,90 159,90",
			want: &record{item: 129.9, initial: 159.9},
		},
		{
			name: "split current price with crossed-out price",
			raw:  "27 90 34,90",
			want: &record{item: 27.9, initial: 34.9},
		},
		{
			name: "trailing quantity qualifier is dropped",
			raw:  "27 90 34,90 2",
			want: &record{item: 27.9, initial: 34.9},
		},
		{
			name: "empty fragment",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parsePenny(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParseBilla(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{
			name: "single price",
			raw:  "26,90",
			want: &record{item: 26.9},
		},
		{
			name: "small trailing integer is a quantity condition",
			raw:  "34,90 1",
			want: &record{item: 34.9, volume: "1"},
		},
		{
			name: "two prices form a sale pair",
			raw:  "24,90 29,90",
			want: &record{item: 24.9, initial: 29.9},
		},
		{
			name: "loyalty points carry no price",
			raw:  "75 bodu",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseBilla(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParseAlbert(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{
			name: "zero-padded value loses its leading zero",
			raw:  "BE Z 066",
			want: &record{item: 66},
		},
		{
			name: "trailing dash is a decimal point substitute",
			raw:  "499-",
			want: &record{item: 499},
		},
		{
			name: "trailing colon is a decimal point substitute",
			raw:  "89:",
			want: &record{item: 89},
		},
		{
			name: "split crowns and cents merge",
			raw:  "22 30",
			want: &record{item: 22.3},
		},
		{
			name: "plain decimal price",
			raw:  "139,90",
			want: &record{item: 139.9},
		},
		{
			name: "stray digit below five",
			raw:  "4",
			want: nil,
		},
		{
			name: "no digits",
			raw:  "AKCE",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseAlbert(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParseTesco(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{
			name: "validity dates are stripped",
			raw:  "22.4. - 24.4. 1790",
			want: &record{item: 17.9},
		},
		{
			name: "plain price",
			raw:  "249,90",
			want: &record{item: 249.9},
		},
		{
			name: "percentage badge carries no price",
			raw:  "-30%",
			want: nil,
		},
		{
			name: "marketing fragment carries no price",
			raw:  "HOP! 1790",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseTesco(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParseKaufland(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{
			name: "recommended price prints before the discounted one",
			raw:  "nezavisladoporucena spotrebitelskacena 2699, 1899,-",
			want: &record{item: 1899, initial: 2699},
		},
		{
			name: "single price",
			raw:  "259,90",
			want: &record{item: 259.9},
		},
		{
			name: "variant price table carries no single price",
			raw:  "od 49,90 119,90 169,90",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseKaufland(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParseFlopTop(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{name: "sale pair in print order", raw: "24,90 29,90", want: &record{item: 24.9, initial: 29.9}},
		{name: "single price", raw: "19,90", want: &record{item: 19.9}},
		{name: "three numbers are ambiguous", raw: "10 20 30", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseFlopTop(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParseTravelFree(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{
			name: "sale price is the smaller value regardless of order",
			raw:  "€7.99\n€5.69",
			want: &record{item: 5.69, initial: 7.99},
		},
		{
			name: "already in sale order",
			raw:  "€5.69 €7.99",
			want: &record{item: 5.69, initial: 7.99},
		},
		{
			name: "single price",
			raw:  "€12.49",
			want: &record{item: 12.49},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseTravelFree(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParseRatio(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{
			name: "keeps the VAT-inclusive second value",
			raw:  "165,21 199,90",
			want: &record{item: 199.9},
		},
		{
			name: "single number is ambiguous",
			raw:  "199,90",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseRatio(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParseGlobus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{
			name: "apostrophe stands in for the decimal point",
			raw:  "64'90",
			want: &record{item: 64.9},
		},
		{
			name: "space stands in for the decimal point",
			raw:  "39 90",
			want: &record{item: 39.9},
		},
		{
			name: "plain price",
			raw:  "129,90",
			want: &record{item: 129.9},
		},
		{
			name: "marketing text carries no price",
			raw:  "AKCE 129,90",
			want: nil,
		},
		{
			name: "percentage badge carries no price",
			raw:  "-30%",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseGlobus(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParseTamda(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{
			name: "currency token is stripped",
			raw:  "129,90 Kc",
			want: &record{item: 129.9},
		},
		{
			name: "glued currency token",
			raw:  "3490Kc",
			want: &record{item: 34.9},
		},
		{
			name: "percentage badge carries no price",
			raw:  "-15%",
			want: nil,
		},
		{
			name: "parenthesized condition carries no price",
			raw:  "129,90 (za kus)",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseTamda(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestParseMakro(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *record
	}{
		{
			name: "packaging condition with a price pair",
			raw:  "3 BAL. A VICE 52,90 59,25*",
			want: &record{item: 52.9, initial: 59.25, packaging: "3 BAL. A VICE"},
		},
		{
			name: "glued packaging condition with one price",
			raw:  "5 ksAViCE 199,90",
			want: &record{item: 199.9, packaging: "5 ksAViCE"},
		},
		{
			name: "range packaging condition",
			raw:  "1-2 BAL 89,90 99,90",
			want: &record{item: 89.9, initial: 99.9, packaging: "1-2 BAL"},
		},
		{
			name: "price pair without packaging",
			raw:  "10,90 12,21*",
			want: &record{item: 10.9, initial: 12.21},
		},
		{
			name: "loyalty points carry no price",
			raw:  "75bodi",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parseMakro(tt.raw, TypeItem), tt.want)
		})
	}
}

func TestPriceTypeRouting(t *testing.T) {
	t.Run("member class fills the member field", func(t *testing.T) {
		rec := parseSimple("24,90", TypeMember)
		checkRecord(t, rec, &record{member: 24.9})
	})

	t.Run("initial class fills the initial field", func(t *testing.T) {
		rec := parseSimple("29,90", TypeInitial)
		checkRecord(t, rec, &record{initial: 29.9})
	})
}

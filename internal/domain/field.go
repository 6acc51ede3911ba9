package domain

import "encoding/json"

// FieldClass is the semantic category of a detected price-tag fragment,
// assigned by the upstream detector.
type FieldClass int

const (
	ClassName FieldClass = iota
	ClassPrice
	ClassMemberPrice
	ClassInitialPrice
	ClassVolume
	ClassPercent
	ClassPricePerUnit
	ClassUnknown
)

// classNames maps detector class identifiers to FieldClass values.
// The numbering follows the detector's label file.
var classNames = map[string]FieldClass{
	"item_name":           ClassName,
	"item_price":          ClassPrice,
	"item_member_price":   ClassMemberPrice,
	"item_initial_price":  ClassInitialPrice,
	"item_volume":         ClassVolume,
	"item_sale_prcnt":     ClassPercent,
	"item_price_per_unit": ClassPricePerUnit,
}

// ParseFieldClass resolves a detector class label. Unrecognized labels map
// to ClassUnknown; those fragments pass through uncorrected.
func ParseFieldClass(label string) FieldClass {
	if c, ok := classNames[label]; ok {
		return c
	}
	return ClassUnknown
}

// String returns the detector label for the class.
func (c FieldClass) String() string {
	for label, class := range classNames {
		if class == c {
			return label
		}
	}
	return "unknown"
}

// IsPrice reports whether the class routes to the shop-specific price parser.
func (c FieldClass) IsPrice() bool {
	return c == ClassPrice || c == ClassMemberPrice || c == ClassInitialPrice
}

// MarshalJSON emits the detector label, so responses carry the same class
// vocabulary requests are written in.
func (c FieldClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// DetectedField is one OCR fragment clipped from a price-tag photograph.
// It is immutable input produced by the external detector/OCR stage.
type DetectedField struct {
	ShopName string     `json:"shopName"`
	Class    FieldClass `json:"class"`
	RawText  string     `json:"rawText"`
}

// PriceRecord is the structured numeric output of the shop parser.
// Nil fields mean "not present in this fragment", never zero.
type PriceRecord struct {
	ItemPrice    *float64 `json:"itemPrice,omitempty"`
	InitialPrice *float64 `json:"initialPrice,omitempty"`
	MemberPrice  *float64 `json:"memberPrice,omitempty"`
	Packaging    string   `json:"packaging,omitempty"`
	Volume       string   `json:"volume,omitempty"`
}

// Empty reports whether the record carries no usable information.
func (r *PriceRecord) Empty() bool {
	return r == nil ||
		(r.ItemPrice == nil && r.InitialPrice == nil && r.MemberPrice == nil &&
			r.Packaging == "" && r.Volume == "")
}

// CorrectionStatus tells the caller how a fragment was handled.
type CorrectionStatus string

const (
	// StatusCorrected means a corrected text or price record was produced.
	StatusCorrected CorrectionStatus = "corrected"
	// StatusEmpty means the fragment was understood but contained nothing
	// usable (for example a bare percentage badge on a price field).
	StatusEmpty CorrectionStatus = "empty"
	// StatusUnsupportedShop means no parser is registered for the shop.
	StatusUnsupportedShop CorrectionStatus = "unsupported_shop"
	// StatusUncorrected means the correction budget ran out and the raw
	// text is returned as-is.
	StatusUncorrected CorrectionStatus = "uncorrected"
)

// Correction is the per-fragment result attached back to the detected object.
type Correction struct {
	Field         DetectedField    `json:"field"`
	Status        CorrectionStatus `json:"status"`
	CorrectedText string           `json:"correctedText,omitempty"`
	Residual      []string         `json:"residual,omitempty"`
	Price         *PriceRecord     `json:"price,omitempty"`
}

package kernel

import (
	"strings"
	"unicode"
)

// NationwideArea is the catch-all postal area sentinel. Ranking rows stored
// under this area apply to every requested area, and a lookup for it is
// never narrowed further.
const NationwideArea = "ALL"

// postalAreaLength is the number of leading characters of a cleaned postal
// code that form its area bucket.
const postalAreaLength = 3

// PostalArea is a value object derived from a raw postal code. It carries the
// cleaned code (whitespace stripped, uppercased) and the coarse area bucket
// used as the ranking cache key. Derivation is total: any input, including an
// empty or all-whitespace one, yields a valid PostalArea.
//
// Example:
//
//	area := kernel.NewPostalArea("111 22")
//	area.Cleaned() // "11122"
//	area.Area()    // "111"
type PostalArea struct {
	cleaned string
	area    string
}

// NewPostalArea derives a PostalArea from a raw postal code string.
// All whitespace is removed, the remainder is uppercased, and the first
// three characters become the area. An empty cleaned code maps to the
// nationwide sentinel area.
func NewPostalArea(raw string) PostalArea {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	cleaned := b.String()
	area := NationwideArea
	if cleaned != "" {
		area = cleaned
		if len(area) > postalAreaLength {
			area = area[:postalAreaLength]
		}
	}

	return PostalArea{cleaned: cleaned, area: area}
}

// NationwidePostalArea returns the catch-all area used for the widest
// fallback tier.
func NationwidePostalArea() PostalArea {
	return PostalArea{cleaned: "", area: NationwideArea}
}

// Cleaned returns the normalized postal code.
func (p PostalArea) Cleaned() string {
	return p.cleaned
}

// Area returns the three-character area bucket, or NationwideArea when the
// cleaned code is empty.
func (p PostalArea) Area() string {
	return p.area
}

// IsNationwide reports whether this area is the catch-all sentinel.
func (p PostalArea) IsNationwide() bool {
	return p.area == NationwideArea
}

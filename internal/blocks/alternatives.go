package blocks

import "strings"

// DefaultAlternativeCount is used when callers ask for zero or fewer structures.
const DefaultAlternativeCount = 3

// GenerateAlternativeStructures derives count variants of base, each a fresh
// copy with at most one structural change:
//
//	0: testimonials moved ahead of services
//	1: features replaced by a benefits grid
//	2: a conversion CTA added before the last two blocks when none exists
//
// Variants past index 2 are unchanged copies.
func GenerateAlternativeStructures(base []Recommendation, count int) [][]Recommendation {
	if count <= 0 {
		count = DefaultAlternativeCount
	}
	out := make([][]Recommendation, 0, count)
	for i := 0; i < count; i++ {
		alt := make([]Recommendation, len(base), len(base)+1)
		copy(alt, base)
		switch i {
		case 0:
			testimonials := indexOfFamily(alt, "testimonials")
			services := indexOfFamily(alt, "services")
			if testimonials > -1 && services > -1 && testimonials > services {
				alt[testimonials], alt[services] = alt[services], alt[testimonials]
			}
		case 1:
			if idx := indexOfFamily(alt, "features"); idx > -1 {
				alt[idx] = Recommendation{
					Type:     TypeContent,
					Variant:  "benefits-grid",
					Reason:   "Alternative aux features",
					Priority: alt[idx].Priority,
				}
			}
		case 2:
			if indexOfFamily(alt, "cta") == -1 {
				at := len(alt) - 2
				if at < 0 {
					at = 0
				}
				cta := Recommendation{
					Type:     TypeCTA,
					Variant:  "conversion-focused",
					Reason:   "Augmenter la conversion",
					Priority: 85,
				}
				alt = append(alt[:at], append([]Recommendation{cta}, alt[at:]...)...)
			}
		}
		out = append(out, alt)
	}
	return out
}

func indexOfFamily(items []Recommendation, family string) int {
	for i, item := range items {
		if strings.Contains(item.Type, family) {
			return i
		}
	}
	return -1
}

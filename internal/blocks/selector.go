package blocks

import "sort"

const (
	mandatoryPriority = 100
	contactPriority   = 90
)

// SelectOptimalBlocks assembles the page structure for c, sorted by descending
// priority. Equal priorities keep their emission order.
func SelectOptimalBlocks(c Criteria) []Recommendation {
	selected := make([]Recommendation, 0, 12)
	used := make(map[string]bool, 12)
	emit := func(rec Recommendation) {
		selected = append(selected, rec)
		used[rec.Type] = true
	}

	selected = append(selected, Recommendation{
		Type:     TypeHeader,
		Variant:  HeaderVariant(c),
		Reason:   "Navigation essentielle",
		Priority: mandatoryPriority,
	})

	rules, _ := BusinessRules(c.BusinessType)
	for _, rule := range rules {
		emit(resolve(rule, c.AvailableData))
	}

	dataFlags := []struct {
		present bool
		flag    string
	}{
		{c.AvailableData.Emergency, FlagEmergency},
		{c.AvailableData.Portfolio, FlagPortfolio},
		{c.AvailableData.Testimonials, FlagTestimonials},
	}
	for _, df := range dataFlags {
		if !df.present {
			continue
		}
		rec, _ := DataBlock(df.flag)
		if !used[rec.Type] {
			emit(rec)
		}
	}

	// No used-type guard here: a certifications block may appear twice.
	if c.hasPriority(PriorityConfiance) && c.AvailableData.Certifications {
		rec, _ := DataBlock(FlagCertifications)
		selected = append(selected, rec)
	}

	if c.hasPriority(PriorityTransparence) && c.AvailableData.Pricing {
		rec, _ := DataBlock(FlagPricing)
		if !used[rec.Type] {
			emit(rec)
		}
	}

	if !used[TypeContact] {
		emit(Recommendation{
			Type:     TypeContact,
			Variant:  ContactVariant(c),
			Reason:   "Conversion essentielle",
			Priority: contactPriority,
		})
	}

	selected = append(selected, Recommendation{
		Type:     TypeFooter,
		Variant:  FooterVariant(c),
		Reason:   "Informations de contact",
		Priority: mandatoryPriority,
	})

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Priority > selected[j].Priority
	})
	return selected
}

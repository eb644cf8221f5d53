package blocks

import "sort"

// Data-availability flags keying the data catalog.
const (
	FlagEmergency      = "has-emergency"
	FlagPortfolio      = "has-portfolio"
	FlagTestimonials   = "has-testimonials"
	FlagTeam           = "has-team"
	FlagCertifications = "has-certifications"
	FlagProcess        = "has-process"
	FlagPricing        = "has-pricing"
	FlagFAQ            = "has-faq"
)

var businessRules = map[BusinessType][]Recommendation{
	Plombier: {
		{Type: TypeHero, Variant: "split-content", Reason: "Mise en avant du numéro d'urgence", Priority: 100},
		{Type: TypeCTA, Variant: "urgency-banner", Reason: "Urgences plomberie fréquentes", Priority: 95},
		{Type: TypeServices, Variant: "cards-hover", Reason: "Services variés à présenter", Priority: 90},
		{
			Type: TypeGallery, Variant: "before-after", Reason: "Montrer les transformations", Priority: 80,
			AlternativeIf: &Alternative{
				Condition:   ConditionNoPortfolio,
				Alternative: Recommendation{Type: TypeContent, Variant: "process", Reason: "Expliquer le processus d'intervention", Priority: 80},
			},
		},
	},
	Electricien: {
		{Type: TypeHero, Variant: "gradient-modern", Reason: "Image moderne et technologique", Priority: 100},
		{Type: TypeFeatures, Variant: "security-badges", Reason: "Sécurité électrique primordiale", Priority: 95},
		{Type: TypeContent, Variant: "certifications", Reason: "Normes et certifications importantes", Priority: 90},
		{
			Type: TypePricing, Variant: "transparent-pricing", Reason: "Transparence sur les tarifs électriques", Priority: 85,
			AlternativeIf: &Alternative{
				Condition:   ConditionNoPricing,
				Alternative: Recommendation{Type: TypeFAQ, Variant: "technical-faq", Reason: "Questions techniques fréquentes", Priority: 85},
			},
		},
	},
	Menuisier: {
		{Type: TypeHero, Variant: "fullscreen-video", Reason: "Montrer le savoir-faire en vidéo", Priority: 100},
		{Type: TypeGallery, Variant: "masonry-flow", Reason: "Portfolio visuel essentiel", Priority: 95},
		{Type: TypeContent, Variant: "craftsmanship", Reason: "Histoire et savoir-faire artisanal", Priority: 90},
		{Type: TypeServices, Variant: "detailed-cards", Reason: "Services sur-mesure détaillés", Priority: 85},
	},
	Jardinier: {
		{Type: TypeHero, Variant: "nature-parallax", Reason: "Immersion nature", Priority: 100},
		{Type: TypeGallery, Variant: "seasons-gallery", Reason: "Transformations au fil des saisons", Priority: 95},
		{Type: TypeServices, Variant: "seasonal-services", Reason: "Services par saison", Priority: 90},
		{Type: TypeContent, Variant: "eco-approach", Reason: "Approche écologique", Priority: 85},
	},
}

var dataBlocks = map[string]Recommendation{
	FlagEmergency:      {Type: TypeCTA, Variant: "urgency-banner", Reason: "Service d'urgence disponible", Priority: 95},
	FlagPortfolio:      {Type: TypeGallery, Variant: "dynamic-gallery", Reason: "Portfolio riche à valoriser", Priority: 90},
	FlagTestimonials:   {Type: TypeTestimonials, Variant: "social-proof", Reason: "Témoignages clients disponibles", Priority: 85},
	FlagTeam:           {Type: TypeContent, Variant: "team-showcase", Reason: "Équipe à présenter", Priority: 80},
	FlagCertifications: {Type: TypeContent, Variant: "trust-indicators", Reason: "Certifications à mettre en avant", Priority: 85},
	FlagProcess:        {Type: TypeContent, Variant: "step-by-step", Reason: "Processus détaillé disponible", Priority: 75},
	FlagPricing:        {Type: TypePricing, Variant: "comparative-table", Reason: "Tarifs à afficher", Priority: 80},
	FlagFAQ:            {Type: TypeFAQ, Variant: "smart-accordion", Reason: "Questions fréquentes disponibles", Priority: 70},
}

// BusinessRules returns a copy of the catalog entries for bt.
// Unknown business types report false and are not an error.
func BusinessRules(bt BusinessType) ([]Recommendation, bool) {
	rules, ok := businessRules[bt]
	if !ok {
		return nil, false
	}
	out := make([]Recommendation, len(rules))
	for i, rec := range rules {
		out[i] = rec.clone()
	}
	return out, true
}

// DataBlock returns the recommendation contributed by a data-availability flag.
func DataBlock(flag string) (Recommendation, bool) {
	rec, ok := dataBlocks[flag]
	if !ok {
		return Recommendation{}, false
	}
	return rec.clone(), true
}

// BusinessTypes lists the rule catalog keys in lexical order.
func BusinessTypes() []BusinessType {
	out := make([]BusinessType, 0, len(businessRules))
	for bt := range businessRules {
		out = append(out, bt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r Recommendation) clone() Recommendation {
	if r.AlternativeIf != nil {
		alt := *r.AlternativeIf
		alt.Alternative = alt.Alternative.clone()
		r.AlternativeIf = &alt
	}
	return r
}

package blocks

// Block type identifiers understood by the render pipeline.
const (
	TypeHeader       = "header-v3-perfect"
	TypeHero         = "hero-v3-perfect"
	TypeCTA          = "cta-v3-perfect"
	TypeServices     = "services-v3-perfect"
	TypeGallery      = "gallery-v3-perfect"
	TypeContent      = "content-v3-perfect"
	TypeFeatures     = "features-v3-perfect"
	TypePricing      = "pricing-v3-perfect"
	TypeFAQ          = "faq-v3-perfect"
	TypeTestimonials = "testimonials-v3-perfect"
	TypeContact      = "contact-v3-perfect"
	TypeFooter       = "footer-v3-perfect"
)

// Recommendation is a candidate page section prior to final ordering.
type Recommendation struct {
	Type          string       `json:"type" yaml:"type"`
	Variant       string       `json:"variant" yaml:"variant"`
	Reason        string       `json:"reason" yaml:"reason"`
	Priority      int          `json:"priority" yaml:"priority"`
	AlternativeIf *Alternative `json:"alternativeIf,omitempty" yaml:"alternativeIf,omitempty"`
}

// Alternative substitutes a recommendation when Condition holds.
type Alternative struct {
	Condition   Condition      `json:"condition" yaml:"condition"`
	Alternative Recommendation `json:"alternative" yaml:"alternative"`
}

// AvailableData flags which kinds of business content exist.
type AvailableData struct {
	Services       bool `json:"services" yaml:"services"`
	Pricing        bool `json:"pricing" yaml:"pricing"`
	Portfolio      bool `json:"portfolio" yaml:"portfolio"`
	Testimonials   bool `json:"testimonials" yaml:"testimonials"`
	Team           bool `json:"team" yaml:"team"`
	Certifications bool `json:"certifications" yaml:"certifications"`
	Process        bool `json:"process" yaml:"process"`
	FAQ            bool `json:"faq" yaml:"faq"`
	Location       bool `json:"location" yaml:"location"`
	Emergency      bool `json:"emergency" yaml:"emergency"`
}

// BusinessType keys the rule catalog. Values outside the known set are valid
// and contribute no business-specific blocks.
type BusinessType string

const (
	Plombier    BusinessType = "plombier"
	Electricien BusinessType = "electricien"
	Menuisier   BusinessType = "menuisier"
	Jardinier   BusinessType = "jardinier"
)

// Criteria is the input to block selection.
type Criteria struct {
	AvailableData           AvailableData `json:"availableData" yaml:"availableData"`
	BusinessType            BusinessType  `json:"businessType" yaml:"businessType"`
	BusinessCharacteristics []string      `json:"businessCharacteristics" yaml:"businessCharacteristics"`
	AIPriorities            []string      `json:"aiPriorities" yaml:"aiPriorities"`
}

// Business characteristic and AI priority tags consulted by the selector.
// Both sets are open; unknown tags are carried and ignored.
const (
	CharacteristicPremium = "premium"
	CharacteristicModern  = "modern"
	CharacteristicUrgency = "urgency"
	CharacteristicMinimal = "minimal"

	PriorityConfiance    = "confiance"
	PriorityTransparence = "transparence"
)

func (c Criteria) hasCharacteristic(tag string) bool {
	return contains(c.BusinessCharacteristics, tag)
}

func (c Criteria) hasPriority(tag string) bool {
	return contains(c.AIPriorities, tag)
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

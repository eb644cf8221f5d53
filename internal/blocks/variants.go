package blocks

// HeaderVariant picks the header style. Tests run in order; first match wins.
func HeaderVariant(c Criteria) string {
	switch {
	case c.hasCharacteristic(CharacteristicPremium):
		return "elegant-minimal"
	case c.hasCharacteristic(CharacteristicModern):
		return "futuristic"
	case c.hasCharacteristic(CharacteristicUrgency):
		return "sticky-transparent"
	default:
		return "classic-professional"
	}
}

// ContactVariant picks the contact block style.
func ContactVariant(c Criteria) string {
	switch {
	case c.AvailableData.Location:
		return "split-map"
	case c.hasCharacteristic(CharacteristicUrgency):
		return "emergency-form"
	case c.hasCharacteristic(CharacteristicPremium):
		return "elegant-form"
	default:
		return "simple-form"
	}
}

// FooterVariant picks the footer style.
func FooterVariant(c Criteria) string {
	switch {
	case c.AvailableData.Certifications && c.AvailableData.Location:
		return "mega-footer"
	case c.hasCharacteristic(CharacteristicMinimal):
		return "minimal-footer"
	default:
		return "corporate"
	}
}

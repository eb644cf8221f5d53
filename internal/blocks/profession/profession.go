// Package profession injects fully parameterized, trade-specific content blocks
// at fixed page positions.
package profession

import "sitestudio-backend/internal/blocks"

// Block is a content block with a complete prop payload, placed by position
// rather than by priority.
type Block struct {
	Type               string         `json:"type" yaml:"type"`
	Variant            string         `json:"variant" yaml:"variant"`
	Position           int            `json:"position" yaml:"position"`
	Props              map[string]any `json:"props" yaml:"props"`
	ProfessionSpecific bool           `json:"professionSpecific" yaml:"professionSpecific"`
}

// Trades handled by the injector.
const (
	Plombier     = "plombier"
	Electricien  = "electricien"
	Menuisier    = "menuisier"
	Jardinier    = "jardinier"
	Paysagiste   = "paysagiste"
	Macon        = "macon"
	Peintre      = "peintre"
	Carreleur    = "carreleur"
	Couvreur     = "couvreur"
	Serrurier    = "serrurier"
	Chauffagiste = "chauffagiste"
)

type builder func(FormData) []Block

var builders = map[string]builder{
	Plombier:     plumberBlocks,
	Electricien:  electricianBlocks,
	Menuisier:    carpenterBlocks,
	Jardinier:    gardenerBlocks,
	Paysagiste:   gardenerBlocks,
	Macon:        masonBlocks,
	Peintre:      painterBlocks,
	Carreleur:    tilerBlocks,
	Couvreur:     rooferBlocks,
	Serrurier:    locksmithBlocks,
	Chauffagiste: heatingBlocks,
}

// Trades lists the business types with profession-specific blocks.
func Trades() []string {
	return []string{
		Carreleur, Chauffagiste, Couvreur, Electricien, Jardinier, Macon,
		Menuisier, Paysagiste, Peintre, Plombier, Serrurier,
	}
}

// RecommendedBlocks returns the extra blocks for businessType given the profile
// form. aiAnalysis is accepted for callers that have one; no rule reads it yet.
// Unknown trades yield an empty slice.
func RecommendedBlocks(businessType string, aiAnalysis any, form FormData) []Block {
	_ = aiAnalysis
	build, ok := builders[businessType]
	if !ok {
		return []Block{}
	}
	return build(form)
}

func newBlock(typ, variant string, position int, props map[string]any) Block {
	return Block{
		Type:               typ,
		Variant:            variant,
		Position:           position,
		Props:              props,
		ProfessionSpecific: true,
	}
}

type feature struct {
	icon, title, description string
}

func features(items ...feature) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, f := range items {
		out = append(out, map[string]any{"icon": f.icon, "title": f.title, "description": f.description})
	}
	return out
}

func plumberBlocks(form FormData) []Block {
	var out []Block
	if form.Availability.Is24x7 {
		out = append(out, newBlock(blocks.TypeContent, "emergency-services", 3, form.withPhone(map[string]any{
			"title": "Urgences Plomberie 24/7",
			"emergencyTypes": []map[string]any{
				{"icon": "💧", "title": "Fuite d'eau", "time": "30min"},
				{"icon": "🚿", "title": "Débouchage urgent", "time": "45min"},
				{"icon": "🔥", "title": "Chaudière en panne", "time": "1h"},
				{"icon": "🚰", "title": "Rupture canalisation", "time": "30min"},
			},
			"guaranteedResponse": "30 minutes",
		})))
	}
	out = append(out, newBlock(blocks.TypeContent, "intervention-process", 5, map[string]any{
		"title": "Notre processus d'intervention",
		"steps": []map[string]any{
			{"number": "1", "title": "Appel", "description": "Diagnostic par téléphone"},
			{"number": "2", "title": "Déplacement", "description": "Intervention rapide"},
			{"number": "3", "title": "Devis", "description": "Gratuit et transparent"},
			{"number": "4", "title": "Réparation", "description": "Travaux garantis"},
		},
	}))
	return out
}

func electricianBlocks(form FormData) []Block {
	out := []Block{
		newBlock(blocks.TypeFeatures, "safety-certifications", 3, map[string]any{
			"title": "Sécurité & Conformité",
			"features": features(
				feature{"⚡", "Norme NF C 15-100", "Installation aux normes"},
				feature{"🛡️", "Consuel", "Attestation de conformité"},
				feature{"🔒", "Garantie décennale", "Protection totale"},
				feature{"✅", "Diagnostic gratuit", "Vérification complète"},
			),
		}),
	}
	if form.offersService("domotique") {
		out = append(out, newBlock(blocks.TypeContent, "smart-home", 6, map[string]any{
			"title":    "Maison Connectée",
			"features": []string{"Éclairage intelligent", "Volets automatisés", "Chauffage connecté", "Sécurité domotique"},
			"brands":   []string{"Somfy", "Legrand", "Schneider", "Delta Dore"},
		}))
	}
	return out
}

func carpenterBlocks(FormData) []Block {
	return []Block{
		newBlock(blocks.TypeContent, "materials-showcase", 4, map[string]any{
			"title": "Matériaux & Essences",
			"materials": []map[string]any{
				{"name": "Chêne", "properties": []string{"Robuste", "Noble", "Durable"}},
				{"name": "Hêtre", "properties": []string{"Clair", "Résistant", "Moderne"}},
				{"name": "Pin", "properties": []string{"Économique", "Chaleureux", "Polyvalent"}},
				{"name": "Exotiques", "properties": []string{"Unique", "Résistant", "Prestigieux"}},
			},
			"certifications": []string{"PEFC", "FSC", "Bois français"},
		}),
		newBlock(blocks.TypeContent, "creation-process", 5, map[string]any{
			"title": "De l'idée à la réalisation",
			"steps": []map[string]any{
				{"phase": "Conception", "description": "Étude et plans 3D"},
				{"phase": "Sélection", "description": "Choix des matériaux"},
				{"phase": "Fabrication", "description": "Atelier traditionnel"},
				{"phase": "Finition", "description": "Vernis et protection"},
				{"phase": "Installation", "description": "Pose professionnelle"},
			},
		}),
	}
}

func gardenerBlocks(form FormData) []Block {
	season := func(title, icon string, services ...string) map[string]any {
		return map[string]any{"title": title, "services": services, "icon": icon}
	}
	out := []Block{
		newBlock(blocks.TypeServices, "seasonal-services", 4, map[string]any{
			"title": "Services par saison",
			"seasons": map[string]any{
				"spring": season("Printemps", "🌸", "Taille", "Semis", "Préparation sols"),
				"summer": season("Été", "☀️", "Arrosage", "Tonte", "Entretien"),
				"autumn": season("Automne", "🍂", "Ramassage feuilles", "Plantation", "Protection"),
				"winter": season("Hiver", "❄️", "Élagage", "Protection gel", "Préparation"),
			},
		}),
	}
	if form.EcoFriendly || form.hasLabel("eco") {
		out = append(out, newBlock(blocks.TypeFeatures, "eco-approach", 5, map[string]any{
			"title": "Jardinage Écologique",
			"features": features(
				feature{"🌱", "Zéro pesticide", "Protection naturelle"},
				feature{"♻️", "Compostage", "Valorisation déchets"},
				feature{"💧", "Récupération eau", "Gestion durable"},
				feature{"🐝", "Biodiversité", "Refuge insectes"},
			),
		}))
	}
	return out
}

func masonBlocks(FormData) []Block {
	return []Block{
		newBlock(blocks.TypeServices, "construction-types", 4, map[string]any{
			"title": "Types de construction",
			"categories": []map[string]any{
				{"title": "Gros œuvre", "services": []string{"Fondations", "Murs porteurs", "Dalles", "Charpente"}},
				{"title": "Second œuvre", "services": []string{"Cloisons", "Enduits", "Isolation", "Carrelage"}},
				{"title": "Rénovation", "services": []string{"Ravalement", "Extension", "Surélévation", "Réhabilitation"}},
			},
		}),
	}
}

func painterBlocks(FormData) []Block {
	return []Block{
		newBlock(blocks.TypeContent, "color-expertise", 4, map[string]any{
			"title": "Expertise Couleurs & Finitions",
			"services": []map[string]any{
				{"type": "Peinture décorative", "techniques": []string{"Patine", "Glacis", "Stuc"}},
				{"type": "Enduits", "techniques": []string{"Tadelakt", "Béton ciré", "Chaux"}},
				{"type": "Papiers peints", "techniques": []string{"Pose", "Raccords", "Panoramiques"}},
			},
			"brands": []string{"Farrow & Ball", "Little Greene", "Tollens", "Zolpan"},
		}),
	}
}

func tilerBlocks(FormData) []Block {
	return []Block{
		newBlock(blocks.TypeContent, "laying-techniques", 4, map[string]any{
			"title": "Techniques de pose",
			"techniques": []map[string]any{
				{"name": "Pose droite", "description": "Classique et intemporelle"},
				{"name": "Pose diagonale", "description": "Agrandit visuellement"},
				{"name": "Pose décalée", "description": "Style parquet"},
				{"name": "Opus romain", "description": "Mélange de formats"},
				{"name": "Mosaïque", "description": "Créations personnalisées"},
			},
			"materials": []string{"Grès cérame", "Faïence", "Pierre naturelle", "Mosaïque"},
		}),
	}
}

func rooferBlocks(form FormData) []Block {
	out := []Block{
		newBlock(blocks.TypeServices, "roofing-types", 4, map[string]any{
			"title": "Types de couverture",
			"roofTypes": []map[string]any{
				{"type": "Tuiles", "materials": []string{"Terre cuite", "Béton", "Ardoise"}},
				{"type": "Zinc", "advantages": []string{"Durabilité", "Étanchéité", "Moderne"}},
				{"type": "Ardoise", "advantages": []string{"Prestige", "Longévité", "Tradition"}},
				{"type": "Végétalisée", "advantages": []string{"Écologique", "Isolation", "Esthétique"}},
			},
			"services": []string{"Réfection", "Isolation", "Zinguerie", "Velux"},
		}),
	}
	if form.Availability.Is24x7 {
		out = append(out, newBlock(blocks.TypeCTA, "roof-emergency", 3, form.withPhone(map[string]any{
			"title":       "Urgence Toiture 24/7",
			"subtitle":    "Bâchage et sécurisation rapide",
			"emergencies": []string{"Tempête", "Fuite", "Tuiles cassées", "Infiltrations"},
		})))
	}
	return out
}

func locksmithBlocks(FormData) []Block {
	return []Block{
		newBlock(blocks.TypeServices, "security-services", 3, map[string]any{
			"title": "Sécurité & Dépannage",
			"categories": []map[string]any{
				{"title": "Urgences 24/7", "services": []string{"Ouverture porte", "Remplacement serrure", "Extraction clé"}, "icon": "🚨"},
				{"title": "Sécurisation", "services": []string{"Blindage", "Serrure multipoints", "Cylindre haute sécurité"}, "icon": "🔒"},
				{"title": "Contrôle accès", "services": []string{"Interphone", "Digicode", "Badge RFID"}, "icon": "🎛️"},
			},
			"certifications": []string{"A2P", "NF", "Assurance agréé"},
		}),
	}
}

func heatingBlocks(FormData) []Block {
	return []Block{
		newBlock(blocks.TypeServices, "heating-systems", 4, map[string]any{
			"title": "Solutions de chauffage",
			"systems": []map[string]any{
				{"type": "Chaudière gaz", "benefits": []string{"Économique", "Performant", "Compact"}, "brands": []string{"Viessmann", "Vaillant", "De Dietrich"}},
				{"type": "Pompe à chaleur", "benefits": []string{"Écologique", "Économies", "Aides État"}, "brands": []string{"Daikin", "Mitsubishi", "Atlantic"}},
				{"type": "Chaudière fioul", "benefits": []string{"Autonomie", "Puissance", "Fiabilité"}, "brands": []string{"Bosch", "Chappée", "Saint Roch"}},
			},
			"services": []string{"Installation", "Entretien", "Dépannage", "Contrat maintenance"},
		}),
		newBlock(blocks.TypeContent, "energy-savings", 5, map[string]any{
			"title": "Économies d'énergie",
			"solutions": []map[string]any{
				{"title": "Thermostat connecté", "savings": "Jusqu'à 25%"},
				{"title": "Isolation tuyaux", "savings": "Jusqu'à 10%"},
				{"title": "Désembouage", "savings": "Jusqu'à 15%"},
				{"title": "Chaudière condensation", "savings": "Jusqu'à 30%"},
			},
			"certifications": []string{"RGE", "QualiPAC", "QualiBat"},
		}),
	}
}

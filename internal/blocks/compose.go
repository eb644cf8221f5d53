package blocks

// ComposeOptions tunes Compose.
type ComposeOptions struct {
	// Alternatives is the number of alternative structures to derive; 0 disables them.
	Alternatives int  `json:"alternatives" yaml:"alternatives"`
	Mobile       bool `json:"mobile" yaml:"mobile"`
}

// Composition is a selected structure plus its optional alternatives.
type Composition struct {
	Blocks       []Recommendation   `json:"blocks" yaml:"blocks"`
	Alternatives [][]Recommendation `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// Compose selects blocks for c, then applies the mobile pass and derives
// alternatives from the resulting base when requested.
func Compose(c Criteria, opts ComposeOptions) Composition {
	selected := SelectOptimalBlocks(c)
	if opts.Mobile {
		selected = OptimizeForMobile(selected)
	}
	out := Composition{Blocks: selected}
	if opts.Alternatives > 0 {
		out.Alternatives = GenerateAlternativeStructures(selected, opts.Alternatives)
	}
	return out
}

package blocks

const mobileSuffix = " (optimisé mobile)"

type blockKey struct {
	typ     string
	variant string
}

var mobileSwaps = map[blockKey]string{
	{TypeHero, "fullscreen-video"}: "simple-centered",
	{TypeGallery, "masonry-flow"}:  "swiper-mobile",
}

// OptimizeForMobile returns a copy of items with heavy variants swapped for
// mobile-friendly ones. Order is preserved and items is left untouched.
func OptimizeForMobile(items []Recommendation) []Recommendation {
	out := make([]Recommendation, len(items))
	for i, item := range items {
		if variant, ok := mobileSwaps[blockKey{item.Type, item.Variant}]; ok {
			item.Variant = variant
			item.Reason += mobileSuffix
		}
		out[i] = item
	}
	return out
}

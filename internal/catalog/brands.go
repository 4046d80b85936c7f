// internal/catalog/brands.go
package catalog

import "strings"

// BrandID identifies a cruise line out of the fixed enumerated set.
type BrandID string

const (
	BrandVirgin    BrandID = "virgin"
	BrandRoyal     BrandID = "royal"
	BrandCarnival  BrandID = "carnival"
	BrandCelebrity BrandID = "celebrity"
	BrandNorwegian BrandID = "norwegian"
	BrandDisney    BrandID = "disney"

	// BrandOther is the sentinel for line names matching no known pattern.
	BrandOther BrandID = "other"
)

// Brand is one entry of the static brand-picker table.
type Brand struct {
	ID       BrandID `json:"id"`
	Name     string  `json:"name"`
	Slogan   string  `json:"slogan"`
	Color    string  `json:"color"`
	ImageURL string  `json:"image"`
}

var brandTable = []Brand{
	{ID: BrandVirgin, Name: "Virgin Voyages", Slogan: "Adults Only • Rebellious Luxury", Color: "#E10A1D", ImageURL: "https://images.unsplash.com/photo-1548574505-5e239809ee19?auto=format&fit=crop&q=80&w=600"},
	{ID: BrandRoyal, Name: "Royal Caribbean", Slogan: "Innovation at Sea", Color: "#005DAA", ImageURL: "https://images.unsplash.com/photo-1559599238-308793637120?auto=format&fit=crop&q=80&w=600"},
	{ID: BrandCarnival, Name: "Carnival", Slogan: "Choose Fun", Color: "#E31D2B", ImageURL: "https://images.unsplash.com/photo-1599640845513-26224d7ce400?auto=format&fit=crop&q=80&w=600"},
	{ID: BrandCelebrity, Name: "Celebrity", Slogan: "Exquisite Modern Luxury", Color: "#1A1F71", ImageURL: "https://images.unsplash.com/photo-1605281317010-fe5ffe79b9b7?auto=format&fit=crop&q=80&w=600"},
	{ID: BrandNorwegian, Name: "Norwegian", Slogan: "Feel Free", Color: "#00A3E0", ImageURL: "https://images.unsplash.com/photo-1621255535314-d830504746d8?auto=format&fit=crop&q=80&w=600"},
	{ID: BrandDisney, Name: "Disney", Slogan: "Magic at Sea", Color: "#192C5E", ImageURL: "https://images.unsplash.com/photo-1512101137015-8495a8647565?auto=format&fit=crop&q=80&w=600"},
}

// Brands returns the brand-picker table in display order.
func Brands() []Brand {
	out := make([]Brand, len(brandTable))
	copy(out, brandTable)
	return out
}

// BrandByID looks up a brand from the static table.
func BrandByID(id BrandID) (Brand, bool) {
	for _, b := range brandTable {
		if b.ID == id {
			return b, true
		}
	}
	return Brand{}, false
}

// brandPatterns is the ordered substring pattern set for line-name
// inference. Aliases of the same brand (norwegian, ncl) sit next to each
// other; first match wins.
var brandPatterns = []struct {
	pattern string
	id      BrandID
}{
	{"virgin", BrandVirgin},
	{"royal", BrandRoyal},
	{"carnival", BrandCarnival},
	{"celebrity", BrandCelebrity},
	{"norwegian", BrandNorwegian},
	{"ncl", BrandNorwegian},
	{"disney", BrandDisney},
}

// InferBrand maps a free-text cruise line name onto a BrandID by
// case-insensitive substring matching, falling back to BrandOther.
func InferBrand(lineName string) BrandID {
	lower := strings.ToLower(strings.TrimSpace(lineName))
	if lower == "" {
		return BrandOther
	}
	for _, p := range brandPatterns {
		if strings.Contains(lower, p.pattern) {
			return p.id
		}
	}
	return BrandOther
}

// internal/catalog/models.go
package catalog

// Voyage is the canonical display record for a cruise sailing. Records are
// immutable after normalization and held for the session.
type Voyage struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	BrandID       BrandID `json:"brandId"`
	ShipName      string  `json:"ship"`
	PriceAmount   string  `json:"price"`
	NightsCount   int     `json:"nights"`
	DeparturePort string  `json:"departurePort"`

	// ItineraryPorts is the full ordered stop list for display, repeated
	// sea-day style entries included. Generic markers are filtered only when
	// the list is used as a matching key set.
	ItineraryPorts []string `json:"itinerary"`

	// PortKeywords overrides ItineraryPorts for activity matching when
	// non-empty.
	PortKeywords []string `json:"portKeywords,omitempty"`

	ImageURL        string          `json:"imageUrl,omitempty"`
	DescriptionHTML string          `json:"descriptionHtml,omitempty"`
	AffiliateLink   string          `json:"affiliateLink"`
	AccessoryItems  []AccessoryItem `json:"accessoryItems"`
}

// AccessoryItem is one affiliate product parsed from the embedded
// amazon_json blob on a voyage record.
type AccessoryItem struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// PortUnknown is the sentinel port for activities whose location could not
// be resolved. Unresolved activities never match a voyage.
const PortUnknown = "Destination"

// Activity is the canonical display record for a bookable shore excursion.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Port        string `json:"port"`
	PriceAmount string `json:"price"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Link        string `json:"link"`
}

// Essential is a retail affiliate product unrelated to a specific voyage.
type Essential struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PriceAmount string `json:"price"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Link        string `json:"link"`
}

// Catalog holds one session's normalized collections.
type Catalog struct {
	Voyages    []Voyage
	Activities []Activity
	Essentials []Essential
}

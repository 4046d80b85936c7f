// internal/favorites/entry.go
package favorites

import (
	"time"

	"cruise-explorer/internal/catalog"
)

// Kind classifies a saved entry. Identity is the (kind, id) pair, so a cruise
// and an activity sharing a numeric id never collide.
type Kind string

const (
	KindCruise    Kind = "cruise"
	KindActivity  Kind = "activity"
	KindEssential Kind = "essential"
)

// Entry is the flattened saved-item snapshot. Fields are captured at save
// time; a later catalog refresh does not rewrite saved entries.
type Entry struct {
	ID       string    `json:"id"`
	Kind     Kind      `json:"kind"`
	Title    string    `json:"title"`
	Ship     string    `json:"ship,omitempty"`
	Port     string    `json:"port,omitempty"`
	Price    string    `json:"price"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Link     string    `json:"link,omitempty"`
	SavedAt  time.Time `json:"savedAt"`
}

func (e Entry) key() string {
	return string(e.Kind) + "/" + e.ID
}

// VoyageEntry flattens a voyage into its saved form.
func VoyageEntry(v catalog.Voyage) Entry {
	return Entry{
		ID:       v.ID,
		Kind:     KindCruise,
		Title:    v.Title,
		Ship:     v.ShipName,
		Port:     v.DeparturePort,
		Price:    v.PriceAmount,
		ImageURL: v.ImageURL,
		Link:     v.AffiliateLink,
	}
}

// ActivityEntry flattens an activity into its saved form.
func ActivityEntry(a catalog.Activity) Entry {
	return Entry{
		ID:       a.ID,
		Kind:     KindActivity,
		Title:    a.Title,
		Port:     a.Port,
		Price:    a.PriceAmount,
		ImageURL: a.ImageURL,
		Link:     a.Link,
	}
}

// EssentialEntry flattens an essential into its saved form.
func EssentialEntry(e catalog.Essential) Entry {
	return Entry{
		ID:       e.ID,
		Kind:     KindEssential,
		Title:    e.Title,
		Price:    e.PriceAmount,
		ImageURL: e.ImageURL,
		Link:     e.Link,
	}
}

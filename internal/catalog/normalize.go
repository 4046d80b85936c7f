// internal/catalog/normalize.go
package catalog

import (
	"encoding/json"
	"html"
	"regexp"
	"strconv"
	"strings"

	"cruise-explorer/internal/common/logger"
	"cruise-explorer/internal/common/metrics"
	"cruise-explorer/internal/content"
)

// Field defaults applied when source data is absent or malformed. A bad
// optional sub-field degrades that field only, never the record, and never
// the batch.
const (
	DefaultNights = 7
	DefaultPrice  = "0"
	DefaultLink   = "#"
)

// Normalizer maps raw content records into the canonical display shapes.
// The mapping is total: every recognized input shape is enumerated here and
// every output field is populated.
type Normalizer struct {
	logger logger.Logger
}

func NewNormalizer(log logger.Logger) *Normalizer {
	return &Normalizer{
		logger: log.WithFields(map[string]interface{}{"component": "normalizer"}),
	}
}

// Voyages normalizes the cruises collection. Records without a stable id are
// dropped; everything else degrades field by field.
func (n *Normalizer) Voyages(records []content.RawRecord) []Voyage {
	out := make([]Voyage, 0, len(records))
	for _, rec := range records {
		id := strings.TrimSpace(rec.ID.String())
		if id == "" {
			n.logger.Warn("dropping voyage record without id", nil)
			continue
		}

		v := Voyage{
			ID:              id,
			Title:           normalizeTitle(rec.Title.Rendered),
			BrandID:         InferBrand(rec.ACF.CruiseLine.String()),
			ShipName:        defaultString(rec.ACF.ShipName.String(), "Cruise Ship"),
			PriceAmount:     n.price(string(content.CollectionCruises), rec.ACF.Price.String()),
			NightsCount:     n.nights(rec.ACF.Nights.String()),
			DeparturePort:   strings.TrimSpace(rec.ACF.DeparturePort.String()),
			ItineraryPorts:  ParsePortList(rec.ACF.PortsOfCall.String()),
			PortKeywords:    ParsePortList(rec.ACF.PortKeywords.String()),
			ImageURL:        resolveImage(rec),
			DescriptionHTML: rec.ACF.Description.String(),
			AffiliateLink:   defaultString(rec.ACF.AffiliateLink.String(), DefaultLink),
			AccessoryItems:  n.accessories(id, rec.ACF.AmazonJSON.String()),
		}

		out = append(out, v)
		metrics.ContentRecordsNormalized.WithLabelValues(string(content.CollectionCruises)).Inc()
	}
	return out
}

// Activities normalizes the shore activities collection.
func (n *Normalizer) Activities(records []content.RawRecord) []Activity {
	out := make([]Activity, 0, len(records))
	for _, rec := range records {
		id := strings.TrimSpace(rec.ID.String())
		if id == "" {
			n.logger.Warn("dropping activity record without id", nil)
			continue
		}

		title := normalizeTitle(rec.Title.Rendered)
		a := Activity{
			ID:          id,
			Title:       title,
			Port:        resolveActivityPort(rec.ACF.PortName.String(), title),
			PriceAmount: n.price(string(content.CollectionActivities), rec.ACF.Price.String()),
			ImageURL:    resolveImage(rec),
			Link:        defaultString(rec.Link.String(), DefaultLink),
		}

		out = append(out, a)
		metrics.ContentRecordsNormalized.WithLabelValues(string(content.CollectionActivities)).Inc()
	}
	return out
}

// Essentials normalizes the retail essentials collection. No derivation
// beyond defaults.
func (n *Normalizer) Essentials(records []content.RawRecord) []Essential {
	out := make([]Essential, 0, len(records))
	for _, rec := range records {
		id := strings.TrimSpace(rec.ID.String())
		if id == "" {
			n.logger.Warn("dropping essential record without id", nil)
			continue
		}

		e := Essential{
			ID:          id,
			Title:       normalizeTitle(rec.Title.Rendered),
			PriceAmount: n.price(string(content.CollectionEssentials), rec.ACF.Price.String()),
			ImageURL:    resolveImage(rec),
			Link:        defaultString(rec.Link.String(), DefaultLink),
		}

		out = append(out, e)
		metrics.ContentRecordsNormalized.WithLabelValues(string(content.CollectionEssentials)).Inc()
	}
	return out
}

// Snapshot normalizes all three settled collections of a session.
func (n *Normalizer) Snapshot(snap content.Snapshot) Catalog {
	return Catalog{
		Voyages:    n.Voyages(snap.Cruises.Records),
		Activities: n.Activities(snap.Activities.Records),
		Essentials: n.Essentials(snap.Essentials.Records),
	}
}

// ==========================
// Field-level normalization
// ==========================

func normalizeTitle(raw string) string {
	title := strings.TrimSpace(html.UnescapeString(raw))
	if title == "" {
		return "Untitled"
	}
	return title
}

func defaultString(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}

// NormalizePrice strips a leading currency symbol and keeps the remainder as
// the display price string. Absent, unparseable, or negative input becomes
// "0" so no NaN-style value ever reaches display.
func NormalizePrice(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultPrice
	}
	numeric := strings.ReplaceAll(s, ",", "")
	val, err := strconv.ParseFloat(numeric, 64)
	if err != nil || val < 0 {
		return DefaultPrice
	}
	return s
}

func (n *Normalizer) price(collection, raw string) string {
	price := NormalizePrice(raw)
	if price == DefaultPrice && strings.TrimSpace(raw) != "" && strings.TrimSpace(raw) != "$0" && strings.TrimSpace(raw) != "0" {
		metrics.NormalizeFieldFallbacks.WithLabelValues(collection, "price").Inc()
	}
	return price
}

// NormalizeNights parses the nights field, defaulting to DefaultNights when
// absent, non-numeric, or negative.
func NormalizeNights(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DefaultNights
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil || val < 0 {
		return DefaultNights
	}
	return int(val)
}

func (n *Normalizer) nights(raw string) int {
	nights := NormalizeNights(raw)
	if nights == DefaultNights && strings.TrimSpace(raw) != "" && strings.TrimSpace(raw) != "7" {
		metrics.NormalizeFieldFallbacks.WithLabelValues(string(content.CollectionCruises), "nights").Inc()
	}
	return nights
}

// breakTags matches the HTML line-break variants a port list may arrive with.
var breakTags = regexp.MustCompile(`(?i)<br\s*/?>`)

// ParsePortList splits a delimited port string into ordered trimmed names.
// Break tags and newlines collapse into the comma delimiter class; empty
// segments are dropped; duplicates are preserved (the itinerary display must
// show repeated sea-day entries in sequence).
func ParsePortList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	s := breakTags.ReplaceAllString(raw, ",")
	s = strings.NewReplacer("\r\n", ",", "\n", ",", "\r", ",").Replace(s)

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// resolveImage tries the image candidates in fixed priority order: explicit
// URL string, nested object url, embedded media fallback. First non-empty
// wins.
func resolveImage(rec content.RawRecord) string {
	if u := rec.ACF.MainImageURL(); u != "" {
		return u
	}
	if u := strings.TrimSpace(rec.ACF.ImageURL.String()); u != "" {
		return u
	}
	return rec.FeaturedMediaURL()
}

func (n *Normalizer) accessories(id, raw string) []AccessoryItem {
	if strings.TrimSpace(raw) == "" {
		return []AccessoryItem{}
	}
	var items []AccessoryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		n.logger.Warn("malformed accessory blob, degrading to empty", map[string]interface{}{
			"voyageId": id,
			"error":    err.Error(),
		})
		metrics.NormalizeFieldFallbacks.WithLabelValues(string(content.CollectionCruises), "amazon_json").Inc()
		return []AccessoryItem{}
	}
	if items == nil {
		return []AccessoryItem{}
	}
	return items
}

// knownPorts is the fixed vocabulary used to infer an activity's port from
// its title when the explicit tag is missing.
var knownPorts = []string{
	"Nassau",
	"Cozumel",
	"Grand Cayman",
	"Jamaica",
	"Ocho Rios",
	"St. Thomas",
	"San Juan",
	"Roatan",
	"Bimini",
	"Key West",
	"Puerto Plata",
	"CocoCay",
	"Costa Maya",
	"Labadee",
	"Miami",
}

func resolveActivityPort(tagged, title string) string {
	if port := strings.TrimSpace(tagged); port != "" {
		return port
	}
	lowerTitle := strings.ToLower(title)
	for _, port := range knownPorts {
		if strings.Contains(lowerTitle, strings.ToLower(port)) {
			return port
		}
	}
	return PortUnknown
}

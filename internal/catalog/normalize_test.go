// internal/catalog/normalize_test.go
package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cruise-explorer/internal/common/logger"
	"cruise-explorer/internal/content"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestNormalizer(t *testing.T) *Normalizer {
	return NewNormalizer(logger.NewTestLogger(t))
}

func decodeRecord(t *testing.T, raw string) content.RawRecord {
	var rec content.RawRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	return rec
}

// ==========================
// Voyage Normalization Tests
// ==========================

func TestNormalizer_Voyages_Defaults(t *testing.T) {
	n := createTestNormalizer(t)

	rec := decodeRecord(t, `{"id": 42, "title": {"rendered": "Bare Sailing"}, "acf": false}`)
	voyages := n.Voyages([]content.RawRecord{rec})
	require.Len(t, voyages, 1)

	v := voyages[0]
	assert.Equal(t, "42", v.ID)
	assert.Equal(t, "Bare Sailing", v.Title)
	assert.Equal(t, BrandOther, v.BrandID)
	assert.Equal(t, "Cruise Ship", v.ShipName)
	assert.Equal(t, "0", v.PriceAmount)
	assert.Equal(t, 7, v.NightsCount)
	assert.Empty(t, v.ItineraryPorts)
	assert.Empty(t, v.PortKeywords)
	assert.Equal(t, "#", v.AffiliateLink)
	assert.Empty(t, v.AccessoryItems)
}

func TestNormalizer_Voyages_FullRecord(t *testing.T) {
	n := createTestNormalizer(t)

	rec := decodeRecord(t, `{
		"id": "77",
		"title": {"rendered": "Caribbean &amp; Beyond"},
		"acf": {
			"cruise_line": "Royal Caribbean International",
			"ship_name": "Wonder of the Seas",
			"nights": "5",
			"price": "$1,299",
			"departure_port": "Miami",
			"ports_of_call": "Miami<br>Nassau<br/>Sea Day, Cozumel",
			"description": "<p>Sail away.</p>",
			"affiliate_link": "https://example.com/book",
			"main_image": {"url": "https://img.example.com/ship.jpg"}
		}
	}`)

	voyages := n.Voyages([]content.RawRecord{rec})
	require.Len(t, voyages, 1)

	v := voyages[0]
	assert.Equal(t, "77", v.ID)
	assert.Equal(t, "Caribbean & Beyond", v.Title)
	assert.Equal(t, BrandRoyal, v.BrandID)
	assert.Equal(t, "Wonder of the Seas", v.ShipName)
	assert.Equal(t, "1,299", v.PriceAmount)
	assert.Equal(t, 5, v.NightsCount)
	assert.Equal(t, []string{"Miami", "Nassau", "Sea Day", "Cozumel"}, v.ItineraryPorts)
	assert.Equal(t, "https://img.example.com/ship.jpg", v.ImageURL)
	assert.Equal(t, "https://example.com/book", v.AffiliateLink)
}

func TestNormalizer_Voyages_DropsRecordsWithoutID(t *testing.T) {
	n := createTestNormalizer(t)

	withID := decodeRecord(t, `{"id": 1, "title": {"rendered": "Kept"}}`)
	withoutID := decodeRecord(t, `{"title": {"rendered": "Dropped"}}`)

	voyages := n.Voyages([]content.RawRecord{withoutID, withID})
	require.Len(t, voyages, 1)
	assert.Equal(t, "Kept", voyages[0].Title)
}

func TestNormalizer_Voyages_MalformedAccessoryBlob(t *testing.T) {
	n := createTestNormalizer(t)

	rec := decodeRecord(t, `{
		"id": 9,
		"title": {"rendered": "Broken Blob"},
		"acf": {"amazon_json": "{not valid json"}
	}`)

	voyages := n.Voyages([]content.RawRecord{rec})
	require.Len(t, voyages, 1)
	assert.Empty(t, voyages[0].AccessoryItems)
}

func TestNormalizer_Voyages_AccessoryBlobParsed(t *testing.T) {
	n := createTestNormalizer(t)

	rec := decodeRecord(t, `{
		"id": 9,
		"title": {"rendered": "With Gear"},
		"acf": {"amazon_json": "[{\"title\": \"Sunscreen\", \"link\": \"https://amzn.example/s\"}]"}
	}`)

	voyages := n.Voyages([]content.RawRecord{rec})
	require.Len(t, voyages, 1)
	require.Len(t, voyages[0].AccessoryItems, 1)
	assert.Equal(t, "Sunscreen", voyages[0].AccessoryItems[0].Title)
	assert.Equal(t, "https://amzn.example/s", voyages[0].AccessoryItems[0].Link)
}

func TestNormalizer_Voyages_ImagePriority(t *testing.T) {
	n := createTestNormalizer(t)

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "main_image string wins over embedded media",
			raw:      `{"id": 1, "acf": {"main_image": "https://a.example/1.jpg"}, "_embedded": {"wp:featuredmedia": [{"source_url": "https://b.example/2.jpg"}]}}`,
			expected: "https://a.example/1.jpg",
		},
		{
			name:     "main_image object url",
			raw:      `{"id": 1, "acf": {"main_image": {"url": "https://a.example/obj.jpg"}}}`,
			expected: "https://a.example/obj.jpg",
		},
		{
			name:     "embedded media fallback",
			raw:      `{"id": 1, "_embedded": {"wp:featuredmedia": [{"source_url": "https://b.example/2.jpg"}]}}`,
			expected: "https://b.example/2.jpg",
		},
		{
			name:     "no image anywhere",
			raw:      `{"id": 1}`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			voyages := n.Voyages([]content.RawRecord{decodeRecord(t, tt.raw)})
			require.Len(t, voyages, 1)
			assert.Equal(t, tt.expected, voyages[0].ImageURL)
		})
	}
}

// ==========================
// Activity Normalization Tests
// ==========================

func TestNormalizer_Activities_PortResolution(t *testing.T) {
	n := createTestNormalizer(t)

	tests := []struct {
		name         string
		raw          string
		expectedPort string
	}{
		{
			name:         "explicit port tag wins",
			raw:          `{"id": 1, "title": {"rendered": "Nassau Beach Day"}, "acf": {"port_name": "CocoCay"}}`,
			expectedPort: "CocoCay",
		},
		{
			name:         "port inferred from title",
			raw:          `{"id": 2, "title": {"rendered": "Snorkeling in Cozumel"}}`,
			expectedPort: "Cozumel",
		},
		{
			name:         "unresolvable falls back to sentinel",
			raw:          `{"id": 3, "title": {"rendered": "Mystery Adventure"}}`,
			expectedPort: PortUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities := n.Activities([]content.RawRecord{decodeRecord(t, tt.raw)})
			require.Len(t, activities, 1)
			assert.Equal(t, tt.expectedPort, activities[0].Port)
		})
	}
}

// ==========================
// Field Helper Tests
// ==========================

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "dollar prefix stripped", raw: "$499", expected: "499"},
		{name: "already clean", raw: "499", expected: "499"},
		{name: "idempotent on output", raw: "1,299", expected: "1,299"},
		{name: "whitespace trimmed", raw: "  $89  ", expected: "89"},
		{name: "empty defaults", raw: "", expected: "0"},
		{name: "non-numeric defaults", raw: "call for pricing", expected: "0"},
		{name: "negative defaults", raw: "-50", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePrice(tt.raw))
		})
	}
}

func TestNormalizePrice_Idempotent(t *testing.T) {
	once := NormalizePrice("$1,299.50")
	assert.Equal(t, once, NormalizePrice(once))
}

func TestNormalizeNights(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "plain number", raw: "10", expected: 10},
		{name: "empty defaults", raw: "", expected: 7},
		{name: "non-numeric defaults", raw: "a week", expected: 7},
		{name: "negative defaults", raw: "-3", expected: 7},
		{name: "zero is valid", raw: "0", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeNights(tt.raw))
		})
	}
}

func TestParsePortList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "comma separated",
			raw:      "Miami, Nassau, Cozumel",
			expected: []string{"Miami", "Nassau", "Cozumel"},
		},
		{
			name:     "br tags in any casing",
			raw:      "Miami<br>Nassau<BR/>Cozumel<br />Key West",
			expected: []string{"Miami", "Nassau", "Cozumel", "Key West"},
		},
		{
			name:     "newlines",
			raw:      "Miami\nNassau\r\nCozumel",
			expected: []string{"Miami", "Nassau", "Cozumel"},
		},
		{
			name:     "empty segments dropped",
			raw:      "Miami,, ,Nassau,",
			expected: []string{"Miami", "Nassau"},
		},
		{
			name:     "duplicates preserved",
			raw:      "Miami, Sea Day, Sea Day, Nassau",
			expected: []string{"Miami", "Sea Day", "Sea Day", "Nassau"},
		},
		{
			name:     "empty input",
			raw:      "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePortList(tt.raw))
		})
	}
}

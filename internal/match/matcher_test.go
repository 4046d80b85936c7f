// internal/match/matcher_test.go
package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cruise-explorer/internal/catalog"
	"cruise-explorer/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestActivities() []catalog.Activity {
	return []catalog.Activity{
		{ID: "a1", Title: "Atlantis Day Pass", Port: "Nassau"},
		{ID: "a2", Title: "Mayan Ruins Tour", Port: "Cozumel"},
		{ID: "a3", Title: "Magens Bay Beach", Port: "St. Thomas, USVI"},
		{ID: "a4", Title: "Mystery Excursion", Port: catalog.PortUnknown},
		{ID: "a5", Title: "Reef Snorkel", Port: "nassau"},
	}
}

func activityIDs(activities []catalog.Activity) []string {
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return ids
}

// ==========================
// Port Key Set Tests
// ==========================

func TestUniquePorts(t *testing.T) {
	tests := []struct {
		name     string
		voyage   catalog.Voyage
		expected []string
	}{
		{
			name:     "generic markers filtered",
			voyage:   catalog.Voyage{ItineraryPorts: []string{"Miami", "Sea Day", "Nassau", "At Sea", "Disembarkation"}},
			expected: []string{"Miami", "Nassau"},
		},
		{
			name:     "case insensitive dedupe keeps first occurrence",
			voyage:   catalog.Voyage{ItineraryPorts: []string{"Nassau", "NASSAU", "nassau", "Cozumel"}},
			expected: []string{"Nassau", "Cozumel"},
		},
		{
			name: "keyword override preferred over itinerary",
			voyage: catalog.Voyage{
				ItineraryPorts: []string{"Miami", "Nassau"},
				PortKeywords:   []string{"Cozumel"},
			},
			expected: []string{"Cozumel"},
		},
		{
			name:     "all generic yields empty",
			voyage:   catalog.Voyage{ItineraryPorts: []string{"Sea Day", "Cruising", "day at sea"}},
			expected: []string{},
		},
		{
			name:     "empty voyage",
			voyage:   catalog.Voyage{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UniquePorts(tt.voyage))
		})
	}
}

// ==========================
// Matching Tests
// ==========================

func TestMatchActivities(t *testing.T) {
	activities := createTestActivities()

	tests := []struct {
		name        string
		voyage      catalog.Voyage
		expectedIDs []string
	}{
		{
			name:        "direct port match, case insensitive, original order",
			voyage:      catalog.Voyage{ID: "v1", ItineraryPorts: []string{"Nassau", "Cozumel"}},
			expectedIDs: []string{"a1", "a2", "a5"},
		},
		{
			name:        "containment matches qualified port name",
			voyage:      catalog.Voyage{ID: "v2", ItineraryPorts: []string{"St. Thomas"}},
			expectedIDs: []string{"a3"},
		},
		{
			name:        "qualified itinerary matches short activity port",
			voyage:      catalog.Voyage{ID: "v3", ItineraryPorts: []string{"Nassau, Bahamas"}},
			expectedIDs: []string{"a1", "a5"},
		},
		{
			name:        "empty key set matches nothing",
			voyage:      catalog.Voyage{ID: "v4", ItineraryPorts: []string{"Sea Day"}},
			expectedIDs: []string{},
		},
		{
			name:        "no overlap matches nothing",
			voyage:      catalog.Voyage{ID: "v5", ItineraryPorts: []string{"Juneau"}},
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchActivities(tt.voyage, activities)
			assert.Equal(t, tt.expectedIDs, activityIDs(got))
		})
	}
}

func TestMatchActivities_SentinelPortNeverMatches(t *testing.T) {
	activities := []catalog.Activity{
		{ID: "a1", Title: "Unplaced", Port: catalog.PortUnknown},
		{ID: "a2", Title: "Also Unplaced", Port: "destination"},
	}
	// The sentinel would trivially satisfy containment against many port
	// names, so it has to be excluded before the overlap check.
	voyage := catalog.Voyage{ID: "v1", ItineraryPorts: []string{"Destination Cove"}}

	got := MatchActivities(voyage, activities)
	assert.Empty(t, got)
}

func TestMatcher_Relevant_CachesPerVoyage(t *testing.T) {
	m := NewMatcher(logger.NewTestLogger(t))
	activities := createTestActivities()
	voyage := catalog.Voyage{ID: "v1", ItineraryPorts: []string{"Nassau"}}

	first := m.Relevant(voyage, activities)
	require.Equal(t, []string{"a1", "a5"}, activityIDs(first))

	// Second call hits the cache: passing a different activity slice must
	// not change the memoized result for the same voyage id.
	second := m.Relevant(voyage, nil)
	assert.Equal(t, activityIDs(first), activityIDs(second))
}

// internal/match/matcher.go
package match

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"cruise-explorer/internal/catalog"
	"cruise-explorer/internal/common/logger"
)

// genericStops are itinerary markers that describe the voyage rather than a
// place. They are filtered from the matching key set but stay in the display
// itinerary.
var genericStops = map[string]struct{}{
	"sea day":        {},
	"at sea":         {},
	"day at sea":     {},
	"embarkation":    {},
	"disembarkation": {},
	"debarkation":    {},
	"cruising":       {},
}

// Matcher resolves which activities are relevant to a voyage. Results are
// memoized per voyage for the session since the catalog is immutable after
// normalization.
type Matcher struct {
	cache  *gocache.Cache
	logger logger.Logger
}

func NewMatcher(log logger.Logger) *Matcher {
	return &Matcher{
		cache:  gocache.New(gocache.NoExpiration, gocache.NoExpiration),
		logger: log.WithFields(map[string]interface{}{"component": "matcher"}),
	}
}

// Relevant returns the activities whose port overlaps the voyage's port key
// set, in the activities' original order.
func (m *Matcher) Relevant(v catalog.Voyage, activities []catalog.Activity) []catalog.Activity {
	key := "voyage:" + v.ID
	if cached, ok := m.cache.Get(key); ok {
		return cached.([]catalog.Activity)
	}

	matched := MatchActivities(v, activities)
	m.cache.Set(key, matched, gocache.NoExpiration)

	m.logger.Debug("matched activities for voyage", map[string]interface{}{
		"voyageId": v.ID,
		"ports":    len(UniquePorts(v)),
		"matched":  len(matched),
	})

	return matched
}

// MatchActivities is the pure matching pass behind Relevant. A voyage with no
// usable port keys matches nothing.
func MatchActivities(v catalog.Voyage, activities []catalog.Activity) []catalog.Activity {
	ports := UniquePorts(v)
	if len(ports) == 0 {
		return []catalog.Activity{}
	}

	out := make([]catalog.Activity, 0, len(activities))
	for _, a := range activities {
		if strings.EqualFold(strings.TrimSpace(a.Port), catalog.PortUnknown) {
			continue
		}
		for _, port := range ports {
			if portsOverlap(port, a.Port) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// UniquePorts derives the voyage's matching key set: the keyword override
// when present, otherwise the itinerary, with generic markers removed and
// case-insensitive duplicates collapsed to first occurrence.
func UniquePorts(v catalog.Voyage) []string {
	source := v.PortKeywords
	if len(source) == 0 {
		source = v.ItineraryPorts
	}

	seen := make(map[string]struct{}, len(source))
	out := make([]string, 0, len(source))
	for _, port := range source {
		trimmed := strings.TrimSpace(port)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		if _, generic := genericStops[lower]; generic {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

// portsOverlap reports whether two port names refer to the same place.
// Containment runs both directions so "St. Thomas" pairs with
// "St. Thomas, USVI" regardless of which side carries the qualifier.
func portsOverlap(a, b string) bool {
	left := strings.ToLower(strings.TrimSpace(a))
	right := strings.ToLower(strings.TrimSpace(b))
	if left == "" || right == "" {
		return false
	}
	return strings.Contains(left, right) || strings.Contains(right, left)
}

// internal/catalog/filter.go
package catalog

import "strings"

// Filter narrows a voyage list by brand and free-text title search. An empty
// brand matches every brand; an empty query matches every title. Input order
// is preserved and the input slice is never mutated.
func Filter(voyages []Voyage, brand BrandID, query string) []Voyage {
	needle := strings.ToLower(strings.TrimSpace(query))

	out := make([]Voyage, 0, len(voyages))
	for _, v := range voyages {
		if brand != "" && v.BrandID != brand {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(v.Title), needle) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// internal/export/export.go

// Package export renders the saved list as a plain-text summary and wraps it
// in a mailto link for hand-off to the user's mail client. No mail is sent
// from here.
package export

import (
	"net/url"
	"strings"

	"cruise-explorer/internal/favorites"
)

// BuildBody renders the saved entries grouped by kind, preserving insertion
// order within each group. An empty list produces a short placeholder body
// so the link is always well-formed.
func BuildBody(entries []favorites.Entry) string {
	if len(entries) == 0 {
		return "Your list is empty."
	}

	var b strings.Builder
	b.WriteString("My Cruise Explorer List\n")

	writeSection(&b, "Voyages", entries, favorites.KindCruise, func(e favorites.Entry) string {
		line := e.Title
		if e.Ship != "" {
			line += " aboard " + e.Ship
		}
		if e.Port != "" {
			line += " from " + e.Port
		}
		return line + " ($" + e.Price + ")"
	})

	writeSection(&b, "Experiences", entries, favorites.KindActivity, func(e favorites.Entry) string {
		line := e.Title
		if e.Port != "" {
			line += " in " + e.Port
		}
		return line + " ($" + e.Price + ")"
	})

	writeSection(&b, "Essentials", entries, favorites.KindEssential, func(e favorites.Entry) string {
		return e.Title + " ($" + e.Price + ")"
	})

	return b.String()
}

func writeSection(b *strings.Builder, heading string, entries []favorites.Entry, kind favorites.Kind, line func(favorites.Entry) string) {
	wrote := false
	for _, e := range entries {
		if e.Kind != kind {
			continue
		}
		if !wrote {
			b.WriteString("\n" + heading + ":\n")
			wrote = true
		}
		b.WriteString("- " + line(e) + "\n")
	}
}

// MailtoLink builds a recipient-less mailto URL with the subject and body
// percent-encoded. Spaces encode as %20, not +, so mail clients render the
// body correctly.
func MailtoLink(subject, body string) string {
	return "mailto:?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

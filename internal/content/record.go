// internal/content/record.go
package content

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RawRecord is a single post as received from the headless content service.
// Any field may be absent, wrongly typed, or HTML-encoded; decoding is total
// and never fails a record on shape. This is the one place the external
// schema is described; the normalizer consumes these accessors only.
type RawRecord struct {
	ID       FlexString      `json:"id"`
	Title    RenderedText    `json:"title"`
	Link     FlexString      `json:"link"`
	ACF      RawFields       `json:"acf"`
	Embedded json.RawMessage `json:"_embedded"`
}

// RawFields is the custom-field block. WordPress serializes it as false when
// no fields are set, so the unmarshaler tolerates any non-object value.
type RawFields struct {
	CruiseLine    FlexString `json:"cruise_line"`
	ShipName      FlexString `json:"ship_name"`
	Nights        FlexString `json:"nights"`
	Price         FlexString `json:"price"`
	DeparturePort FlexString `json:"departure_port"`
	PortsOfCall   FlexString `json:"ports_of_call"`
	PortKeywords  FlexString `json:"port_keywords"`
	PortName      FlexString `json:"port_name"`
	Description   FlexString `json:"description"`
	AffiliateLink FlexString `json:"affiliate_link"`
	AmazonJSON    FlexString `json:"amazon_json"`
	ImageURL      FlexString `json:"image_url"`

	MainImage json.RawMessage `json:"main_image"`
}

type rawFieldsAlias RawFields

func (f *RawFields) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		*f = RawFields{}
		return nil
	}
	var alias rawFieldsAlias
	if err := json.Unmarshal(trimmed, &alias); err != nil {
		*f = RawFields{}
		return nil
	}
	*f = RawFields(alias)
	return nil
}

// MainImageURL resolves the explicit image candidates in priority order:
// a plain URL string first, then a nested media object's url property.
func (f RawFields) MainImageURL() string {
	trimmed := bytes.TrimSpace(f.MainImage)
	if len(trimmed) == 0 {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return strings.TrimSpace(s)
		}
		return ""
	}
	if trimmed[0] == '{' {
		var obj struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			return strings.TrimSpace(obj.URL)
		}
	}
	return ""
}

// FeaturedMediaURL resolves the embedded media fallback
// (_embedded["wp:featuredmedia"][0].source_url).
func (r RawRecord) FeaturedMediaURL() string {
	if len(r.Embedded) == 0 {
		return ""
	}
	var embedded struct {
		FeaturedMedia []struct {
			SourceURL string `json:"source_url"`
		} `json:"wp:featuredmedia"`
	}
	if err := json.Unmarshal(r.Embedded, &embedded); err != nil {
		return ""
	}
	if len(embedded.FeaturedMedia) == 0 {
		return ""
	}
	return strings.TrimSpace(embedded.FeaturedMedia[0].SourceURL)
}

// RenderedText accepts both the WP shape {"rendered": "..."} and a bare
// string.
type RenderedText struct {
	Rendered string
}

func (t *RenderedText) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		t.Rendered = ""
		return nil
	}
	if trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &t.Rendered)
	}
	var obj struct {
		Rendered string `json:"rendered"`
	}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		t.Rendered = ""
		return nil
	}
	t.Rendered = obj.Rendered
	return nil
}

func (t RenderedText) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rendered string `json:"rendered"`
	}{Rendered: t.Rendered})
}

// FlexString is a string field that tolerates numeric, boolean, null, and
// structured values. Numbers keep their literal text; structured values keep
// their raw JSON so embedded blobs (amazon_json) survive either encoding;
// booleans and null become empty.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*s = ""
		return nil
	}
	switch trimmed[0] {
	case '"':
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			*s = ""
			return nil
		}
		*s = FlexString(str)
	case 't', 'f', 'n':
		*s = ""
	default:
		*s = FlexString(trimmed)
	}
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

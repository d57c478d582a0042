package linkedart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/penwern/curate-museum-crosswalk/pkg/document"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

const irises = `{
  "@context": "https://linked.art/ns/v1/linked-art.json",
  "id": "https://data.getty.edu/museum/collection/object/c88b3df0-de91-4f5b-a9ef-7b2b9a6d8abb",
  "type": "HumanMadeObject",
  "_label": "Irises (label)",
  "classified_as": [
    {"id": "http://vocab.getty.edu/aat/300033618", "_label": "Paintings",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300435444", "_label": "Classification"}]},
    {"id": "http://vocab.getty.edu/aat/300133025", "_label": "works of art"}
  ],
  "identified_by": [
    {"type": "Name", "content": "Irises (alternate)"},
    {"type": "Name", "content": "  Irises  ",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300404670", "_label": "Preferred Term"}]},
    {"type": "Identifier", "content": "90.PA.20",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300312355", "_label": "Accession Number"}]},
    {"type": "Identifier", "content": "826",
     "classified_as": [{"id": "https://data.getty.edu/local/thesaurus/tms-id"}]},
    {"type": "Identifier", "content": "urn:getty-local:idm:object:slug/irises",
     "classified_as": [{"id": "https://data.getty.edu/local/thesaurus/slug-identifier"}]}
  ],
  "referred_to_by": [
    {"type": "LinguisticObject", "content": "Oil on canvas",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300435429"}]},
    {"type": "LinguisticObject", "content": "Painting",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300435443"}]},
    {"type": "LinguisticObject", "content": "Dutch",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300055768"}]},
    {"type": "LinguisticObject", "content": "Saint-Rémy, France",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300435448"}]},
    {"type": "LinguisticObject", "content": "Plain description.",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300080091"}]},
    {"type": "LinguisticObject", "content": "**Rich** description.", "format": "text/markdown",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300080091"}]},
    {"type": "LinguisticObject", "content": "71 x 93 cm (28 x 36 5/8 in.)",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300435430"}],
     "assigned_by": [{"technique": [{"_label": "Overall measurement"}]}]},
    {"type": "LinguisticObject", "content": "Image: 70 x 92 cm",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300435430"}],
     "assigned_by": [{"technique": [{"id": "https://data.getty.edu/local/thesaurus/dimensions-measured-image"}]}]}
  ],
  "dimension": [
    {"type": "Dimension", "value": 710, "unit": {"_label": "millimeters"},
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300055644"}],
     "member_of": [{"_label": "Dimensions Set: Overall"}]},
    {"type": "Dimension", "value": 93, "unit": {"_label": "centimeters"},
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300055647"}],
     "member_of": [{"_label": "Dimensions Set: Overall"}]},
    {"type": "Dimension", "value": 28, "unit": {"_label": "inches"},
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300055644"}],
     "member_of": [{"_label": "Dimensions Set: Framed"}]},
    {"type": "Dimension", "value": "n/a", "unit": {"_label": "centimeters"},
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300055647"}]},
    {"type": "Dimension", "value": 3, "unit": {"_label": "centimeters"},
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300404439"}]}
  ],
  "carries": [
    {"type": "LinguisticObject", "content": "Vincent",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300028705"}]},
    {"type": "LinguisticObject", "content": " ",
     "classified_as": [{"id": "http://vocab.getty.edu/aat/300435414"}]}
  ],
  "produced_by": {
    "type": "Production",
    "carried_out_by": [
      {"id": "https://data.getty.edu/museum/collection/person/f4806477-b058-4852-88ae-852a99465249",
       "_label": "Vincent van Gogh",
       "referred_to_by": [{"content": "Artist",
         "classified_as": [{"id": "https://data.getty.edu/local/thesaurus/producer-role-statement"}]}]}
    ],
    "referred_to_by": [
      {"content": "Dutch, 1853 - 1890",
       "classified_as": [{"id": "https://data.getty.edu/local/thesaurus/nationality-and-dates"}]},
      {"content": "Post-Impressionist painter",
       "classified_as": [{"id": "https://data.getty.edu/local/thesaurus/producer-description"}]}
    ],
    "timespan": {
      "identified_by": [{"content": ""}, {"content": "1889"}],
      "begin_of_the_begin": "1889-01-01T00:00:00",
      "end_of_the_end": "1889-12-31T23:59:59"
    }
  },
  "current_keeper": [{"_label": "Paintings Department"}],
  "current_location": {"identified_by": [{"content": "Gallery W204"}]},
  "subject_of": [
    {"id": "https://www.getty.edu/art/collection/object/103JNH"},
    {"id": "https://media.getty.edu/iiif/manifest/5b2d6a62-6b1a-4bd0-9b5c-41dd3b1bfa1a"}
  ],
  "representation": [{"id": "https://media.getty.edu/iiif/image/abc/full/full/0/default.jpg"}],
  "subject_to": [
    {"type": "Right", "classified_as": [{"id": "http://creativecommons.org/publicdomain/zero/1.0/"}]},
    {"type": "Right",
     "classified_as": [{"id": "https://data.getty.edu/local/thesaurus/rights-statement"}],
     "referred_to_by": [{"content": "No Copyright - United States"}]}
  ]
}`

func convert(t *testing.T, s string) *metadata.Artwork {
	t.Helper()
	doc, err := document.ParseJSON([]byte(s))
	if err != nil {
		t.Fatalf("Error parsing fixture: %v", err)
	}
	a, err := Convert(doc)
	if err != nil {
		t.Fatalf("Unexpected conversion error: %v", err)
	}
	return a
}

func TestConvertScalars(t *testing.T) {
	a := convert(t, irises)

	tests := []struct {
		field string
		got   string
		want  string
	}{
		{"id", a.ID, "c88b3df0-de91-4f5b-a9ef-7b2b9a6d8abb"},
		{"source", a.Source, "linked_art"},
		{"title", a.Title, "Irises"},
		{"classification", a.Classification, "Paintings"},
		{"object_type", a.ObjectType, "Painting"},
		{"medium", a.Medium, "Oil on canvas"},
		{"culture", a.Culture, "Dutch"},
		{"place_created", a.PlaceCreated, "Saint-Rémy, France"},
		{"description", a.Description, "**Rich** description."},
		{"date_display", a.DateDisplay, "1889"},
		{"department", a.Department, "Paintings Department"},
		{"current_location", a.CurrentLocation, "Gallery W204"},
		{"source_url", a.SourceURL, "https://www.getty.edu/art/collection/object/103JNH"},
		{"manifest_url", a.ManifestURL, "https://media.getty.edu/iiif/manifest/5b2d6a62-6b1a-4bd0-9b5c-41dd3b1bfa1a"},
		{"image_url", a.ImageURL, "https://media.getty.edu/iiif/image/abc/full/full/0/default.jpg"},
		{"rights", a.Rights, "No Copyright - United States"},
		{"rights_url", a.RightsURL, CC0},
		{"accession_number", a.Identifiers["accession_number"], "90.PA.20"},
		{"tms_id", a.Identifiers["tms_id"], "826"},
		{"slug", a.Identifiers["slug"], "irises"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, tt.got)
			}
		})
	}

	if a.DateBegin == nil || *a.DateBegin != 1889 || a.DateEnd == nil || *a.DateEnd != 1889 {
		t.Errorf("Expected date range 1889-1889, got %v-%v", a.DateBegin, a.DateEnd)
	}
	if a.Extra["timespan_begin"] != "1889-01-01T00:00:00" {
		t.Errorf("Expected verbatim timespan begin, got %v", a.Extra["timespan_begin"])
	}
	if a.IsPublicDomain == nil || !*a.IsPublicDomain {
		t.Error("Expected public domain flag to be true")
	}
	if len(a.Signatures) != 1 || a.Signatures[0] != "Vincent" {
		t.Errorf("Expected one signature, got %v", a.Signatures)
	}
	if a.Inscriptions != nil {
		t.Errorf("Expected blank inscriptions to be omitted, got %v", a.Inscriptions)
	}
}

func TestConvertCreator(t *testing.T) {
	a := convert(t, irises)
	if a.Creator == nil {
		t.Fatal("Expected a creator")
	}
	want := metadata.Artist{
		Name:        "Vincent van Gogh",
		Role:        "Artist",
		Nationality: "Dutch, 1853 - 1890",
		Description: "Post-Impressionist painter",
		ID:          "f4806477-b058-4852-88ae-852a99465249",
	}
	if *a.Creator != want {
		t.Errorf("Expected %+v, got %+v", want, *a.Creator)
	}
	if len(a.Contributors) != 1 {
		t.Errorf("Expected one contributor, got %d", len(a.Contributors))
	}
}

func TestConvertDimensions(t *testing.T) {
	a := convert(t, irises)

	overall, ok := a.Dimensions["overall"]
	if !ok {
		t.Fatalf("Expected overall set, got %v", a.Dimensions)
	}
	if overall.Height == nil || *overall.Height != 71 {
		t.Errorf("Expected height 71 cm from 710 mm, got %v", overall.Height)
	}
	if overall.Width == nil || *overall.Width != 93 {
		t.Errorf("Expected width 93, got %v", overall.Width)
	}
	if overall.UnitLabel != "cm" || overall.Display != "71 x 93 cm (28 x 36 5/8 in.)" {
		t.Errorf("Unexpected overall set %+v", overall)
	}

	image, ok := a.Dimensions["image"]
	if !ok || image.Display != "Image: 70 x 92 cm" || image.Height != nil {
		t.Errorf("Expected display-only image set, got %+v", image)
	}

	// Inches cannot be converted, so the framed set has no values at all.
	if framed, ok := a.Dimensions["framed"]; ok {
		t.Errorf("Expected unconvertible set to be omitted, got %+v", framed)
	}
	if _, ok := a.Dimensions["default"]; ok {
		t.Error("Expected malformed value to be dropped without creating a set")
	}
}

func TestPreferredTermTieBreak(t *testing.T) {
	docs := []string{
		`{"id": "x/1", "identified_by": [
		  {"type": "Name", "content": "Plain"},
		  {"type": "Name", "content": "Preferred", "classified_as": [{"id": "http://vocab.getty.edu/aat/300404670"}]}]}`,
		`{"id": "x/1", "identified_by": [
		  {"type": "Name", "content": "Preferred", "classified_as": [{"id": "http://vocab.getty.edu/aat/300404670"}]},
		  {"type": "Name", "content": "Plain"}]}`,
		`{"id": "x/1", "identified_by": [
		  {"type": "Name", "content": "Plain"},
		  {"type": "Name", "content": "Preferred", "classified_as": [{"_label": "Primary Title"}]}]}`,
	}
	for i, doc := range docs {
		if got := convert(t, doc).Title; got != "Preferred" {
			t.Errorf("Case %d: expected Preferred, got %q", i, got)
		}
	}
}

func TestTitleFallbacks(t *testing.T) {
	if got := convert(t, `{"id": "x/1", "identified_by": [{"type": "Identifier", "content": "A1"}, {"type": "Name", "content": "First"}]}`).Title; got != "First" {
		t.Errorf("Expected first Name entry, got %q", got)
	}
	if got := convert(t, `{"id": "x/1", "_label": "Label"}`).Title; got != "Label" {
		t.Errorf("Expected label fallback, got %q", got)
	}
}

func TestObjectID(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"https://data.getty.edu/museum/collection/object/00007c19-2a3b", "00007c19-2a3b"},
		{"https://data.example.org/museum/collection/object/00007c19-2a3b", "00007c19-2a3b"},
		{"https://data.example.org/object/42/", "42"},
	}
	c := NewConverter(DefaultProfile())
	for _, tt := range tests {
		got, err := c.objectID(tt.uri)
		if err != nil {
			t.Errorf("Unexpected error for %s: %v", tt.uri, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}

	custom := NewConverter(Profile{ObjectPrefix: "https://data.example.org/museum/collection/object/"})
	if got, _ := custom.objectID("https://data.example.org/museum/collection/object/a/b"); got != "a/b" {
		t.Errorf("Expected prefix strip to keep nested path, got %q", got)
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"missing id", `{"type": "HumanMadeObject"}`, metadata.ErrMissingIdentity},
		{"empty segment", `{"id": "///"}`, metadata.ErrMissingIdentity},
		{"not an object", `"just a string"`, metadata.ErrUnparseableDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := document.ParseJSON([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Error parsing fixture: %v", err)
			}
			_, err = Convert(doc)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPublicDomainFalse(t *testing.T) {
	a := convert(t, `{"id": "x/1", "subject_to": [{"classified_as": [{"id": "http://rightsstatements.org/vocab/InC/1.0/"}]}]}`)
	if a.IsPublicDomain == nil || *a.IsPublicDomain {
		t.Error("Expected explicit false public domain flag")
	}
}

func TestProducerFallbackSynthesizesArtist(t *testing.T) {
	a := convert(t, `{"id": "x/1", "produced_by": {"referred_to_by": [
	  {"content": "Unknown maker", "classified_as": [{"id": "https://data.getty.edu/local/thesaurus/producer-name"}]}]}}`)
	if a.Creator == nil || a.Creator.Name != "Unknown maker" {
		t.Errorf("Expected synthesized artist, got %+v", a.Creator)
	}
}

func TestConvertIsIdempotent(t *testing.T) {
	first, err := convert(t, irises).AsJson()
	if err != nil {
		t.Fatal(err)
	}
	second, err := convert(t, irises).AsJson()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Expected byte-identical output across conversions")
	}
}

func TestFormat(t *testing.T) {
	f := NewFormat(DefaultProfile())
	if !f.CanParse([]byte(irises)) {
		t.Error("Expected Linked Art fixture to be recognized")
	}
	if f.CanParse([]byte(`<lido:lido/>`)) {
		t.Error("Expected XML to be rejected")
	}

	results, err := f.Convert([]byte("[" + irises + `, {"type": "HumanMadeObject"}]`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Err != nil || results[0].Artwork.Title != "Irises" {
		t.Errorf("Unexpected first result %+v", results[0])
	}
	if !errors.Is(results[1].Err, metadata.ErrMissingIdentity) {
		t.Errorf("Expected missing identity, got %v", results[1].Err)
	}

	if _, err := f.Convert([]byte(`{"id": `)); !errors.Is(err, metadata.ErrUnparseableDocument) {
		t.Errorf("Expected unparseable document, got %v", err)
	}
	if !strings.Contains(f.Description(), "Linked Art") {
		t.Errorf("Unexpected description %q", f.Description())
	}
}

func TestUnitCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Centimetres", "cm"},
		{" millimeters ", "mm"},
		{UnitMillimeters, "mm"},
		{"inches", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := unitCode(tt.in); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

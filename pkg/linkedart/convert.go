// Package linkedart converts Linked Art JSON-LD object records into
// canonical artwork records.
package linkedart

import (
	"fmt"
	"strings"

	"github.com/penwern/curate-museum-crosswalk/pkg/document"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// SourceName tags records produced by this package.
const SourceName = "linked_art"

// Converter maps Linked Art documents using one publisher profile.
// It holds no per-document state and is safe for concurrent use.
type Converter struct {
	profile Profile
}

func NewConverter(profile Profile) *Converter {
	return &Converter{profile: profile}
}

// Convert maps doc with the default profile.
func Convert(doc document.Node) (*metadata.Artwork, error) {
	return NewConverter(DefaultProfile()).Convert(doc)
}

// Convert maps one Linked Art object. Only a document without a usable id
// is an error; every other gap leaves the matching field empty.
func (c *Converter) Convert(doc document.Node) (*metadata.Artwork, error) {
	if doc == nil || !document.IsObject(doc) {
		return nil, fmt.Errorf("linked art: %w: expected a JSON object", metadata.ErrUnparseableDocument)
	}
	id, err := c.objectID(doc.Attr("id"))
	if err != nil {
		return nil, err
	}

	a := &metadata.Artwork{ID: id, Source: SourceName}

	identifiedBy := doc.Get("identified_by")
	referredToBy := doc.Get("referred_to_by")

	a.Title = title(identifiedBy, doc.Attr("_label"))
	identifiers(a, identifiedBy)

	var classes []string
	for _, cls := range doc.Get("classified_as") {
		if hasClass(cls, ClassificationCategory) {
			classes = append(classes, cls.Attr("_label"))
		}
	}
	a.Classification = document.JoinLabels(classes)

	a.ObjectType = contentOf(referredToBy, ObjectType)
	a.Medium = contentOf(referredToBy, Materials)
	a.Culture = contentOf(referredToBy, Culture)
	a.PlaceCreated = contentOf(referredToBy, PlaceCreated)
	a.Copyright = contentOf(referredToBy, Copyright)
	a.CreditLine = contentOf(referredToBy, CreditLine)
	a.Description = description(referredToBy)

	for _, item := range withClass(doc.Get("carries"), Inscription) {
		a.Inscriptions = append(a.Inscriptions, content(item))
	}
	for _, item := range withClass(doc.Get("carries"), Signature) {
		a.Signatures = append(a.Signatures, content(item))
	}

	a.Dimensions = dimensions(doc.Get("dimension"), referredToBy)

	production(a, document.First(doc, "produced_by"))

	a.Department = document.FirstNonEmpty(document.Texts(doc, "current_keeper/_label")...)
	for _, ident := range document.All(document.First(doc, "current_location"), "identified_by") {
		if v := content(ident); v != "" {
			a.CurrentLocation = v
			break
		}
	}

	c.urls(a, doc)
	rights(a, doc.Get("subject_to"))

	a.SetExtra("label", doc.Attr("_label"))
	a.Compact()
	return a, nil
}

// objectID derives the short canonical id from the object URI.
func (c *Converter) objectID(uri string) (string, error) {
	if uri == "" {
		return "", fmt.Errorf("linked art: %w: object has no id", metadata.ErrMissingIdentity)
	}
	var id string
	if c.profile.ObjectPrefix != "" && strings.HasPrefix(uri, c.profile.ObjectPrefix) {
		id = strings.TrimPrefix(uri, c.profile.ObjectPrefix)
	} else {
		trimmed := strings.TrimRight(uri, "/")
		id = trimmed[strings.LastIndex(trimmed, "/")+1:]
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("linked art: %w: no usable segment in %q", metadata.ErrMissingIdentity, uri)
	}
	return id, nil
}

// hasClass reports whether n is classified as concept, directly or through
// the classification of one of its classifications.
func hasClass(n document.Node, concept string) bool {
	for _, cls := range n.Get("classified_as") {
		if cls.Attr("id") == concept {
			return true
		}
		for _, inner := range cls.Get("classified_as") {
			if inner.Attr("id") == concept {
				return true
			}
		}
	}
	return false
}

// hasClassLabel matches a classification by its label, ignoring case.
func hasClassLabel(n document.Node, labels ...string) bool {
	for _, cls := range n.Get("classified_as") {
		l := strings.ToLower(cls.Attr("_label"))
		for _, want := range labels {
			if l == want {
				return true
			}
		}
	}
	return false
}

func withClass(items []document.Node, concept string) []document.Node {
	var out []document.Node
	for _, item := range items {
		if hasClass(item, concept) {
			out = append(out, item)
		}
	}
	return out
}

func content(n document.Node) string {
	return n.Attr("content")
}

// contentOf returns the first non-blank content among items classified as concept.
func contentOf(items []document.Node, concept string) string {
	for _, item := range withClass(items, concept) {
		if v := content(item); v != "" {
			return v
		}
	}
	return ""
}

func title(identifiedBy []document.Node, label string) string {
	var first string
	for _, entry := range identifiedBy {
		if entry.Attr("type") != "Name" {
			continue
		}
		v := content(entry)
		if v == "" {
			continue
		}
		if hasClass(entry, PreferredTerm) || hasClass(entry, PrimaryTitle) ||
			hasClassLabel(entry, "preferred term", "primary title") {
			return v
		}
		if first == "" {
			first = v
		}
	}
	return document.FirstNonEmpty(first, label)
}

func identifiers(a *metadata.Artwork, identifiedBy []document.Node) {
	for _, entry := range identifiedBy {
		v := content(entry)
		if v == "" {
			continue
		}
		key := ""
		for _, known := range identifierKeys {
			if hasClass(entry, known.concept) {
				key = known.key
				break
			}
		}
		if key == "" && entry.Attr("type") == "Identifier" && hasClassLabel(entry, "accession number") {
			key = "accession_number"
		}
		if key == "" {
			continue
		}
		if key == "slug" && strings.HasPrefix(v, slugIdentifierPrefix) {
			v = strings.TrimPrefix(v, slugIdentifierPrefix)
		}
		if _, seen := a.Identifiers[key]; !seen {
			a.SetIdentifier(key, v)
		}
	}
}

var richTextFormats = map[string]bool{
	"text/markdown": true,
	"text/html":     true,
}

func description(referredToBy []document.Node) string {
	var first string
	for _, d := range withClass(referredToBy, Description) {
		v := content(d)
		if v == "" {
			continue
		}
		if richTextFormats[d.Attr("format")] {
			return v
		}
		if first == "" {
			first = v
		}
	}
	return first
}

func (c *Converter) urls(a *metadata.Artwork, doc document.Node) {
	for _, item := range doc.Get("subject_of") {
		id := item.Attr("id")
		if id == "" {
			continue
		}
		switch {
		case c.profile.HomepageMarker != "" && strings.Contains(id, c.profile.HomepageMarker):
			if a.SourceURL == "" {
				a.SourceURL = id
			}
		case strings.Contains(id, manifestPathMarker) || hasClass(item, IIIFManifest):
			if a.ManifestURL == "" {
				a.ManifestURL = id
			}
		}
	}
	a.ImageURL = document.Attr(document.First(doc, "representation"), "id")
}

func rights(a *metadata.Artwork, subjectTo []document.Node) {
	pd := false
	for _, right := range subjectTo {
		if hasClass(right, CC0) {
			pd = true
			if a.RightsURL == "" {
				a.RightsURL = CC0
			}
		}
		if a.Rights != "" {
			continue
		}
		for _, cls := range right.Get("classified_as") {
			if cls.Attr("id") != RightsStatement {
				continue
			}
			a.Rights = document.FirstNonEmpty(document.Texts(right, "referred_to_by/content")...)
			break
		}
	}
	a.IsPublicDomain = &pd
}

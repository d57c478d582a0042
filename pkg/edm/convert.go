// Package edm converts Europeana Data Model records, as served by
// OAI-PMH endpoints, into canonical artwork records.
package edm

import (
	"fmt"
	"strings"

	"github.com/penwern/curate-museum-crosswalk/pkg/document"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// SourceName tags records produced by this package.
const SourceName = "edm"

// Namespaces binds the prefixes used in record paths.
var Namespaces = map[string]string{
	"oai":     "http://www.openarchives.org/OAI/2.0/",
	"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"dc":      "http://purl.org/dc/elements/1.1/",
	"dcterms": "http://purl.org/dc/terms/",
	"edm":     "http://www.europeana.eu/schemas/edm/",
	"edmfp":   "http://www.europeanafashion.eu/edmfp/",
	"ore":     "http://www.openarchives.org/ore/terms/",
	"owl":     "http://www.w3.org/2002/07/owl#",
	"rdaGr2":  "http://rdvocab.info/ElementsGr2/",
	"skos":    "http://www.w3.org/2004/02/skos/core#",
	"svcs":    "http://rdfs.org/sioc/services#",
}

// Converter maps EDM records. SourceURLTemplate, when set, builds the
// public page URL from the object number with fmt.Sprintf if the
// aggregation has no edm:isShownAt.
type Converter struct {
	SourceURLTemplate string
}

// DefaultSourceURLTemplate points at the Rijksmuseum collection pages.
const DefaultSourceURLTemplate = "https://www.rijksmuseum.nl/nl/collectie/%s"

func NewConverter(sourceURLTemplate string) *Converter {
	return &Converter{SourceURLTemplate: sourceURLTemplate}
}

// header is the OAI-PMH record header.
type header struct {
	identifier string
	datestamp  string
	deleted    bool
}

func readHeader(record document.Node) header {
	h := document.First(record, "oai:header")
	return header{
		identifier: document.Text(h, "oai:identifier"),
		datestamp:  document.Text(h, "oai:datestamp"),
		deleted:    document.Attr(h, "status") == "deleted",
	}
}

// Convert maps an oai:record element, or a bare rdf:RDF element.
func (c *Converter) Convert(n document.Node) (*metadata.Artwork, error) {
	if n == nil {
		return nil, fmt.Errorf("edm: %w: empty document", metadata.ErrUnparseableDocument)
	}
	h := readHeader(n)
	rdf := document.First(n, "descendant-or-self::rdf:RDF")
	cho := document.First(rdf, ".//edm:ProvidedCHO")
	if cho == nil {
		return nil, fmt.Errorf("edm: %w: no edm:ProvidedCHO", metadata.ErrUnparseableDocument)
	}
	id := document.FirstNonEmpty(h.identifier, cho.Attr("rdf:about"))
	if id == "" {
		return nil, fmt.Errorf("edm: %w: no OAI identifier or ProvidedCHO rdf:about", metadata.ErrMissingIdentity)
	}
	agg := document.First(rdf, ".//ore:Aggregation")

	a := &metadata.Artwork{ID: id, Source: SourceName}
	objectNumber := document.Text(cho, "dc:identifier")
	a.SetIdentifier("object_number", objectNumber)
	a.SetIdentifier("oai_identifier", h.identifier)

	a.Title = document.Text(cho, "dc:title", "en")
	a.Description = document.Text(cho, "dc:description", "en")
	a.ObjectType = conceptLabels(rdf, cho, "dc:type")
	a.Medium = conceptLabels(rdf, cho, "dcterms:medium")
	a.Technique = conceptLabels(rdf, cho, "edmfp:technique")
	a.DateDisplay = document.Text(cho, "dcterms:created", "en")
	a.DateBegin = metadata.ParseYear(a.DateDisplay)
	if extent := document.Text(cho, "dcterms:extent", "en"); extent != "" {
		a.Dimensions = map[string]metadata.Dimension{"default": {Display: extent}}
	}

	creator(a, rdf, document.Attr(document.First(cho, "dc:creator"), "rdf:resource"))

	if agg != nil {
		a.ImageURL = document.FirstNonEmpty(
			document.Attr(document.First(agg, "edm:isShownBy"), "rdf:resource"),
			document.Attr(document.First(agg, "edm:isShownBy/edm:WebResource"), "rdf:about"),
		)
		a.ManifestURL = document.Attr(document.First(rdf, ".//edm:WebResource/svcs:has_service"), "rdf:resource")
		a.RightsURL = document.Attr(document.First(agg, "edm:rights"), "rdf:resource")
		a.SourceURL = document.Attr(document.First(agg, "edm:isShownAt"), "rdf:resource")
	}
	if a.SourceURL == "" && objectNumber != "" && c.SourceURLTemplate != "" {
		a.SourceURL = fmt.Sprintf(c.SourceURLTemplate, objectNumber)
	}
	a.RecordModified = h.datestamp

	a.Compact()
	return a, nil
}

// conceptLabels resolves every rdf:resource of tag on the object against
// the skos:Concept nodes of the graph.
func conceptLabels(rdf, cho document.Node, tag string) string {
	concepts := document.All(rdf, ".//skos:Concept[@rdf:about]")
	var labels []string
	for _, el := range document.All(cho, tag) {
		if label := document.LabelFor(concepts, "rdf:about", el.Attr("rdf:resource"), "skos:prefLabel", "en"); label != "" {
			labels = append(labels, label)
		}
	}
	return document.JoinLabels(labels)
}

// creator fills the creator from the agent description matching uri.
func creator(a *metadata.Artwork, rdf document.Node, uri string) {
	if uri == "" {
		return
	}
	candidates := append(document.All(rdf, "rdf:Description"), document.All(rdf, ".//edm:Agent")...)
	for _, desc := range candidates {
		if desc.Attr("rdf:about") != uri {
			continue
		}
		birth := document.Text(desc, "rdaGr2:dateOfBirth")
		death := document.Text(desc, "rdaGr2:dateOfDeath")
		artist := metadata.Artist{
			Name:      document.Text(desc, "skos:prefLabel", "en"),
			BirthYear: metadata.ParseYear(birth),
			DeathYear: metadata.ParseYear(death),
			ID:        uri,
		}
		if !artist.IsEmpty() {
			a.Creator = &artist
			a.Contributors = []metadata.Artist{artist}
		}
		a.SetExtra("creator_birth_date", birth)
		a.SetExtra("creator_death_date", death)

		placeURI := document.Attr(document.First(desc, "rdaGr2:placeOfBirth"), "rdf:resource")
		a.SetExtra("creator_birthplace", document.LabelFor(document.All(rdf, "edm:Place"), "rdf:about", placeURI, "skos:prefLabel", "en"))

		for _, sameAs := range desc.Get("owl:sameAs") {
			if res := sameAs.Attr("rdf:resource"); strings.Contains(res, "wikidata.org") {
				a.SetExtra("creator_wikidata", res)
				break
			}
		}
		return
	}
}

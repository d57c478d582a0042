// Package lido reads LIDO XML records and converts them into canonical
// artwork records.
//
// Every Record accessor is independent and tolerates missing sections:
// absent ancestors yield empty values rather than errors.
package lido

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/penwern/curate-museum-crosswalk/pkg/document"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// Namespace is the LIDO XML namespace.
const Namespace = "http://www.lido-schema.org"

// Namespaces binds the prefixes used in record paths.
var Namespaces = map[string]string{"lido": Namespace}

var aatPattern = regexp.MustCompile(`vocab\.getty\.edu/aat/\d+`)

// Extent labels that mark the object itself, and those that describe
// something around it.
var (
	primaryExtents = map[string]bool{"support": true, "drager": true}
	skipExtents    = map[string]bool{"frame": true, "lijst": true, "sight size": true, "dagmaat": true, "rand": true}
)

// Term is a controlled vocabulary entry with its bilingual labels.
type Term struct {
	LabelEN string `json:"label_en,omitempty" yaml:"label_en,omitempty"`
	LabelNL string `json:"label_nl,omitempty" yaml:"label_nl,omitempty"`
	AATURI  string `json:"aat_uri,omitempty" yaml:"aat_uri,omitempty"`
}

// Label is the English label, or the Dutch one when there is no English.
func (t Term) Label() string {
	return document.FirstNonEmpty(t.LabelEN, t.LabelNL)
}

// Measurement is one type/value/unit triple of a measurement set.
type Measurement struct {
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	Extent string  `json:"extent,omitempty"`
}

// Inscription is a transcription with an optional description.
type Inscription struct {
	Text        string `json:"text,omitempty" yaml:"text,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Record wraps one lido:lido element.
type Record struct {
	el       document.Node
	desc     document.Node
	admin    document.Node
	ident    document.Node
	events   document.Node
	creation func() document.Node
}

// NewRecord wraps el, which must be a lido:lido element holding at least
// descriptive or administrative metadata.
func NewRecord(el document.Node) (*Record, error) {
	if el == nil || len(el.Get("self::lido:lido")) == 0 {
		return nil, fmt.Errorf("lido: %w: not a lido:lido element", metadata.ErrUnparseableDocument)
	}
	r := &Record{
		el:    el,
		desc:  document.First(el, "lido:descriptiveMetadata"),
		admin: document.First(el, "lido:administrativeMetadata"),
	}
	if r.desc == nil && r.admin == nil {
		return nil, fmt.Errorf("lido: %w: record has no descriptive or administrative metadata", metadata.ErrUnparseableDocument)
	}
	r.ident = document.First(r.desc, "lido:objectIdentificationWrap")
	r.events = document.First(r.desc, "lido:eventWrap")
	r.creation = sync.OnceValue(r.findCreationEvent)
	return r, nil
}

// pick prefers English, then Dutch, then the first value.
func pick(n document.Node, path string) string {
	return document.Text(n, path, "en", "nl")
}

func aatURI(n document.Node) string {
	for _, cid := range document.All(n, "lido:conceptID") {
		if v := cid.Value(); aatPattern.MatchString(v) {
			return v
		}
	}
	return ""
}

// findCreationEvent returns the first event typed as a creation.
func (r *Record) findCreationEvent() document.Node {
	for _, set := range document.All(r.events, "lido:eventSet") {
		event := document.First(set, "lido:event")
		eventType := document.First(event, "lido:eventType")
		if eventType == nil {
			continue
		}
		if cid := document.Text(eventType, "lido:conceptID"); strings.Contains(cid, "expression_creation") {
			return event
		}
		if term := document.Text(eventType, "lido:term", "en"); strings.Contains(strings.ToLower(term), "creation") {
			return event
		}
	}
	return nil
}

// InventoryNumber is the repository work id, e.g. "SK-C-5".
func (r *Record) InventoryNumber() string {
	return document.Text(r.ident, "lido:repositoryWrap/lido:repositorySet/lido:workID")
}

// RecID is the LIDO record id, e.g. "NL-AsdRM/lido/6813".
func (r *Record) RecID() string {
	return document.Text(r.el, "lido:lidoRecID")
}

// OAIIdentifier is the record info id, e.g. "oai:rijksmuseum.nl:SK-A-447".
func (r *Record) OAIIdentifier() string {
	return document.Text(r.admin, "lido:recordWrap/lido:recordInfoSet/lido:recordInfoID")
}

// Titles returns the English and Dutch titles of the first title set.
func (r *Record) Titles() (en, nl string) {
	set := document.First(r.ident, "lido:titleWrap/lido:titleSet")
	return englishOrUntagged(set, "lido:appellationValue"), document.Text(set, "lido:appellationValue", "nl")
}

// Descriptions returns the English and Dutch descriptions of the first set.
func (r *Record) Descriptions() (en, nl string) {
	set := document.First(r.ident, "lido:objectDescriptionWrap/lido:objectDescriptionSet")
	return englishOrUntagged(set, "lido:descriptiveNoteValue"), document.Text(set, "lido:descriptiveNoteValue", "nl")
}

// englishOrUntagged picks the English value of path, else the first
// untagged value, else the first value of any language.
func englishOrUntagged(n document.Node, path string) string {
	candidates := document.All(n, path)
	for _, want := range []string{"en", ""} {
		for _, c := range candidates {
			if (want == "" && c.Lang() == "") || document.SameLanguage(c.Lang(), want) {
				if v := c.Value(); v != "" {
					return v
				}
			}
		}
	}
	return document.Pick(candidates)
}

// ObjectType is the first object work type.
func (r *Record) ObjectType() Term {
	owt := document.First(r.desc, "lido:objectClassificationWrap/lido:objectWorkTypeWrap/lido:objectWorkType")
	if owt == nil {
		return Term{}
	}
	return Term{
		LabelEN: document.Text(owt, "lido:term", "en"),
		LabelNL: document.Text(owt, "lido:term", "nl"),
		AATURI:  aatURI(owt),
	}
}

// Creator is the first actor of the creation event.
func (r *Record) Creator() metadata.Artist {
	air := document.First(r.creation(), "lido:eventActor/lido:actorInRole")
	if air == nil {
		return metadata.Artist{}
	}
	artist := metadata.Artist{
		Role:      pick(document.First(air, "lido:roleActor"), "lido:term"),
		Qualifier: pick(air, "lido:attributionQualifierActor"),
	}
	if actor := document.First(air, "lido:actor"); actor != nil {
		artist.Name = pick(actor, "lido:nameActorSet/lido:appellationValue")
		artist.Nationality = pick(actor, "lido:nationalityActor/lido:term")
		vital := document.First(actor, "lido:vitalDatesActor")
		artist.BirthYear = metadata.ParseYear(document.Text(vital, "lido:earliestDate"))
		artist.DeathYear = metadata.ParseYear(document.Text(vital, "lido:latestDate"))
	}
	return artist
}

// DateRange is the creation period as years.
func (r *Record) DateRange() (earliest, latest *int) {
	date := document.First(r.creation(), "lido:eventDate/lido:date")
	if date == nil {
		return nil, nil
	}
	return metadata.ParseYear(document.Text(date, "lido:earliestDate")),
		metadata.ParseYear(document.Text(date, "lido:latestDate"))
}

// DateDisplay is the free-text creation date.
func (r *Record) DateDisplay() string {
	return pick(r.creation(), "lido:eventDate/lido:displayDate")
}

// MaterialsAndTechniques splits the creation event's terms by their type.
func (r *Record) MaterialsAndTechniques() (materials, techniques []Term) {
	for _, emt := range document.All(r.creation(), "lido:eventMaterialsTech") {
		term := document.First(document.First(emt, "lido:materialsTech"), "lido:termMaterialsTech")
		if term == nil {
			continue
		}
		t := Term{
			LabelEN: document.Text(term, "lido:term", "en"),
			LabelNL: document.Text(term, "lido:term", "nl"),
			AATURI:  aatURI(term),
		}
		if t.LabelEN == "" && t.LabelNL == "" {
			continue
		}
		if strings.Contains(term.Attr("lido:type"), "technique") {
			techniques = append(techniques, t)
		} else {
			materials = append(materials, t)
		}
	}
	return materials, techniques
}

// Measurements lists every parseable measurement in document order.
func (r *Record) Measurements() []Measurement {
	var out []Measurement
	for _, set := range document.All(r.ident, "lido:objectMeasurementsWrap/lido:objectMeasurementsSet") {
		om := document.First(set, "lido:objectMeasurements")
		if om == nil {
			continue
		}
		extent := pick(om, "lido:extentMeasurements")
		for _, ms := range om.Get("lido:measurementsSet") {
			mtype := pick(ms, "lido:measurementType")
			raw := document.Text(ms, "lido:measurementValue")
			if mtype == "" || raw == "" {
				continue
			}
			value, ok := metadata.ParseNumber(raw)
			if !ok {
				continue
			}
			out = append(out, Measurement{
				Type:   strings.ToLower(mtype),
				Value:  value,
				Unit:   pick(ms, "lido:measurementUnit"),
				Extent: extent,
			})
		}
	}
	return out
}

// PrimaryDimensions selects the measurements of the object itself, in
// centimeters. Support extents win over unlabeled ones and frame-like
// extents are never used. The returned name is "support" or "default"
// after the bucket used; ok is false when nothing qualified.
func (r *Record) PrimaryDimensions() (name string, dim metadata.Dimension, ok bool) {
	support := make(map[string]*float64)
	bare := make(map[string]*float64)
	for _, m := range r.Measurements() {
		extent := strings.ToLower(strings.TrimSpace(m.Extent))
		cm, converted := metadata.ToCentimeters(m.Value, m.Unit)
		if !converted || skipExtents[extent] {
			continue
		}
		switch {
		case primaryExtents[extent]:
			support[m.Type] = cm
		case extent == "":
			bare[m.Type] = cm
		}
	}

	best, name := support, "support"
	if len(best) == 0 {
		best, name = bare, "default"
	}
	if len(best) == 0 {
		return "", metadata.Dimension{}, false
	}
	// Only width and depth have Dutch synonyms here.
	dim = metadata.Dimension{
		Height:    best["height"],
		Width:     firstSet(best["width"], best["breedte"]),
		Depth:     firstSet(best["depth"], best["diepte"]),
		UnitLabel: "cm",
	}
	if dim.Height == nil && dim.Width == nil && dim.Depth == nil {
		return "", metadata.Dimension{}, false
	}
	return name, dim, true
}

func firstSet(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// Subjects lists concept, person, place and event subjects per subject set.
func (r *Record) Subjects() []metadata.Subject {
	var out []metadata.Subject
	for _, set := range document.All(r.desc, "lido:objectRelationWrap/lido:subjectWrap/lido:subjectSet") {
		subj := document.First(set, "lido:subject")
		if subj == nil {
			continue
		}
		for _, concept := range subj.Get("lido:subjectConcept") {
			cid := document.First(concept, "lido:conceptID")
			s := metadata.Subject{
				Type:   metadata.SubjectConcept,
				Label:  pick(concept, "lido:term"),
				URI:    document.Value(cid),
				Scheme: document.Attr(cid, "lido:source"),
			}
			if s.Label != "" || s.URI != "" {
				out = append(out, s)
			}
		}
		for _, actor := range subj.Get("lido:subjectActor/lido:actor") {
			if name := pick(actor, "lido:nameActorSet/lido:appellationValue"); name != "" {
				out = append(out, metadata.Subject{Type: metadata.SubjectPerson, Label: name, Scheme: metadata.SubjectPerson})
			}
		}
		for _, place := range subj.Get("lido:subjectPlace/lido:place") {
			s := metadata.Subject{
				Type:   metadata.SubjectPlace,
				Label:  pick(place, "lido:namePlaceSet/lido:appellationValue"),
				URI:    document.Text(place, "lido:placeID"),
				Scheme: metadata.SubjectPlace,
			}
			if s.Label != "" || s.URI != "" {
				out = append(out, s)
			}
		}
		for _, event := range subj.Get("lido:subjectEvent/lido:event") {
			if name := document.Text(event, "lido:eventName/lido:appellationValue"); name != "" {
				out = append(out, metadata.Subject{Type: metadata.SubjectEvent, Label: name, Scheme: metadata.SubjectEvent})
			}
		}
	}
	return out
}

// Inscriptions lists inscriptions with a transcription or description.
func (r *Record) Inscriptions() []Inscription {
	var out []Inscription
	for _, insc := range document.All(r.ident, "lido:inscriptionsWrap/lido:inscriptions") {
		i := Inscription{
			Text:        document.Text(insc, "lido:inscriptionTranscription"),
			Description: pick(insc, "lido:inscriptionDescription/lido:descriptiveNoteValue"),
		}
		if i.Text != "" || i.Description != "" {
			out = append(out, i)
		}
	}
	return out
}

// ImageURL is the link of the first resource representation.
func (r *Record) ImageURL() string {
	rep := document.First(r.admin, "lido:resourceWrap/lido:resourceSet/lido:resourceRepresentation")
	return document.Text(rep, "lido:linkResource")
}

// RightsURL is the first non-blank work rights concept id.
func (r *Record) RightsURL() string {
	rightsType := document.First(r.admin, "lido:rightsWorkWrap/lido:rightsWorkSet/lido:rightsType")
	return document.FirstNonEmpty(document.Texts(rightsType, "lido:conceptID")...)
}

// CreditLine comes from the record rights.
func (r *Record) CreditLine() string {
	return document.Text(r.admin, "lido:recordWrap/lido:recordRights/lido:creditLine")
}

// RecordMetadataDate is the last modification date of the record.
func (r *Record) RecordMetadataDate() string {
	return document.Text(r.admin, "lido:recordWrap/lido:recordInfoSet/lido:recordMetadataDate")
}

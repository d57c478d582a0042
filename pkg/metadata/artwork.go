// Package metadata holds the canonical artwork record shared by every
// source converter, plus the value helpers they use to fill it.
package metadata

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/segmentio/encoding/json"
)

// Artwork is the canonical, source-independent record for one object.
// Absent values stay at their zero value and are omitted when serialized.
type Artwork struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	Title          string `json:"title,omitempty" yaml:"title,omitempty"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	Classification string `json:"classification,omitempty" yaml:"classification,omitempty"`
	ObjectType     string `json:"object_type,omitempty" yaml:"object_type,omitempty"`

	DateDisplay string `json:"date_display,omitempty" yaml:"date_display,omitempty"`
	DateBegin   *int   `json:"date_begin,omitempty" yaml:"date_begin,omitempty"`
	DateEnd     *int   `json:"date_end,omitempty" yaml:"date_end,omitempty"`

	Medium          string `json:"medium,omitempty" yaml:"medium,omitempty"`
	Technique       string `json:"technique,omitempty" yaml:"technique,omitempty"`
	Culture         string `json:"culture,omitempty" yaml:"culture,omitempty"`
	PlaceCreated    string `json:"place_created,omitempty" yaml:"place_created,omitempty"`
	Department      string `json:"department,omitempty" yaml:"department,omitempty"`
	CurrentLocation string `json:"current_location,omitempty" yaml:"current_location,omitempty"`

	Creator      *Artist  `json:"creator,omitempty" yaml:"creator,omitempty"`
	Contributors []Artist `json:"contributors,omitempty" yaml:"contributors,omitempty"`

	Dimensions   map[string]Dimension `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Subjects     []Subject            `json:"subjects,omitempty" yaml:"subjects,omitempty"`
	Inscriptions []string             `json:"inscriptions,omitempty" yaml:"inscriptions,omitempty"`
	Signatures   []string             `json:"signatures,omitempty" yaml:"signatures,omitempty"`

	// IsPublicDomain is nil when the source carries no public-domain signal.
	IsPublicDomain *bool  `json:"is_public_domain,omitempty" yaml:"is_public_domain,omitempty"`
	Rights         string `json:"rights,omitempty" yaml:"rights,omitempty"`
	RightsURL      string `json:"rights_url,omitempty" yaml:"rights_url,omitempty"`
	Copyright      string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	CreditLine     string `json:"credit_line,omitempty" yaml:"credit_line,omitempty"`

	ImageURL    string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	ManifestURL string `json:"manifest_or_iiif_url,omitempty" yaml:"manifest_or_iiif_url,omitempty"`
	SourceURL   string `json:"source_url,omitempty" yaml:"source_url,omitempty"`

	Identifiers    map[string]string `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`
	RecordModified string            `json:"record_modified,omitempty" yaml:"record_modified,omitempty"`
	Extra          map[string]any    `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Artist is a person credited with making the object.
type Artist struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Role        string `json:"role,omitempty" yaml:"role,omitempty"`
	Nationality string `json:"nationality,omitempty" yaml:"nationality,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	BirthYear   *int   `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
	DeathYear   *int   `json:"death_year,omitempty" yaml:"death_year,omitempty"`
	Qualifier   string `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
}

// IsEmpty reports whether no field of the artist is set.
func (a Artist) IsEmpty() bool {
	return a.Name == "" && a.Role == "" && a.Nationality == "" && a.Description == "" &&
		a.BirthYear == nil && a.DeathYear == nil && a.Qualifier == "" && a.ID == ""
}

// Dimension is one named measurement set, always in centimeters.
type Dimension struct {
	Height    *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Width     *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Depth     *float64 `json:"depth,omitempty" yaml:"depth,omitempty"`
	UnitLabel string   `json:"unit_label,omitempty" yaml:"unit_label,omitempty"`
	Display   string   `json:"display_text,omitempty" yaml:"display_text,omitempty"`
}

func (d Dimension) IsEmpty() bool {
	return d.Height == nil && d.Width == nil && d.Depth == nil && d.UnitLabel == "" && d.Display == ""
}

// Subject types.
const (
	SubjectConcept = "concept"
	SubjectPerson  = "person"
	SubjectPlace   = "place"
	SubjectEvent   = "event"
)

// Subject is one depicted or referenced concept, person, place or event.
type Subject struct {
	Type   string `json:"type" yaml:"type"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
	URI    string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Scheme string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
}

// SetIdentifier records a non-blank identifier under key.
func (a *Artwork) SetIdentifier(key, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if a.Identifiers == nil {
		a.Identifiers = make(map[string]string)
	}
	a.Identifiers[key] = value
}

// SetExtra records a source-specific value under key. Empty values are ignored.
func (a *Artwork) SetExtra(key string, value any) {
	if isEmptyValue(value) {
		return
	}
	if a.Extra == nil {
		a.Extra = make(map[string]any)
	}
	a.Extra[key] = value
}

// Compact drops empty nested values so that an absent field never
// serializes as an empty object, list or string.
func (a *Artwork) Compact() {
	for _, s := range []*string{
		&a.ID, &a.Source, &a.Title, &a.Description, &a.Classification, &a.ObjectType,
		&a.DateDisplay, &a.Medium, &a.Technique, &a.Culture, &a.PlaceCreated,
		&a.Department, &a.CurrentLocation, &a.Rights, &a.RightsURL, &a.Copyright,
		&a.CreditLine, &a.ImageURL, &a.ManifestURL, &a.SourceURL, &a.RecordModified,
	} {
		*s = strings.TrimSpace(*s)
	}

	if a.Creator != nil && a.Creator.IsEmpty() {
		a.Creator = nil
	}

	contributors := a.Contributors[:0]
	for _, c := range a.Contributors {
		if !c.IsEmpty() {
			contributors = append(contributors, c)
		}
	}
	a.Contributors = nilIfEmpty(contributors)

	for name, d := range a.Dimensions {
		if d.IsEmpty() {
			delete(a.Dimensions, name)
		}
	}
	if len(a.Dimensions) == 0 {
		a.Dimensions = nil
	}

	subjects := a.Subjects[:0]
	for _, s := range a.Subjects {
		if s.Label != "" || s.URI != "" {
			subjects = append(subjects, s)
		}
	}
	a.Subjects = nilIfEmpty(subjects)

	a.Inscriptions = nilIfEmpty(compactStrings(a.Inscriptions))
	a.Signatures = nilIfEmpty(compactStrings(a.Signatures))

	for k, v := range a.Identifiers {
		if strings.TrimSpace(v) == "" {
			delete(a.Identifiers, k)
		}
	}
	if len(a.Identifiers) == 0 {
		a.Identifiers = nil
	}

	for k, v := range a.Extra {
		if isEmptyValue(v) {
			delete(a.Extra, k)
		}
	}
	if len(a.Extra) == 0 {
		a.Extra = nil
	}
}

// AsJson returns the indented JSON form of the record.
func (a *Artwork) AsJson() ([]byte, error) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return []byte{}, fmt.Errorf("error marshaling JSON: %w", err)
	}
	return jsonData, nil
}

func compactStrings(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

package linkedart

import (
	"strings"

	"github.com/penwern/curate-museum-crosswalk/pkg/document"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

const defaultSet = "default"

// knownSets maps label substrings to fixed measurement-set names.
var knownSets = []struct {
	marker string
	name   string
}{
	{"Image", "image"},
	{"Sheet", "sheet"},
	{"Overall", "overall"},
	{"Mount", "mount"},
}

func knownSetName(label string) string {
	for _, s := range knownSets {
		if strings.Contains(label, s.marker) {
			return s.name
		}
	}
	return ""
}

// memberSetName names the set a measurement belongs to from its
// member_of label. Unrecognized labels become a lowercase free-form name.
func memberSetName(label string) string {
	if name := knownSetName(label); name != "" {
		return name
	}
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(label, dimensionsLabelPrefix, "")))
}

type measuredSet struct {
	height *float64
	width  *float64
	unit   string
}

// dimensions groups height and width measurements by set and attaches
// the free-text dimension statements from referred_to_by.
func dimensions(items, referredToBy []document.Node) map[string]metadata.Dimension {
	sets := make(map[string]*measuredSet)
	for _, dim := range items {
		isHeight := hasClass(dim, Height)
		if !isHeight && !hasClass(dim, Width) {
			continue
		}
		value, ok := metadata.ParseNumber(dim.Attr("value"))
		if !ok {
			continue
		}

		name := defaultSet
		for _, member := range dim.Get("member_of") {
			if n := memberSetName(member.Attr("_label")); n != "" {
				name = n
			}
		}
		s, ok := sets[name]
		if !ok {
			s = &measuredSet{}
			sets[name] = s
		}

		unit := document.First(dim, "unit")
		code := unitCode(document.Attr(unit, "_label"))
		if code == "" {
			code = unitCode(document.Attr(unit, "id"))
		}
		cm, ok := metadata.ToCentimeters(value, code)
		if !ok {
			continue
		}
		s.unit = "cm"
		if isHeight {
			s.height = cm
		} else {
			s.width = cm
		}
	}

	display := make(map[string]string)
	for _, ref := range withClass(referredToBy, DimensionsDescription) {
		text := content(ref)
		if text == "" {
			continue
		}
		name := defaultSet
		for _, tech := range ref.Get("assigned_by/technique") {
			if n := knownSetName(tech.Attr("_label")); n != "" {
				name = n
			}
			switch tech.Attr("id") {
			case MeasuredImage:
				name = "image"
			case MeasuredSheet:
				name = "sheet"
			}
		}
		display[name] = text
	}

	out := make(map[string]metadata.Dimension, len(sets)+len(display))
	for name, s := range sets {
		out[name] = metadata.Dimension{Height: s.height, Width: s.width, UnitLabel: s.unit}
	}
	for name, text := range display {
		d := out[name]
		d.Display = text
		out[name] = d
	}
	return out
}

var unitCodes = map[string]string{
	"cm":          "cm",
	"centimeter":  "cm",
	"centimeters": "cm",
	"centimetre":  "cm",
	"centimetres": "cm",

	"mm":          "mm",
	"millimeter":  "mm",
	"millimeters": "mm",
	"millimetre":  "mm",
	"millimetres": "mm",

	UnitCentimeters: "cm",
	UnitMillimeters: "mm",
}

// unitCode maps a unit label or AAT id to "cm" or "mm", or "" when the
// unit is not metric.
func unitCode(s string) string {
	return unitCodes[strings.ToLower(strings.TrimSpace(s))]
}

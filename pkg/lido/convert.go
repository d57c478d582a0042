package lido

import (
	"fmt"

	"github.com/penwern/curate-museum-crosswalk/pkg/document"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// SourceName tags records produced by this package.
const SourceName = "lido"

// Convert maps one lido:lido element to a canonical record.
func Convert(el document.Node) (*metadata.Artwork, error) {
	r, err := NewRecord(el)
	if err != nil {
		return nil, err
	}
	return r.Artwork()
}

// Artwork assembles the canonical record from the record accessors.
func (r *Record) Artwork() (*metadata.Artwork, error) {
	id := document.FirstNonEmpty(r.RecID(), r.OAIIdentifier())
	if id == "" {
		return nil, fmt.Errorf("lido: %w: record has neither lidoRecID nor recordInfoID", metadata.ErrMissingIdentity)
	}
	a := &metadata.Artwork{ID: id, Source: SourceName}

	titleEN, titleNL := r.Titles()
	a.Title = titleEN
	if titleNL != titleEN {
		a.SetExtra("title_nl", titleNL)
	}
	descEN, descNL := r.Descriptions()
	a.Description = descEN
	if descNL != descEN {
		a.SetExtra("description_nl", descNL)
	}

	objectType := r.ObjectType()
	a.ObjectType = objectType.Label()
	if objectType.LabelNL != a.ObjectType {
		a.SetExtra("object_type_nl", objectType.LabelNL)
	}
	a.SetExtra("object_type_aat", objectType.AATURI)

	if creator := r.Creator(); !creator.IsEmpty() {
		a.Creator = &creator
	}
	a.DateDisplay = r.DateDisplay()
	a.DateBegin, a.DateEnd = r.DateRange()

	materials, techniques := r.MaterialsAndTechniques()
	a.Medium = document.JoinList(labels(materials))
	a.Technique = document.JoinList(labels(techniques))
	a.SetExtra("materials", materials)
	a.SetExtra("techniques", techniques)

	if name, dim, ok := r.PrimaryDimensions(); ok {
		a.Dimensions = map[string]metadata.Dimension{name: dim}
	}

	a.Subjects = r.Subjects()

	inscriptions := r.Inscriptions()
	for _, i := range inscriptions {
		a.Inscriptions = append(a.Inscriptions, document.FirstNonEmpty(i.Text, i.Description))
	}
	a.SetExtra("inscriptions", inscriptions)

	a.ImageURL = r.ImageURL()
	a.RightsURL = r.RightsURL()
	a.CreditLine = r.CreditLine()
	a.RecordModified = r.RecordMetadataDate()

	a.SetIdentifier("inventory_number", r.InventoryNumber())
	a.SetIdentifier("lido_rec_id", r.RecID())
	a.SetIdentifier("oai_identifier", r.OAIIdentifier())

	a.Compact()
	return a, nil
}

func labels(terms []Term) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, t.Label())
	}
	return out
}

package linkedart

import (
	"strings"

	"github.com/penwern/curate-museum-crosswalk/pkg/document"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// production fills the contributors, the creator and the date fields from
// the produced_by node.
func production(a *metadata.Artwork, prod document.Node) {
	if prod == nil {
		return
	}

	people := append(prod.Get("carried_out_by"), prod.Get("part/carried_out_by")...)
	artists := make([]metadata.Artist, 0, len(people))
	for _, person := range people {
		artist := metadata.Artist{
			Name: person.Attr("_label"),
			Role: contentOf(person.Get("referred_to_by"), ProducerRole),
		}
		if id := person.Attr("id"); strings.Contains(id, personPathMarker) {
			artist.ID = id[strings.LastIndex(id, personPathMarker)+len(personPathMarker):]
		}
		artists = append(artists, artist)
	}

	// Production-level statements describe the first producer.
	referred := prod.Get("referred_to_by")
	name := contentOf(referred, ProducerName)
	desc := contentOf(referred, ProducerDescription)
	nationality := contentOf(referred, ProducerNationality)
	switch {
	case len(artists) > 0:
		first := &artists[0]
		first.Description = desc
		first.Nationality = nationality
		if first.Name == "" {
			first.Name = name
		}
	case name != "" || desc != "" || nationality != "":
		artists = append(artists, metadata.Artist{Name: name, Description: desc, Nationality: nationality})
	}
	a.Contributors = artists
	if len(artists) > 0 {
		creator := artists[0]
		a.Creator = &creator
	}

	timespan := document.First(prod, "timespan")
	for _, ident := range document.All(timespan, "identified_by") {
		if v := content(ident); v != "" {
			a.DateDisplay = v
			break
		}
	}
	begin := document.Attr(timespan, "begin_of_the_begin")
	end := document.Attr(timespan, "end_of_the_end")
	a.DateBegin = metadata.ParseLeadingYear(begin)
	a.DateEnd = metadata.ParseLeadingYear(end)
	a.SetExtra("timespan_begin", begin)
	a.SetExtra("timespan_end", end)
}

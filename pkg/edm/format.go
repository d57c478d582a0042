package edm

import (
	"bytes"
	"fmt"

	"github.com/penwern/curate-museum-crosswalk/pkg/crosswalk"
	"github.com/penwern/curate-museum-crosswalk/pkg/document"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// Format implements EDM over OAI-PMH.
type Format struct {
	SourceURLTemplate string
}

var _ crosswalk.Format = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return SourceName
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Europeana Data Model RDF/XML, bare or inside OAI-PMH records"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"xml", "rdf"}
}

// CanParse returns true if the input looks like EDM.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] != '<' {
		return false
	}
	return bytes.Contains(peek, []byte(Namespaces["edm"]))
}

// Convert converts each non-deleted OAI record in data, or data itself
// when it holds no OAI records.
func (f *Format) Convert(data []byte) ([]crosswalk.Result, error) {
	doc, err := document.ParseXML(data, Namespaces)
	if err != nil {
		return nil, fmt.Errorf("edm: %w: %v", metadata.ErrUnparseableDocument, err)
	}
	defer doc.Close()

	root, err := doc.Root()
	if err != nil {
		return nil, fmt.Errorf("edm: %w: %v", metadata.ErrUnparseableDocument, err)
	}
	records := root.Get("descendant-or-self::oai:record")
	if len(records) == 0 {
		records = []document.Node{root}
	}

	conv := NewConverter(f.SourceURLTemplate)
	results := make([]crosswalk.Result, 0, len(records))
	for _, rec := range records {
		if readHeader(rec).deleted {
			continue
		}
		a, err := conv.Convert(rec)
		results = append(results, crosswalk.Result{Artwork: a, Err: err})
	}
	return results, nil
}

func init() {
	crosswalk.Register(&Format{SourceURLTemplate: DefaultSourceURLTemplate})
}

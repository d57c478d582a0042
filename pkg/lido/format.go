package lido

import (
	"bytes"
	"fmt"

	"github.com/penwern/curate-museum-crosswalk/pkg/crosswalk"
	"github.com/penwern/curate-museum-crosswalk/pkg/document"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// Format implements the LIDO XML format.
type Format struct{}

var _ crosswalk.Format = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return SourceName
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "LIDO XML records (single lido:lido or a lido:lidoWrap of many)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"xml"}
}

// CanParse returns true if the input looks like LIDO XML.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] != '<' {
		return false
	}
	return bytes.Contains(peek, []byte(Namespace))
}

// Convert parses data and converts every lido:lido element in it.
func (f *Format) Convert(data []byte) ([]crosswalk.Result, error) {
	doc, err := document.ParseXML(data, Namespaces)
	if err != nil {
		return nil, fmt.Errorf("lido: %w: %v", metadata.ErrUnparseableDocument, err)
	}
	defer doc.Close()

	root, err := doc.Root()
	if err != nil {
		return nil, fmt.Errorf("lido: %w: %v", metadata.ErrUnparseableDocument, err)
	}
	records := root.Get("descendant-or-self::lido:lido")
	if len(records) == 0 {
		return nil, fmt.Errorf("lido: %w: no lido:lido element found", metadata.ErrUnparseableDocument)
	}
	results := make([]crosswalk.Result, 0, len(records))
	for _, el := range records {
		a, err := Convert(el)
		results = append(results, crosswalk.Result{Artwork: a, Err: err})
	}
	return results, nil
}

func init() {
	crosswalk.Register(&Format{})
}

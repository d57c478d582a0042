package linkedart

import (
	"bytes"
	"fmt"

	"github.com/penwern/curate-museum-crosswalk/pkg/crosswalk"
	"github.com/penwern/curate-museum-crosswalk/pkg/document"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// Format implements the Linked Art JSON-LD format.
type Format struct {
	Profile Profile
}

var _ crosswalk.Format = (*Format)(nil)

// NewFormat returns a format using profile.
func NewFormat(profile Profile) *Format {
	return &Format{Profile: profile}
}

// Name returns the format identifier.
func (f *Format) Name() string {
	return SourceName
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Linked Art JSON-LD object records"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json", "jsonld"}
}

// CanParse returns true if the input looks like Linked Art JSON-LD.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || (peek[0] != '{' && peek[0] != '[') {
		return false
	}
	patterns := [][]byte{
		[]byte(`linked.art/ns/`),
		[]byte(`"identified_by"`),
		[]byte(`"produced_by"`),
		[]byte(`"HumanMadeObject"`),
	}
	for _, pattern := range patterns {
		if bytes.Contains(peek, pattern) {
			return true
		}
	}
	return false
}

// Convert decodes one object, or an array of objects, and converts each.
func (f *Format) Convert(data []byte) ([]crosswalk.Result, error) {
	root, err := document.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("linked art: %w: %v", metadata.ErrUnparseableDocument, err)
	}
	docs := document.Elements(root)
	if docs == nil {
		docs = []document.Node{root}
	}
	conv := NewConverter(f.Profile)
	results := make([]crosswalk.Result, 0, len(docs))
	for _, doc := range docs {
		a, err := conv.Convert(doc)
		results = append(results, crosswalk.Result{Artwork: a, Err: err})
	}
	return results, nil
}

func init() {
	crosswalk.Register(NewFormat(DefaultProfile()))
}

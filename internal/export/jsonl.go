package export

import (
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

type jsonlWriter struct {
	enc *json.Encoder
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &jsonlWriter{enc: enc}
}

// Write emits the record as one compact line.
func (j *jsonlWriter) Write(a *metadata.Artwork) error {
	return j.enc.Encode(a)
}

func (j *jsonlWriter) Close() error { return nil }

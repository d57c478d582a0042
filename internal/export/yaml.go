package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

type yamlWriter struct {
	enc *yaml.Encoder
}

func newYAMLWriter(w io.Writer) *yamlWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &yamlWriter{enc: enc}
}

// Write emits the record as the next document of the stream.
func (y *yamlWriter) Write(a *metadata.Artwork) error {
	return y.enc.Encode(a)
}

func (y *yamlWriter) Close() error {
	return y.enc.Close()
}

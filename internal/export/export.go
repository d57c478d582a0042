// Package export writes canonical records as JSON Lines, YAML or Parquet.
package export

import (
	"fmt"
	"io"

	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// Writer streams records to an output.
type Writer interface {
	Write(a *metadata.Artwork) error
	// Close flushes buffered output. It does not close the underlying writer.
	Close() error
}

// Output formats.
const (
	FormatJSONL   = "jsonl"
	FormatYAML    = "yaml"
	FormatParquet = "parquet"
)

// Formats lists the supported output formats.
var Formats = []string{FormatJSONL, FormatYAML, FormatParquet}

// Metadata is recorded in outputs that support file-level metadata.
type Metadata struct {
	CreatedBy string
	RunID     string
}

// NewWriter returns a writer for format.
func NewWriter(format string, w io.Writer, meta Metadata) (Writer, error) {
	switch format {
	case FormatJSONL:
		return newJSONLWriter(w), nil
	case FormatYAML:
		return newYAMLWriter(w), nil
	case FormatParquet:
		return newParquetWriter(w, meta), nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

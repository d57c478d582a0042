package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/segmentio/encoding/json"

	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// Row is the flat, query-ready shape of an artwork.
type Row struct {
	Source            string  `parquet:"source"`
	SourceID          string  `parquet:"source_id"`
	Title             *string `parquet:"title"`
	ArtistName        *string `parquet:"artist_name"`
	ArtistNationality *string `parquet:"artist_nationality"`
	ArtistBirthYear   *int32  `parquet:"artist_birth_year"`
	ArtistDeathYear   *int32  `parquet:"artist_death_year"`
	DateDisplay       *string `parquet:"date_display"`
	DateStart         *int32  `parquet:"date_start"`
	DateEnd           *int32  `parquet:"date_end"`
	Medium            *string `parquet:"medium"`
	Dimensions        *string `parquet:"dimensions"`
	Classification    *string `parquet:"classification"`
	Culture           *string `parquet:"culture"`
	Department        *string `parquet:"department"`
	IsPublicDomain    *bool   `parquet:"is_public_domain"`
	CreditLine        *string `parquet:"credit_line"`
	ImageURL          *string `parquet:"image_url"`
	SourceURL         *string `parquet:"source_url"`
	Extras            *string `parquet:"extras"`
}

// ToRow flattens a record. Fields without a column are kept in Extras as JSON.
func ToRow(a *metadata.Artwork) (Row, error) {
	row := Row{
		Source:         a.Source,
		SourceID:       a.ID,
		Title:          optString(a.Title),
		DateDisplay:    optString(a.DateDisplay),
		DateStart:      optInt(a.DateBegin),
		DateEnd:        optInt(a.DateEnd),
		Medium:         optString(a.Medium),
		Dimensions:     optString(dimensionSummary(a.Dimensions)),
		Classification: optString(a.Classification),
		Culture:        optString(a.Culture),
		Department:     optString(a.Department),
		IsPublicDomain: a.IsPublicDomain,
		CreditLine:     optString(a.CreditLine),
		ImageURL:       optString(a.ImageURL),
		SourceURL:      optString(a.SourceURL),
	}
	if a.Creator != nil {
		row.ArtistName = optString(a.Creator.Name)
		row.ArtistNationality = optString(a.Creator.Nationality)
		row.ArtistBirthYear = optInt(a.Creator.BirthYear)
		row.ArtistDeathYear = optInt(a.Creator.DeathYear)
	}

	extras := map[string]any{}
	for k, v := range map[string]any{
		"description":          a.Description,
		"object_type":          a.ObjectType,
		"technique":            a.Technique,
		"place_created":        a.PlaceCreated,
		"current_location":     a.CurrentLocation,
		"rights":               a.Rights,
		"rights_url":           a.RightsURL,
		"copyright":            a.Copyright,
		"manifest_or_iiif_url": a.ManifestURL,
		"record_modified":      a.RecordModified,
	} {
		if v != "" {
			extras[k] = v
		}
	}
	if a.Creator != nil && a.Creator.Role != "" {
		extras["artist_role"] = a.Creator.Role
	}
	if len(a.Dimensions) > 0 {
		extras["dimensions"] = a.Dimensions
	}
	if len(a.Subjects) > 0 {
		extras["subjects"] = a.Subjects
	}
	if len(a.Inscriptions) > 0 {
		extras["inscriptions"] = a.Inscriptions
	}
	if len(a.Signatures) > 0 {
		extras["signatures"] = a.Signatures
	}
	if len(a.Identifiers) > 0 {
		extras["identifiers"] = a.Identifiers
	}
	if len(a.Extra) > 0 {
		extras["extra"] = a.Extra
	}
	if len(extras) > 0 {
		data, err := json.Marshal(extras)
		if err != nil {
			return Row{}, fmt.Errorf("error encoding extras for %s: %w", a.ID, err)
		}
		s := string(data)
		row.Extras = &s
	}
	return row, nil
}

// summarySets is the order in which dimension sets are summarized.
var summarySets = []string{"overall", "support", "default", "image", "sheet", "mount"}

func dimensionSummary(dims map[string]metadata.Dimension) string {
	if len(dims) == 0 {
		return ""
	}
	names := append([]string(nil), summarySets...)
	var rest []string
	for name := range dims {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	names = append(names, rest...)

	for _, name := range names {
		d, ok := dims[name]
		if !ok {
			continue
		}
		if d.Display != "" {
			return d.Display
		}
		if s := formatAxes(d); s != "" {
			return s
		}
	}
	return ""
}

func formatAxes(d metadata.Dimension) string {
	var parts []string
	for _, axis := range []struct {
		label string
		value *float64
	}{{"h", d.Height}, {"w", d.Width}, {"d", d.Depth}} {
		if axis.value != nil {
			parts = append(parts, fmt.Sprintf("%s %g", axis.label, *axis.value))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " x ") + " cm"
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt(i *int) *int32 {
	if i == nil {
		return nil
	}
	v := int32(*i)
	return &v
}

type parquetWriter struct {
	w *parquet.GenericWriter[Row]
}

func newParquetWriter(w io.Writer, meta Metadata) *parquetWriter {
	var opts []parquet.WriterOption
	if meta.CreatedBy != "" {
		opts = append(opts, parquet.KeyValueMetadata("created_by", meta.CreatedBy))
	}
	if meta.RunID != "" {
		opts = append(opts, parquet.KeyValueMetadata("run_id", meta.RunID))
	}
	return &parquetWriter{w: parquet.NewGenericWriter[Row](w, opts...)}
}

func (p *parquetWriter) Write(a *metadata.Artwork) error {
	row, err := ToRow(a)
	if err != nil {
		return err
	}
	if _, err := p.w.Write([]Row{row}); err != nil {
		return fmt.Errorf("error writing parquet row for %s: %w", a.ID, err)
	}
	return nil
}

// Close writes the footer.
func (p *parquetWriter) Close() error {
	return p.w.Close()
}

// Package crosswalk defines the source-format plugin interface and the
// registry used to pick a converter for a raw document.
package crosswalk

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
)

// PeekSize is how much of an input is offered to CanParse.
const PeekSize = 64 * 1024

// ErrUnknownFormat is returned when no registered format matches.
var ErrUnknownFormat = errors.New("unknown format")

// Result is the outcome for one record inside an input. Err carries a
// record-level fatal error such as a missing identity.
type Result struct {
	Artwork *metadata.Artwork
	Err     error
}

// Format converts one source serialization into canonical records.
type Format interface {
	// Name returns the format identifier.
	Name() string
	// Description returns a human-readable format description.
	Description() string
	// Extensions returns file extensions associated with this format, without dots.
	Extensions() []string
	// CanParse reports whether the leading bytes look like this format.
	CanParse(peek []byte) bool
	// Convert parses data and converts every record it holds. An error
	// means the input as a whole could not be read.
	Convert(data []byte) ([]Result, error)
}

// Registry holds formats by name.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
}

func NewRegistry(formats ...Format) *Registry {
	r := &Registry{formats: make(map[string]Format)}
	for _, f := range formats {
		r.Register(f)
	}
	return r
}

// Register adds f, replacing any format with the same name.
func (r *Registry) Register(f Format) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formats[f.Name()] = f
}

// Lookup returns the format registered under name.
func (r *Registry) Lookup(name string) (Format, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect returns the first format, in name order, that accepts data.
func (r *Registry) Detect(data []byte) (Format, error) {
	peek := data
	if len(peek) > PeekSize {
		peek = peek[:PeekSize]
	}
	peek = bytes.TrimSpace(peek)
	for _, name := range r.Names() {
		f, err := r.Lookup(name)
		if err != nil {
			continue
		}
		if f.CanParse(peek) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: no registered format recognizes the input", ErrUnknownFormat)
}

// FileExtensions returns the dotted extensions of every registered format.
func (r *Registry) FileExtensions() []string {
	var exts []string
	for _, name := range r.Names() {
		f, err := r.Lookup(name)
		if err != nil {
			continue
		}
		for _, ext := range f.Extensions() {
			if dotted := "." + ext; !slices.Contains(exts, dotted) {
				exts = append(exts, dotted)
			}
		}
	}
	return exts
}

var defaultRegistry = NewRegistry()

// Register adds f to the default registry.
func Register(f Format) { defaultRegistry.Register(f) }

// Default returns the registry formats add themselves to on import.
func Default() *Registry { return defaultRegistry }

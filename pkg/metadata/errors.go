package metadata

import "errors"

var (
	// ErrMissingIdentity means no usable identifier could be derived.
	ErrMissingIdentity = errors.New("missing identity")
	// ErrUnparseableDocument means the input is not a document of the expected format.
	ErrUnparseableDocument = errors.New("unparseable document")
)

// ErrorKind names the category of a conversion error for logs and responses.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingIdentity):
		return "MissingIdentity"
	case errors.Is(err, ErrUnparseableDocument):
		return "UnparseableDocument"
	}
	return "Unknown"
}

package linkedart

// Profile holds the publisher-specific conventions of a Linked Art endpoint.
type Profile struct {
	// ObjectPrefix is stripped from object URIs to form the canonical id.
	ObjectPrefix string
	// HomepageMarker identifies the public web page among subject_of entries.
	HomepageMarker string
}

// DefaultProfile matches the J. Paul Getty Museum collection API.
func DefaultProfile() Profile {
	return Profile{
		ObjectPrefix:   "https://data.getty.edu/museum/collection/object/",
		HomepageMarker: "getty.edu/art/collection/object/",
	}
}

package linkedart

const aat = "http://vocab.getty.edu/aat/"

// AAT concepts used to classify Linked Art nodes.
const (
	PreferredTerm          = aat + "300404670"
	AccessionNumber        = aat + "300312355"
	Description            = aat + "300080091"
	Materials              = aat + "300435429"
	CreditLine             = aat + "300435418"
	Copyright              = aat + "300435434"
	Culture                = aat + "300055768"
	ObjectType             = aat + "300435443"
	PlaceCreated           = aat + "300435448"
	DimensionsDescription  = aat + "300435430"
	Inscription            = aat + "300435414"
	Signature              = aat + "300028705"
	Height                 = aat + "300055644"
	Width                  = aat + "300055647"
	ClassificationCategory = aat + "300435444"
	UnitCentimeters        = aat + "300379098"
	UnitMillimeters        = aat + "300379097"
)

// CC0 marks a public-domain dedication in subject_to.
const CC0 = "http://creativecommons.org/publicdomain/zero/1.0/"

const localThesaurus = "https://data.getty.edu/local/thesaurus/"

// Museum-local thesaurus terms.
const (
	PrimaryTitle          = localThesaurus + "object-title-primary"
	LocalDorID            = localThesaurus + "dor-id"
	LocalTmsID            = localThesaurus + "tms-id"
	LocalSlug             = localThesaurus + "slug-identifier"
	LocalAssetID          = localThesaurus + "asset-identifier"
	ProducerDescription   = localThesaurus + "producer-description"
	ProducerName          = localThesaurus + "producer-name"
	ProducerNationality   = localThesaurus + "nationality-and-dates"
	ProducerRole          = localThesaurus + "producer-role-statement"
	IIIFManifest          = localThesaurus + "iiif-manifest"
	RightsStatement       = localThesaurus + "rights-statement"
	MeasuredImage         = localThesaurus + "dimensions-measured-image"
	MeasuredSheet         = localThesaurus + "dimensions-measured-sheet"
	slugIdentifierPrefix  = "urn:getty-local:idm:object:slug/"
	manifestPathMarker    = "/iiif/manifest/"
	personPathMarker      = "/person/"
	dimensionsLabelPrefix = "Dimensions Set:"
)

// identifierKeys maps identifier-type concepts to canonical identifier keys.
var identifierKeys = []struct {
	concept string
	key     string
}{
	{AccessionNumber, "accession_number"},
	{LocalDorID, "dor_id"},
	{LocalTmsID, "tms_id"},
	{LocalSlug, "slug"},
	{LocalAssetID, "asset_id"},
}

// Package passdef models the pass-definition document (pass.json): the
// structured content describing a pass's identity, appearance, and
// behavior. The bundle pipeline treats the encoded document as an opaque
// asset; this package is the authoring collaborator that produces it.
package passdef

import (
	"encoding/json"
	"fmt"
)

// FormatVersion is the only file format version the platform accepts.
const FormatVersion = 1

// Pass is the top level of the pass.json file.
type Pass struct {
	// Brief description of the pass, used by accessibility technologies.
	Description string `json:"description"`

	// Version of the file format. The value must be 1.
	FormatVersion int `json:"formatVersion"`

	// Display name of the organization that originated and signed the pass.
	OrganizationName string `json:"organizationName"`

	// Pass type identifier, as issued by the platform.
	// Must correspond with the signing certificate.
	PassTypeIdentifier string `json:"passTypeIdentifier"`

	// Serial number that uniquely identifies the pass within its type.
	SerialNumber string `json:"serialNumber"`

	// Team identifier of the signing organization.
	TeamIdentifier string `json:"teamIdentifier"`

	// A URL passed to the associated app when launching it.
	AppLaunchURL string `json:"appLaunchURL,omitempty"`

	// Store item identifiers for the associated apps.
	AssociatedStoreIdentifiers []int `json:"associatedStoreIdentifiers,omitempty"`

	UserInfo map[string]string `json:"userInfo,omitempty"`

	// Date and time when the pass expires, as a W3C date with hours and
	// minutes, optionally seconds.
	ExpirationDate string `json:"expirationDate,omitempty"`

	// Indicates that the pass is void, for example a redeemed one-time
	// coupon. Defaults to false.
	Voided bool `json:"voided,omitempty"`

	// Beacons marking locations where the pass is relevant.
	Beacons []Beacon `json:"beacons,omitempty"`

	// Locations where the pass is relevant, e.g. the location of a store.
	Locations []Location `json:"locations,omitempty"`

	// Maximum distance in meters from a relevant location. The smaller of
	// this and the pass's default distance is used.
	MaxDistance int `json:"maxDistance,omitempty"`

	// Recommended for event tickets and boarding passes. Date and time
	// when the pass becomes relevant, e.g. the start time of a movie.
	RelevantDate string `json:"relevantDate,omitempty"`

	// Style sections. Exactly one must be set.
	BoardingPass *BoardingPass `json:"boardingPass,omitempty"`
	Coupon       *Structure    `json:"coupon,omitempty"`
	EventTicket  *Structure    `json:"eventTicket,omitempty"`
	Generic      *Structure    `json:"generic,omitempty"`
	StoreCard    *Structure    `json:"storeCard,omitempty"`

	// Barcodes on the pass. The system uses the first valid entry;
	// additional entries are fallbacks.
	Barcodes []Barcode `json:"barcodes,omitempty"`

	// Colors as CSS-style RGB triples, e.g. rgb(23, 187, 82).
	BackgroundColor string `json:"backgroundColor,omitempty"`
	ForegroundColor string `json:"foregroundColor,omitempty"`
	LabelColor      string `json:"labelColor,omitempty"`

	// Identifier used to group related passes. Optional for event tickets
	// and boarding passes; otherwise not allowed.
	GroupingIdentifier string `json:"groupingIdentifier,omitempty"`

	// Text displayed next to the logo on the pass.
	LogoText string `json:"logoText,omitempty"`

	// Deprecated since iOS 7.0; a shine effect is never applied.
	SuppressStripShine bool `json:"suppressStripShine,omitempty"`

	// Web service used to update the pass.
	AuthenticationToken string `json:"authenticationToken,omitempty"`
	WebServiceURL       string `json:"webServiceURL,omitempty"`

	// Information for Value Added Service Protocol transactions.
	NFC *NFC `json:"nfc,omitempty"`
}

// BoardingPass is the boarding-pass style section.
type BoardingPass struct {
	Structure
	TransitType TransitType `json:"transitType"`
}

// Structure partitions fields into the various parts of the pass front
// and back. Used by all pass styles.
type Structure struct {
	// Fields displayed in the header. Use sparingly; unlike all other
	// fields, they remain visible when passes are stacked.
	HeaderFields []Field `json:"headerFields,omitempty"`

	// Fields displayed prominently on the front of the pass.
	PrimaryFields []Field `json:"primaryFields,omitempty"`

	// Fields displayed on the front of the pass.
	SecondaryFields []Field `json:"secondaryFields,omitempty"`

	// Additional fields on the front of the pass.
	AuxiliaryFields []Field `json:"auxiliaryFields,omitempty"`

	// Fields on the back of the pass.
	BackFields []Field `json:"backFields,omitempty"`
}

// TransitType is the boarding-pass transit kind.
type TransitType string

const (
	TransitTypeAir     TransitType = "PKTransitTypeAir"
	TransitTypeBoat    TransitType = "PKTransitTypeBoat"
	TransitTypeBus     TransitType = "PKTransitTypeBus"
	TransitTypeGeneric TransitType = "PKTransitTypeGeneric"
	TransitTypeTrain   TransitType = "PKTransitTypeTrain"
)

// Barcode describes a pass barcode.
type Barcode struct {
	Format BarcodeFormat `json:"format"`

	// Message or payload to display as the barcode.
	Message string `json:"message"`

	// Text encoding used to convert the message, usually iso-8859-1.
	MessageEncoding string `json:"messageEncoding"`

	// Text displayed near the barcode, e.g. a human-readable version for
	// when the barcode doesn't scan.
	AltText string `json:"altText,omitempty"`
}

// BarcodeFormat is the barcode symbology.
type BarcodeFormat string

const (
	BarcodeFormatQR      BarcodeFormat = "PKBarcodeFormatQR"
	BarcodeFormatPDF417  BarcodeFormat = "PKBarcodeFormatPDF417"
	BarcodeFormatAztec   BarcodeFormat = "PKBarcodeFormatAztec"
	BarcodeFormatCode128 BarcodeFormat = "PKBarcodeFormatCode128"
)

// Beacon is a Bluetooth Low Energy beacon marking where the pass is
// relevant.
type Beacon struct {
	ProximityUUID string  `json:"proximityUUID"`
	Major         *uint16 `json:"major,omitempty"`
	Minor         *uint16 `json:"minor,omitempty"`

	// Text displayed on the lock screen when the pass is currently
	// relevant.
	RelevantText string `json:"relevantText,omitempty"`
}

// Location is a geographic point where the pass is relevant.
type Location struct {
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Altitude     *float64 `json:"altitude,omitempty"`
	RelevantText string   `json:"relevantText,omitempty"`
}

// NFC holds Value Added Service Protocol transaction data.
type NFC struct {
	Message             string `json:"message"`
	EncryptionPublicKey string `json:"encryptionPublicKey,omitempty"`
}

// RGB formats a CSS-style RGB triple.
func RGB(r, g, b uint8) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// Validate checks the structural invariants the platform enforces before
// it will even read the style content.
func (p *Pass) Validate() error {
	if p.FormatVersion != FormatVersion {
		return fmt.Errorf("formatVersion must be %d, got %d", FormatVersion, p.FormatVersion)
	}
	for name, value := range map[string]string{
		"description":        p.Description,
		"organizationName":   p.OrganizationName,
		"passTypeIdentifier": p.PassTypeIdentifier,
		"serialNumber":       p.SerialNumber,
		"teamIdentifier":     p.TeamIdentifier,
	} {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	styles := 0
	for _, set := range []bool{
		p.BoardingPass != nil, p.Coupon != nil, p.EventTicket != nil,
		p.Generic != nil, p.StoreCard != nil,
	} {
		if set {
			styles++
		}
	}
	if styles != 1 {
		return fmt.Errorf("exactly one style section is required, got %d", styles)
	}

	if p.BoardingPass != nil && p.BoardingPass.TransitType == "" {
		return fmt.Errorf("boarding passes require a transitType")
	}
	if (p.WebServiceURL == "") != (p.AuthenticationToken == "") {
		return fmt.Errorf("webServiceURL and authenticationToken must be set together")
	}

	return nil
}

// Encode serializes the pass to the pass.json wire form.
func (p *Pass) Encode() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(p, "", "  ")
}

// Decode parses and validates pass.json bytes.
func Decode(data []byte) (*Pass, error) {
	var pass Pass
	if err := json.Unmarshal(data, &pass); err != nil {
		return nil, fmt.Errorf("pass.json invalid: %w", err)
	}
	if err := pass.Validate(); err != nil {
		return nil, fmt.Errorf("pass.json invalid: %w", err)
	}
	return &pass, nil
}

package passdef

// Builder assembles a Pass fluently. Finish with one of the per-style
// finishers, which attach the structure section and return the pass.
type Builder struct {
	pass      Pass
	structure Structure
}

// NewBuilder starts a pass with the platform-required identity fields.
func NewBuilder(passTypeIdentifier, teamIdentifier, serialNumber string) *Builder {
	return &Builder{
		pass: Pass{
			FormatVersion:      FormatVersion,
			PassTypeIdentifier: passTypeIdentifier,
			TeamIdentifier:     teamIdentifier,
			SerialNumber:       serialNumber,
		},
	}
}

// OrganizationName sets the originating organization's display name.
func (b *Builder) OrganizationName(name string) *Builder {
	b.pass.OrganizationName = name
	return b
}

// Description sets the accessibility description.
func (b *Builder) Description(description string) *Builder {
	b.pass.Description = description
	return b
}

// AppLaunchURL sets the URL passed to the associated app.
func (b *Builder) AppLaunchURL(url string) *Builder {
	b.pass.AppLaunchURL = url
	return b
}

// AddAssociatedStoreIdentifier appends a store item identifier.
func (b *Builder) AddAssociatedStoreIdentifier(id int) *Builder {
	b.pass.AssociatedStoreIdentifiers = append(b.pass.AssociatedStoreIdentifiers, id)
	return b
}

// AddUserInfo attaches a custom key-value pair.
func (b *Builder) AddUserInfo(key, value string) *Builder {
	if b.pass.UserInfo == nil {
		b.pass.UserInfo = make(map[string]string)
	}
	b.pass.UserInfo[key] = value
	return b
}

// ExpirationDate sets when the pass expires (W3C date).
func (b *Builder) ExpirationDate(date string) *Builder {
	b.pass.ExpirationDate = date
	return b
}

// Voided marks the pass as void.
func (b *Builder) Voided() *Builder {
	b.pass.Voided = true
	return b
}

// AddBeacon appends a relevance beacon.
func (b *Builder) AddBeacon(beacon Beacon) *Builder {
	b.pass.Beacons = append(b.pass.Beacons, beacon)
	return b
}

// AddLocation appends a relevance location.
func (b *Builder) AddLocation(location Location) *Builder {
	b.pass.Locations = append(b.pass.Locations, location)
	return b
}

// MaxDistance caps the relevance radius in meters.
func (b *Builder) MaxDistance(meters int) *Builder {
	b.pass.MaxDistance = meters
	return b
}

// RelevantDate sets when the pass becomes relevant (W3C date).
func (b *Builder) RelevantDate(date string) *Builder {
	b.pass.RelevantDate = date
	return b
}

// AddHeaderField appends a header field.
func (b *Builder) AddHeaderField(field Field) *Builder {
	b.structure.HeaderFields = append(b.structure.HeaderFields, field)
	return b
}

// AddPrimaryField appends a primary field.
func (b *Builder) AddPrimaryField(field Field) *Builder {
	b.structure.PrimaryFields = append(b.structure.PrimaryFields, field)
	return b
}

// AddSecondaryField appends a secondary field.
func (b *Builder) AddSecondaryField(field Field) *Builder {
	b.structure.SecondaryFields = append(b.structure.SecondaryFields, field)
	return b
}

// AddAuxiliaryField appends an auxiliary field.
func (b *Builder) AddAuxiliaryField(field Field) *Builder {
	b.structure.AuxiliaryFields = append(b.structure.AuxiliaryFields, field)
	return b
}

// AddBackField appends a back field.
func (b *Builder) AddBackField(field Field) *Builder {
	b.structure.BackFields = append(b.structure.BackFields, field)
	return b
}

// AddBarcode appends a barcode; the first valid one is displayed.
func (b *Builder) AddBarcode(barcode Barcode) *Builder {
	b.pass.Barcodes = append(b.pass.Barcodes, barcode)
	return b
}

// BackgroundColor sets the background as a CSS-style RGB triple.
func (b *Builder) BackgroundColor(color string) *Builder {
	b.pass.BackgroundColor = color
	return b
}

// ForegroundColor sets the foreground as a CSS-style RGB triple.
func (b *Builder) ForegroundColor(color string) *Builder {
	b.pass.ForegroundColor = color
	return b
}

// LabelColor sets the label color as a CSS-style RGB triple.
func (b *Builder) LabelColor(color string) *Builder {
	b.pass.LabelColor = color
	return b
}

// GroupingIdentifier groups tightly related passes, such as connections
// of one trip.
func (b *Builder) GroupingIdentifier(identifier string) *Builder {
	b.pass.GroupingIdentifier = identifier
	return b
}

// LogoText sets the text displayed next to the logo.
func (b *Builder) LogoText(text string) *Builder {
	b.pass.LogoText = text
	return b
}

// WebService configures the pass-update web service.
func (b *Builder) WebService(url, authenticationToken string) *Builder {
	b.pass.WebServiceURL = url
	b.pass.AuthenticationToken = authenticationToken
	return b
}

// NFC attaches Value Added Service Protocol data.
func (b *Builder) NFC(message, encryptionPublicKey string) *Builder {
	b.pass.NFC = &NFC{Message: message, EncryptionPublicKey: encryptionPublicKey}
	return b
}

// FinishBoardingPass completes the pass in the boarding-pass style.
func (b *Builder) FinishBoardingPass(transitType TransitType) (*Pass, error) {
	b.pass.BoardingPass = &BoardingPass{Structure: b.structure, TransitType: transitType}
	return b.finish()
}

// FinishCoupon completes the pass in the coupon style.
func (b *Builder) FinishCoupon() (*Pass, error) {
	b.pass.Coupon = &Structure{}
	*b.pass.Coupon = b.structure
	return b.finish()
}

// FinishEventTicket completes the pass in the event-ticket style.
func (b *Builder) FinishEventTicket() (*Pass, error) {
	b.pass.EventTicket = &Structure{}
	*b.pass.EventTicket = b.structure
	return b.finish()
}

// FinishGeneric completes the pass in the generic style.
func (b *Builder) FinishGeneric() (*Pass, error) {
	b.pass.Generic = &Structure{}
	*b.pass.Generic = b.structure
	return b.finish()
}

// FinishStoreCard completes the pass in the store-card style.
func (b *Builder) FinishStoreCard() (*Pass, error) {
	b.pass.StoreCard = &Structure{}
	*b.pass.StoreCard = b.structure
	return b.finish()
}

func (b *Builder) finish() (*Pass, error) {
	if err := b.pass.Validate(); err != nil {
		return nil, err
	}
	pass := b.pass
	return &pass, nil
}

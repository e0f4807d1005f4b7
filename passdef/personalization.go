package passdef

// Personalization describes a rewards-program signup sheet, stored as
// personalization.json alongside the pass.
type Personalization struct {
	// Fields the user must supply when signing up.
	RequiredPersonalizationFields []PersonalizationField `json:"requiredPersonalizationFields"`

	// Description displayed on the signup sheet.
	Description string `json:"description"`

	// Terms the user must accept before signing up.
	TermsAndConditions string `json:"termsAndConditions,omitempty"`
}

// PersonalizationField identifies one piece of requested user data.
type PersonalizationField string

const (
	PersonalizationFieldName         PersonalizationField = "PKPassPersonalizationFieldName"
	PersonalizationFieldPostalCode   PersonalizationField = "PKPassPersonalizationFieldPostalCode"
	PersonalizationFieldEmailAddress PersonalizationField = "PKPassPersonalizationFieldEmailAddress"
	PersonalizationFieldPhoneNumber  PersonalizationField = "PKPassPersonalizationFieldPhoneNumber"
)

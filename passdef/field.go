package passdef

// Field is one labeled value displayed on a pass.
type Field struct {
	// The key must be unique within the scope of the entire pass.
	Key string `json:"key"`

	// Label text for the field.
	Label string `json:"label,omitempty"`

	// Value of the field: a string, integer, or float.
	Value any `json:"value"`

	// Attributed value of the field. May contain HTML markup for links;
	// only the <a> tag and its href attribute are supported. Overrides the
	// text specified by the value key.
	AttributedValue string `json:"attributedValue,omitempty"`

	// Format string for the alert shown when the pass is updated. Must
	// contain the escape %@, replaced with the field's new value. Without
	// it, the user isn't notified of changes.
	ChangeMessage string `json:"changeMessage,omitempty"`

	// Data detectors applied to the field's value. Defaults to all;
	// provide an empty array to use none. Applied only to back fields.
	DataDetectorTypes []DataDetectorType `json:"dataDetectorTypes,omitempty"`

	// Alignment of the field's contents.
	TextAlignment TextAlignment `json:"textAlignment,omitempty"`

	// Date formatting, for values holding W3C dates.
	DateStyle       DateStyle `json:"dateStyle,omitempty"`
	TimeStyle       DateStyle `json:"timeStyle,omitempty"`
	IgnoresTimeZone bool      `json:"ignoresTimeZone,omitempty"`
	IsRelative      bool      `json:"isRelative,omitempty"`

	// Number formatting, for numeric values. CurrencyCode and NumberStyle
	// are mutually exclusive.
	CurrencyCode string      `json:"currencyCode,omitempty"`
	NumberStyle  NumberStyle `json:"numberStyle,omitempty"`
}

// NewField creates a field with the common key/label/value triple.
func NewField(key, label string, value any) Field {
	return Field{Key: key, Label: label, Value: value}
}

// TextAlignment positions a field's contents.
type TextAlignment string

const (
	TextAlignmentLeft    TextAlignment = "PKTextAlignmentLeft"
	TextAlignmentCenter  TextAlignment = "PKTextAlignmentCenter"
	TextAlignmentRight   TextAlignment = "PKTextAlignmentRight"
	TextAlignmentNatural TextAlignment = "PKTextAlignmentNatural"
)

// DataDetectorType marks content the system turns into live links.
type DataDetectorType string

const (
	DataDetectorPhoneNumber   DataDetectorType = "PKDataDetectorTypePhoneNumber"
	DataDetectorLink          DataDetectorType = "PKDataDetectorTypeLink"
	DataDetectorAddress       DataDetectorType = "PKDataDetectorTypeAddress"
	DataDetectorCalendarEvent DataDetectorType = "PKDataDetectorTypeCalendarEvent"
)

// DateStyle selects date/time display detail.
type DateStyle string

const (
	DateStyleNone   DateStyle = "PKDateStyleNone"
	DateStyleShort  DateStyle = "PKDateStyleShort"
	DateStyleMedium DateStyle = "PKDateStyleMedium"
	DateStyleLong   DateStyle = "PKDateStyleLong"
	DateStyleFull   DateStyle = "PKDateStyleFull"
)

// NumberStyle selects numeric display format.
type NumberStyle string

const (
	NumberStyleDecimal    NumberStyle = "PKNumberStyleDecimal"
	NumberStylePercent    NumberStyle = "PKNumberStylePercent"
	NumberStyleScientific NumberStyle = "PKNumberStyleScientific"
	NumberStyleSpellOut   NumberStyle = "PKNumberStyleSpellOut"
)

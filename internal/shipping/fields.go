package shipping

import (
	"regexp"
	"unicode/utf8"
)

// Field names accepted by the per-field validators.
const (
	FieldName       = "name"
	FieldStreet1    = "street1"
	FieldCity       = "city"
	FieldState      = "state"
	FieldPostalCode = "postalCode"
)

// US ZIP or ZIP+4.
var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// Validity is the tri-state outcome of a field check. A field is Unknown until
// the user has left it at least once.
type Validity int

const (
	ValidityUnknown Validity = iota
	ValidityValid
	ValidityInvalid
)

// FieldStatus tracks real-time form feedback for a single address field.
// Until Touched, the field renders as neutral regardless of its value.
type FieldStatus struct {
	Touched bool
	Valid   Validity
	Error   string
}

// FieldStates holds per-field feedback for the whole custom-address form.
type FieldStates map[string]FieldStatus

// NewFieldStates returns neutral state for every validated address field.
func NewFieldStates() FieldStates {
	return FieldStates{
		FieldName:       {},
		FieldStreet1:    {},
		FieldCity:       {},
		FieldState:      {},
		FieldPostalCode: {},
	}
}

// CheckField validates a single field's value. Checks run on field exit, not
// on every keystroke, so messages only appear once the user moves on.
func CheckField(field, value string) FieldStatus {
	st := FieldStatus{Touched: true}

	switch field {
	case FieldName:
		switch {
		case value == "":
			st.Valid = ValidityInvalid
			st.Error = "A name is needed for shipping"
		case utf8.RuneCountInString(value) == 1:
			st.Valid = ValidityInvalid
			st.Error = "Name must be at least 2 characters"
		default:
			st.Valid = ValidityValid
		}
	case FieldStreet1:
		if value == "" {
			st.Valid = ValidityInvalid
			st.Error = "Street address is required"
		} else {
			st.Valid = ValidityValid
		}
	case FieldCity:
		if value == "" {
			st.Valid = ValidityInvalid
			st.Error = "City is required"
		} else {
			st.Valid = ValidityValid
		}
	case FieldState:
		if value == "" {
			st.Valid = ValidityInvalid
			st.Error = "Please select a state"
		} else {
			st.Valid = ValidityValid
		}
	case FieldPostalCode:
		switch {
		case value == "":
			st.Valid = ValidityInvalid
			st.Error = "ZIP code is required"
		case !zipPattern.MatchString(value):
			st.Valid = ValidityInvalid
			st.Error = "Enter a valid ZIP code (12345 or 12345-6789)"
		default:
			st.Valid = ValidityValid
		}
	}

	return st
}

// Blur marks a field as exited and records its validation result.
func (fs FieldStates) Blur(field, value string) {
	if _, ok := fs[field]; !ok {
		return
	}
	fs[field] = CheckField(field, value)
}

// ApplySuggestion fills field state from an autocomplete suggestion,
// validating every affected field immediately so a full autofill shows
// accurate state without waiting for blur events.
func (fs FieldStates) ApplySuggestion(s AddressSuggestion) {
	fs[FieldStreet1] = CheckField(FieldStreet1, s.Street1)
	fs[FieldCity] = CheckField(FieldCity, s.City)
	fs[FieldState] = CheckField(FieldState, s.State)
	fs[FieldPostalCode] = CheckField(FieldPostalCode, s.PostalCode)
}

// AllValid reports whether every touched-or-checked field is valid and none
// is invalid or unchecked.
func (fs FieldStates) AllValid() bool {
	for _, st := range fs {
		if st.Valid != ValidityValid {
			return false
		}
	}
	return true
}

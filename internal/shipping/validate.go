package shipping

// ValidateAddress checks a shipping address for completeness. It returns one
// human-readable message per missing field and an empty slice for a valid
// address. Presence only; format rules live in the field-level validators.
func ValidateAddress(addr Address) []string {
	var errs []string
	if addr.Name == "" {
		errs = append(errs, "Shipping name is required")
	}
	if addr.Street1 == "" {
		errs = append(errs, "Street address is required")
	}
	if addr.City == "" {
		errs = append(errs, "City is required")
	}
	if addr.State == "" {
		errs = append(errs, "State is required")
	}
	if addr.PostalCode == "" {
		errs = append(errs, "Postal code is required")
	}
	return errs
}

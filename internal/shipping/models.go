package shipping

// Address is a US shipping address. JSON tags follow the fixed wire shape of
// the order-submission contract.
//
// An address has one of two provenances: "on file" (supplied by the box-office
// record, read-only) or "custom" (user-entered during the shipping step).
type Address struct {
	Name       string `json:"name"`
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// AddressSuggestion is one result from an address-autocomplete lookup.
type AddressSuggestion struct {
	Label      string `json:"label"`
	Street1    string `json:"street1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

package cart

import "keepsake/internal/shipping"

// SeedCartRequest creates a demo cart session for the shell page. Validated
// with struct tags rather than hand-rolled checks: this endpoint is internal
// tooling, not part of the widget's wire contract.
type SeedCartRequest struct {
	SessionKey      string            `json:"sessionKey" validate:"required"`
	ConstituentID   string            `json:"constituentId"`
	EventName       string            `json:"eventName" validate:"required"`
	PerformanceDate string            `json:"performanceDate" validate:"required"`
	Venue           string            `json:"venue" validate:"required"`
	Seats           []SeedSeat        `json:"seats" validate:"required,min=1,dive"`
	AddressOnFile   *shipping.Address `json:"addressOnFile"`
}

// SeedSeat is one seat line in a seed request.
type SeedSeat struct {
	Section    string  `json:"section" validate:"required"`
	Row        string  `json:"row" validate:"required"`
	SeatNumber string  `json:"seatNumber" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	SeatID     string  `json:"seatId"`
}

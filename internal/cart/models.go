package cart

import "keepsake/internal/shipping"

// Seat is one ticket line in a cart session.
type Seat struct {
	Section    string  `json:"section"`
	Row        string  `json:"row"`
	SeatNumber string  `json:"seatNumber"`
	Price      float64 `json:"price"`
	SeatID     string  `json:"seatId,omitempty"`
}

// Cart is the session cart the widget mounts against. It is assembled by the
// box-office checkout flow; this service only reads and seeds it.
type Cart struct {
	SessionKey      string  `json:"sessionKey"`
	ConstituentID   string  `json:"constituentId,omitempty"`
	EventName       string  `json:"eventName"`
	PerformanceDate string  `json:"performanceDate"`
	Venue           string  `json:"venue"`
	Seats           []Seat  `json:"seats"`
	TicketTotal     float64 `json:"ticketTotal"`
}

// Session bundles a cart with the constituent's on-file shipping address,
// when one exists.
type Session struct {
	Cart          Cart              `json:"cart"`
	AddressOnFile *shipping.Address `json:"addressOnFile"`
}

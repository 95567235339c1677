package orders

import "keepsake/internal/shipping"

// OrderRequest is the inbound order-submission body. Field names are the
// fixed wire contract shared with the widget; the shape is deserialized and
// validated here rather than trusted.
type OrderRequest struct {
	SessionKey      string            `json:"sessionKey"`
	Selections      []OrderSelection  `json:"selections"`
	SpecialMessage  string            `json:"specialMessage,omitempty"`
	ShippingAddress *shipping.Address `json:"shippingAddress"`
	TotalPrice      float64           `json:"totalPrice"`
}

// OrderSelection pairs one cart seat with a chosen design.
type OrderSelection struct {
	SeatID     string `json:"seatId,omitempty"`
	Section    string `json:"section"`
	Row        string `json:"row"`
	SeatNumber string `json:"seatNumber"`
	DesignID   string `json:"designId"`
}

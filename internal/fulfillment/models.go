package fulfillment

import (
	"time"

	"keepsake/internal/shipping"
)

// PaymentConfirmation is the message the external payment system publishes
// once a checkout settles. It is the only trigger for fulfillment.
type PaymentConfirmation struct {
	SessionKey  string    `json:"sessionKey"`
	PaymentRef  string    `json:"paymentRef"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

// Line is one physical keepsake in a fulfillment order, resolved from a
// design id to the partner's variant code.
type Line struct {
	VariantCode string `json:"variant_code"`
	DesignID    string `json:"design_id"`
	Row         string `json:"row"`
	SeatNumber  string `json:"seat_number"`
}

// Order is the payload handed to the fulfillment partner.
type Order struct {
	OrderRef       string           `json:"order_ref"`
	SessionKey     string           `json:"session_key"`
	ContributionID string           `json:"contribution_id"`
	PaymentRef     string           `json:"payment_ref"`
	ShipTo         shipping.Address `json:"ship_to"`
	SpecialMessage string           `json:"special_message,omitempty"`
	Lines          []Line           `json:"lines"`
}

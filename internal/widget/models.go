package widget

import "keepsake/internal/shipping"

// Phase is the widget's interaction phase.
type Phase string

const (
	PhaseCollapsed       Phase = "collapsed"
	PhaseChoosingDesigns Phase = "choosingDesigns"
	PhaseShipping        Phase = "shipping"
	PhaseSuccess         Phase = "success"
)

// ShippingMode selects between the constituent's on-file address and a
// user-entered one.
type ShippingMode string

const (
	ModeAddressOnFile ShippingMode = "addressOnFile"
	ModeCustomAddress ShippingMode = "customAddress"
)

// MessageMaxLength caps the optional keepsake message.
const MessageMaxLength = 80

// Seat is one ticket in the cart, supplied by the host page and never created
// or destroyed by the widget.
type Seat struct {
	Section    string  `json:"section"`
	Row        string  `json:"row"`
	SeatNumber string  `json:"seatNumber"`
	Price      float64 `json:"price"`
	SeatID     string  `json:"seatId,omitempty"`
}

// Key returns the seat's identity for selection bookkeeping. Row plus seat
// number is assumed unique within one cart.
func (s Seat) Key() string {
	return s.Row + ":" + s.SeatNumber
}

// State is the widget's authoritative state. It is owned by exactly one
// Widget and mutated only by its operations; presentation layers observe it
// through the change hook rather than holding their own copy.
type State struct {
	Phase          Phase
	SeatSelections map[string]string // seat key -> design id, "" means none chosen
	IncludeMessage bool
	Message        string
	ShippingMode   ShippingMode
	CustomAddress  shipping.Address
	Submitting     bool
	Error          string // non-empty only while Phase == PhaseShipping after a failed submission

	// Suggestions is the freshest completed autocomplete batch. Cleared when
	// the query is cleared or a suggestion is applied.
	Suggestions []shipping.AddressSuggestion
}

// Clone returns a deep copy, so observers and tests can snapshot state
// without aliasing the live selection map.
func (s State) Clone() State {
	out := s
	out.SeatSelections = make(map[string]string, len(s.SeatSelections))
	for k, v := range s.SeatSelections {
		out.SeatSelections[k] = v
	}
	out.Suggestions = append([]shipping.AddressSuggestion(nil), s.Suggestions...)
	return out
}

// ResultSelection pairs a seat with its chosen design in the completion
// callback payload.
type ResultSelection struct {
	Seat       Seat   `json:"seat"`
	DesignID   string `json:"designId"`
	DesignName string `json:"designName"`
}

// LineItem is the cart line the server reports for a successful order.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// Result is handed to the completion callback exactly once per successful
// submission.
type Result struct {
	Success        bool              `json:"success"`
	ContributionID string            `json:"contributionId,omitempty"`
	Quantity       int               `json:"quantity"`
	Total          float64           `json:"total"`
	Selections     []ResultSelection `json:"selections"`
	SpecialMessage string            `json:"specialMessage,omitempty"`
	LineItem       *LineItem         `json:"lineItem,omitempty"`
}

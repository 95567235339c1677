// Package widget implements the interaction core of the commemorative-ticket
// upsell: a four-phase state machine (collapsed, choosing designs, shipping,
// success), per-seat design selection bookkeeping, and the one-shot order
// submission flow. It is presentation-free; a UI layers rendering on top via
// the change hook and callbacks.
//
// A Widget is single-session and not goroutine-safe: operations are expected
// to run one at a time on a UI event loop. The asynchronous boundaries are the
// network call inside Submit and the debounced autocomplete lookups, whose
// completions are delivered back through the same loop.
package widget

import (
	"context"
	"net/http"
	"time"

	"keepsake/internal/catalog"
	"keepsake/internal/shipping"
	"keepsake/pkg/logger"
)

// DefaultEndpoint is the order-submission URL used when the host supplies none.
const DefaultEndpoint = "http://localhost:8080/api/v1/orders"

// Config carries everything the host page injects at mount time. Seats,
// the on-file address, and the catalog are read-only to the widget.
type Config struct {
	Seats         []Seat
	AddressOnFile *shipping.Address
	SessionKey    string

	// APIEndpoint overrides DefaultEndpoint when set.
	APIEndpoint string

	// Catalog resolves design names and the unit price. Required.
	Catalog catalog.Service

	// HTTPClient overrides the default submission client (used by tests).
	HTTPClient *http.Client

	// Autocomplete is the optional address-lookup capability. Nil means the
	// lookup UI is suppressed entirely.
	Autocomplete shipping.Autocompleter

	// AutocompleteDelay overrides the debounce pause (used by tests).
	AutocompleteDelay time.Duration

	Logger *logger.Logger

	// OnAddToOrder fires exactly once per successful submission.
	OnAddToOrder func(Result)
	// OnRemove fires when the buyer removes the added tickets.
	OnRemove func()
	// OnOpenDetails fires when the details-and-policies affordance is used.
	OnOpenDetails func()
	// OnChange fires after every state mutation with a snapshot.
	OnChange func(State)
}

// Widget owns the ModuleState for one mounted upsell instance.
type Widget struct {
	cfg    Config
	seats  []Seat
	state  State
	client *http.Client
	log    *logger.Logger

	fields    shipping.FieldStates
	debouncer *shipping.Debouncer
}

// New mounts a widget over the initial seat list. Every seat starts with no
// design chosen.
func New(cfg Config) *Widget {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.GetDefault()
	}

	w := &Widget{
		cfg:    cfg,
		client: client,
		log:    log,
		fields: shipping.NewFieldStates(),
	}
	w.state = initialState()
	w.SetSeats(cfg.Seats)
	delay := cfg.AutocompleteDelay
	if delay <= 0 {
		delay = shipping.DefaultDebounce
	}
	w.debouncer = shipping.NewDebouncer(cfg.Autocomplete, delay, w.applySuggestions)
	return w
}

func initialState() State {
	return State{
		Phase:          PhaseCollapsed,
		SeatSelections: map[string]string{},
		ShippingMode:   ModeAddressOnFile,
	}
}

// State returns a snapshot of the current state.
func (w *Widget) State() State {
	return w.state.Clone()
}

// Seats returns the seat list the widget was mounted with.
func (w *Widget) Seats() []Seat {
	out := make([]Seat, len(w.seats))
	copy(out, w.seats)
	return out
}

// FieldStates returns the per-field shipping-form feedback.
func (w *Widget) FieldStates() shipping.FieldStates {
	return w.fields
}

// SetSeats replaces the seat list. Selection entries are added lazily for
// seats the widget has not seen; existing selections are preserved.
func (w *Widget) SetSeats(seats []Seat) {
	w.seats = make([]Seat, len(seats))
	copy(w.seats, seats)
	for _, s := range seats {
		if _, ok := w.state.SeatSelections[s.Key()]; !ok {
			w.state.SeatSelections[s.Key()] = ""
		}
	}
	w.notify()
}

// Toggle flips the widget open or closed. It is a pure visibility flip: it
// never clears selections, so re-opening after success shows the prior order
// until Remove is used.
func (w *Widget) Toggle() {
	switch w.state.Phase {
	case PhaseCollapsed:
		w.state.Phase = PhaseChoosingDesigns
	case PhaseChoosingDesigns, PhaseShipping:
		w.state.Phase = PhaseCollapsed
		w.state.Error = ""
	case PhaseSuccess:
		// No-op: success collapses to a minimal header in the UI layer only.
	}
	w.notify()
}

// Expand forces the design-selection phase. Used by the Edit affordance and
// idempotent from collapsed.
func (w *Widget) Expand() {
	w.state.Phase = PhaseChoosingDesigns
	w.state.Error = ""
	w.notify()
}

// SelectDesign records the chosen design for a seat. An empty design id
// clears the selection.
func (w *Widget) SelectDesign(seatKey, designID string) {
	if _, ok := w.state.SeatSelections[seatKey]; !ok {
		// Unknown seat keys are ignored rather than invented.
		return
	}
	w.state.SeatSelections[seatKey] = designID
	w.notify()
}

// SetIncludeMessage toggles the optional keepsake message.
func (w *Widget) SetIncludeMessage(include bool) {
	w.state.IncludeMessage = include
	w.notify()
}

// SetMessage records the keepsake message, capped at MessageMaxLength. The
// cap counts characters, not bytes, so multi-byte input is never split.
func (w *Widget) SetMessage(message string) {
	if r := []rune(message); len(r) > MessageMaxLength {
		message = string(r[:MessageMaxLength])
	}
	w.state.Message = message
	w.notify()
}

// ContinueToShipping advances from design selection to the shipping step.
// The UI disables the action until a design is chosen; the guard here is
// defensive.
func (w *Widget) ContinueToShipping() {
	if w.state.Phase != PhaseChoosingDesigns || !w.CanContinue() {
		return
	}
	w.state.Phase = PhaseShipping
	w.notify()
}

// BackToDesigns returns to design selection, preserving selections, message,
// and any address entries.
func (w *Widget) BackToDesigns() {
	if w.state.Phase != PhaseShipping {
		return
	}
	w.state.Phase = PhaseChoosingDesigns
	w.state.Error = ""
	w.notify()
}

// SetShippingMode switches between the on-file and custom address.
func (w *Widget) SetShippingMode(mode ShippingMode) {
	w.state.ShippingMode = mode
	w.notify()
}

// SetCustomAddressField records one field of the user-entered address.
func (w *Widget) SetCustomAddressField(field, value string) {
	switch field {
	case shipping.FieldName:
		w.state.CustomAddress.Name = value
	case shipping.FieldStreet1:
		w.state.CustomAddress.Street1 = value
	case "street2":
		w.state.CustomAddress.Street2 = value
	case shipping.FieldCity:
		w.state.CustomAddress.City = value
	case shipping.FieldState:
		w.state.CustomAddress.State = value
	case shipping.FieldPostalCode:
		w.state.CustomAddress.PostalCode = value
	default:
		return
	}
	w.notify()
}

// BlurField validates one address field on exit.
func (w *Widget) BlurField(field, value string) {
	w.fields.Blur(field, value)
	w.notify()
}

// QueryAutocomplete schedules a debounced address lookup. A no-op when no
// autocompleter was injected; a blank query cancels and clears the current
// suggestion batch.
func (w *Widget) QueryAutocomplete(ctx context.Context, query string) {
	if query == "" && len(w.state.Suggestions) > 0 {
		w.state.Suggestions = nil
		w.notify()
	}
	w.debouncer.Query(ctx, query)
}

// AutocompleteEnabled reports whether the lookup capability is configured.
func (w *Widget) AutocompleteEnabled() bool {
	return w.debouncer.Enabled()
}

// ApplySuggestion fills the custom address from a chosen suggestion,
// validates every affected field immediately, and dismisses the suggestion
// list.
func (w *Widget) ApplySuggestion(s shipping.AddressSuggestion) {
	w.state.CustomAddress.Street1 = s.Street1
	w.state.CustomAddress.City = s.City
	w.state.CustomAddress.State = s.State
	w.state.CustomAddress.PostalCode = s.PostalCode
	w.state.Suggestions = nil
	w.fields.ApplySuggestion(s)
	w.notify()
}

// applySuggestions receives each lookup batch that is still current when it
// completes and publishes it through the state snapshot. A failed lookup
// leaves the previous batch in place; autocomplete errors are never surfaced.
func (w *Widget) applySuggestions(query string, suggestions []shipping.AddressSuggestion, err error) {
	if err != nil {
		return
	}
	w.state.Suggestions = suggestions
	w.notify()
}

// Edit returns from success to design selection with all state preserved, so
// the buyer can amend and resubmit.
func (w *Widget) Edit() {
	if w.state.Phase != PhaseSuccess {
		return
	}
	w.state.Phase = PhaseChoosingDesigns
	w.state.Error = ""
	w.notify()
}

// Remove resets the widget to its mounted state and collapses it. This is the
// only operation that clears selections.
func (w *Widget) Remove() {
	w.state = initialState()
	for _, s := range w.seats {
		w.state.SeatSelections[s.Key()] = ""
	}
	w.fields = shipping.NewFieldStates()
	if w.cfg.OnRemove != nil {
		w.cfg.OnRemove()
	}
	w.notify()
}

// OpenDetails activates the details-and-policies affordance.
func (w *Widget) OpenDetails() {
	if w.cfg.OnOpenDetails != nil {
		w.cfg.OnOpenDetails()
	}
}

// Derived values; recomputed on demand, never stored.

// SelectedSeats returns the seats with a non-empty design selection, in seat
// order.
func (w *Widget) SelectedSeats() []Seat {
	var out []Seat
	for _, s := range w.seats {
		if w.state.SeatSelections[s.Key()] != "" {
			out = append(out, s)
		}
	}
	return out
}

// TotalPrice is the keepsake total at the configured unit price.
func (w *Widget) TotalPrice() float64 {
	return float64(len(w.SelectedSeats())) * w.cfg.Catalog.UnitPrice()
}

// CanContinue gates the advance to shipping.
func (w *Widget) CanContinue() bool {
	return len(w.SelectedSeats()) > 0
}

func (w *Widget) notify() {
	if w.cfg.OnChange != nil {
		w.cfg.OnChange(w.state.Clone())
	}
}

package widget

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"keepsake/internal/catalog"
	"keepsake/internal/shipping"
)

func testCatalog() catalog.Service {
	return catalog.NewService(catalog.Catalog{
		OrgName:   "The Grand Theatre",
		UnitPrice: 20,
		Designs: []catalog.DesignOption{
			{ID: "design-a", Name: "Classic Gold", Description: "gold foil", Available: true},
			{ID: "design-b", Name: "Marquee Night", Description: "black marquee", Available: true},
		},
	})
}

func testSeats() []Seat {
	return []Seat{
		{Section: "Orchestra", Row: "B", SeatNumber: "13", Price: 85},
		{Section: "Orchestra", Row: "B", SeatNumber: "14", Price: 85},
		{Section: "Orchestra", Row: "B", SeatNumber: "15", Price: 85},
	}
}

func newTestWidget(t *testing.T, cfg Config) *Widget {
	t.Helper()
	if cfg.Seats == nil {
		cfg.Seats = testSeats()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = testCatalog()
	}
	if cfg.SessionKey == "" {
		cfg.SessionKey = "session-123"
	}
	return New(cfg)
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	w := newTestWidget(t, Config{})
	st := w.State()

	if st.Phase != PhaseCollapsed {
		t.Errorf("initial phase = %q, want collapsed", st.Phase)
	}
	if len(st.SeatSelections) != 3 {
		t.Errorf("expected a selection entry per seat, got %d", len(st.SeatSelections))
	}
	for key, design := range st.SeatSelections {
		if design != "" {
			t.Errorf("seat %q should start unselected, got %q", key, design)
		}
	}
	if st.ShippingMode != ModeAddressOnFile {
		t.Errorf("initial shipping mode = %q, want addressOnFile", st.ShippingMode)
	}
	if w.CanContinue() {
		t.Error("cannot continue with nothing selected")
	}
}

func TestToggleAndExpand(t *testing.T) {
	t.Parallel()

	w := newTestWidget(t, Config{})

	w.Toggle()
	if got := w.State().Phase; got != PhaseChoosingDesigns {
		t.Fatalf("toggle from collapsed = %q, want choosingDesigns", got)
	}

	w.Toggle()
	if got := w.State().Phase; got != PhaseCollapsed {
		t.Fatalf("toggle from choosingDesigns = %q, want collapsed", got)
	}

	w.Expand()
	if got := w.State().Phase; got != PhaseChoosingDesigns {
		t.Fatalf("expand = %q, want choosingDesigns", got)
	}

	// Toggle closes from shipping as well.
	w.SelectDesign("B:13", "design-a")
	w.ContinueToShipping()
	w.Toggle()
	if got := w.State().Phase; got != PhaseCollapsed {
		t.Fatalf("toggle from shipping = %q, want collapsed", got)
	}
}

func TestSelectionMonotonicity(t *testing.T) {
	t.Parallel()

	// Selecting then clearing a design always removes the seat from
	// SelectedSeats, regardless of prior history.
	w := newTestWidget(t, Config{})
	w.Expand()

	w.SelectDesign("B:13", "design-a")
	w.SelectDesign("B:13", "design-b")
	w.SelectDesign("B:14", "design-a")
	w.SelectDesign("B:13", "")

	selected := w.SelectedSeats()
	if len(selected) != 1 {
		t.Fatalf("expected 1 selected seat, got %d", len(selected))
	}
	if selected[0].SeatNumber != "14" {
		t.Errorf("seat 13 should be excluded after clearing, got seat %s", selected[0].SeatNumber)
	}
}

func TestContinueGatingAndTotal(t *testing.T) {
	t.Parallel()

	w := newTestWidget(t, Config{})
	w.Expand()

	if w.CanContinue() || w.TotalPrice() != 0 {
		t.Error("no selection: canContinue must be false and total zero")
	}

	w.SelectDesign("B:13", "design-a")
	w.SelectDesign("B:14", "design-b")

	if !w.CanContinue() {
		t.Error("canContinue must follow selectedSeats > 0")
	}
	if got := w.TotalPrice(); got != 40 {
		t.Errorf("totalPrice = %v, want 40 (2 seats at 20)", got)
	}

	// Gate is defensive: ContinueToShipping without a selection is a no-op.
	w2 := newTestWidget(t, Config{})
	w2.Expand()
	w2.ContinueToShipping()
	if got := w2.State().Phase; got != PhaseChoosingDesigns {
		t.Errorf("ungated continue moved phase to %q", got)
	}
}

func TestUnknownSeatKeyIgnored(t *testing.T) {
	t.Parallel()

	w := newTestWidget(t, Config{})
	w.Expand()
	w.SelectDesign("Z:99", "design-a")

	if len(w.SelectedSeats()) != 0 {
		t.Error("selecting an unknown seat key must not invent a seat")
	}
	if _, ok := w.State().SeatSelections["Z:99"]; ok {
		t.Error("unknown seat key must not be added to the selection map")
	}
}

func TestLazySelectionEntriesForNewSeats(t *testing.T) {
	t.Parallel()

	w := newTestWidget(t, Config{})
	w.Expand()
	w.SelectDesign("B:13", "design-a")

	seats := append(testSeats(), Seat{Section: "Orchestra", Row: "C", SeatNumber: "1", Price: 60})
	w.SetSeats(seats)

	st := w.State()
	if st.SeatSelections["B:13"] != "design-a" {
		t.Error("existing selections must survive a seat-list refresh")
	}
	if design, ok := st.SeatSelections["C:1"]; !ok || design != "" {
		t.Errorf("new seat should gain an empty selection entry, got %q ok=%v", design, ok)
	}
}

func TestMessageCappedAtInput(t *testing.T) {
	t.Parallel()

	w := newTestWidget(t, Config{})
	long := make([]byte, 120)
	for i := range long {
		long[i] = 'x'
	}
	w.SetMessage(string(long))

	if got := len(w.State().Message); got != MessageMaxLength {
		t.Errorf("message length = %d, want %d", got, MessageMaxLength)
	}
}

func TestMessageCapCountsCharacters(t *testing.T) {
	t.Parallel()

	// 80 two-byte runes are within the limit; the cap must count characters,
	// not bytes, and never split a rune.
	w := newTestWidget(t, Config{})
	exact := strings.Repeat("é", MessageMaxLength)
	w.SetMessage(exact)
	if got := w.State().Message; got != exact {
		t.Errorf("an 80-character multi-byte message must survive intact, got %d runes", utf8.RuneCountInString(got))
	}

	w.SetMessage(strings.Repeat("é", MessageMaxLength+10))
	got := w.State().Message
	if n := utf8.RuneCountInString(got); n != MessageMaxLength {
		t.Errorf("capped message = %d runes, want %d", n, MessageMaxLength)
	}
	if !utf8.ValidString(got) {
		t.Error("cap must not split a rune")
	}
}

func TestBackToDesignsPreservesState(t *testing.T) {
	t.Parallel()

	w := newTestWidget(t, Config{})
	w.Expand()
	w.SelectDesign("B:13", "design-a")
	w.SetIncludeMessage(true)
	w.SetMessage("Break a leg!")
	w.ContinueToShipping()
	w.SetShippingMode(ModeCustomAddress)
	w.SetCustomAddressField(shipping.FieldCity, "New York")

	w.BackToDesigns()

	st := w.State()
	if st.Phase != PhaseChoosingDesigns {
		t.Fatalf("phase = %q, want choosingDesigns", st.Phase)
	}
	if st.SeatSelections["B:13"] != "design-a" || st.Message != "Break a leg!" || st.CustomAddress.City != "New York" {
		t.Error("backToDesigns must preserve selections, message, and address entries")
	}
}

func TestRemoveResetsEverything(t *testing.T) {
	t.Parallel()

	removed := false
	w := newTestWidget(t, Config{OnRemove: func() { removed = true }})
	w.Expand()
	w.SelectDesign("B:13", "design-a")
	w.SetIncludeMessage(true)
	w.SetMessage("hello")
	w.ContinueToShipping()
	w.SetShippingMode(ModeCustomAddress)
	w.SetCustomAddressField(shipping.FieldName, "Ada")

	w.Remove()

	st := w.State()
	if st.Phase != PhaseCollapsed {
		t.Errorf("phase = %q, want collapsed", st.Phase)
	}
	for key, design := range st.SeatSelections {
		if design != "" {
			t.Errorf("seat %q selection should be cleared, got %q", key, design)
		}
	}
	if len(st.SeatSelections) != 3 {
		t.Errorf("selection entries should still cover every seat, got %d", len(st.SeatSelections))
	}
	if st.IncludeMessage || st.Message != "" {
		t.Error("message state should be cleared")
	}
	if st.ShippingMode != ModeAddressOnFile {
		t.Errorf("shipping mode = %q, want addressOnFile", st.ShippingMode)
	}
	if st.CustomAddress != (shipping.Address{}) {
		t.Errorf("custom address should be cleared, got %+v", st.CustomAddress)
	}
	if st.Error != "" || st.Submitting {
		t.Error("error and submitting should be cleared")
	}
	if !removed {
		t.Error("remove callback should fire")
	}
}

type cannedAutocompleter struct {
	suggestions []shipping.AddressSuggestion
}

func (c *cannedAutocompleter) Lookup(ctx context.Context, query string) ([]shipping.AddressSuggestion, error) {
	return c.suggestions, nil
}

// waitForSuggestions receives snapshots from the change hook until one
// carries a suggestion batch. Lookup completions arrive off the caller's
// goroutine, so observation goes through the hook rather than polling.
func waitForSuggestions(t *testing.T, changes <-chan State) []shipping.AddressSuggestion {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case st := <-changes:
			if len(st.Suggestions) > 0 {
				return st.Suggestions
			}
		case <-deadline:
			t.Fatal("no suggestions surfaced before the deadline")
			return nil
		}
	}
}

func TestAutocompleteSuggestionsSurfaceInState(t *testing.T) {
	t.Parallel()

	ac := &cannedAutocompleter{suggestions: []shipping.AddressSuggestion{
		{Label: "1 Main St, New York NY", Street1: "1 Main St", City: "New York", State: "NY", PostalCode: "10001"},
	}}
	changes := make(chan State, 64)
	w := newTestWidget(t, Config{
		Autocomplete:      ac,
		AutocompleteDelay: 5 * time.Millisecond,
		OnChange: func(s State) {
			select {
			case changes <- s:
			default:
			}
		},
	})
	w.Expand()
	w.SelectDesign("B:13", "design-a")
	w.ContinueToShipping()
	w.SetShippingMode(ModeCustomAddress)

	w.QueryAutocomplete(context.Background(), "1 Main")
	got := waitForSuggestions(t, changes)

	if got[0].Street1 != "1 Main St" {
		t.Errorf("suggestions = %+v, want the completed lookup batch", got)
	}

	// Choosing one fills the address and dismisses the list.
	w.ApplySuggestion(got[0])
	st := w.State()
	if st.CustomAddress.City != "New York" || st.CustomAddress.PostalCode != "10001" {
		t.Errorf("applied suggestion not carried into the address: %+v", st.CustomAddress)
	}
	if len(st.Suggestions) != 0 {
		t.Errorf("applying a suggestion should dismiss the list, got %v", st.Suggestions)
	}

	// Clearing the query clears any surfaced batch.
	w.QueryAutocomplete(context.Background(), "1 M")
	waitForSuggestions(t, changes)
	w.QueryAutocomplete(context.Background(), "")
	if s := w.State().Suggestions; len(s) != 0 {
		t.Errorf("blank query should clear suggestions, got %v", s)
	}
}

func TestOpenDetailsCallback(t *testing.T) {
	t.Parallel()

	opened := 0
	w := newTestWidget(t, Config{OnOpenDetails: func() { opened++ }})
	w.OpenDetails()
	w.OpenDetails()

	if opened != 2 {
		t.Errorf("details callback fired %d times, want 2", opened)
	}
}

func TestChangeHookReceivesSnapshots(t *testing.T) {
	t.Parallel()

	var last State
	w := newTestWidget(t, Config{OnChange: func(s State) { last = s }})
	w.Expand()
	w.SelectDesign("B:13", "design-a")

	// Mutating the snapshot must not touch the live state.
	last.SeatSelections["B:13"] = "tampered"
	if got := w.State().SeatSelections["B:13"]; got != "design-a" {
		t.Errorf("observer snapshot aliases live state: selection became %q", got)
	}
}

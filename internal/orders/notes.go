package orders

import (
	"fmt"
	"strings"

	"keepsake/internal/catalog"
	"keepsake/internal/shipping"
)

// DefaultNotesMaxLength is the box-office notes field limit. The cut is a
// hard truncation, not word-aware; the constraint is the external system's,
// not a UX choice.
const DefaultNotesMaxLength = 500

const notesLabel = "Commemorative ticket order"

// FormatAddress renders an address on one line for back-office notes,
// omitting empty parts.
func FormatAddress(a shipping.Address) string {
	var parts []string
	for _, p := range []string{a.Name, a.Street1, a.Street2} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if a.City != "" || a.State != "" || a.PostalCode != "" {
		locality := strings.TrimSpace(fmt.Sprintf("%s %s", a.State, a.PostalCode))
		if a.City != "" && locality != "" {
			parts = append(parts, a.City+", "+locality)
		} else if a.City != "" {
			parts = append(parts, a.City)
		} else {
			parts = append(parts, locality)
		}
	}
	return strings.Join(parts, ", ")
}

// BuildOrderNotes assembles the audit summary stored on the contribution:
// label, per-seat design choices, the optional message, and the destination,
// truncated to maxLength characters.
func BuildOrderNotes(cat catalog.Service, selections []OrderSelection, shippingAddress shipping.Address, specialMessage string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultNotesMaxLength
	}

	seatParts := make([]string, 0, len(selections))
	for _, sel := range selections {
		seatParts = append(seatParts, fmt.Sprintf("Row %s Seat %s: %s", sel.Row, sel.SeatNumber, cat.FormatDesignName(sel.DesignID)))
	}

	parts := []string{notesLabel, strings.Join(seatParts, "; ")}
	if specialMessage != "" {
		parts = append(parts, fmt.Sprintf("Message: %q", specialMessage))
	}
	parts = append(parts, "Ship to: "+FormatAddress(shippingAddress))

	notes := strings.Join(parts, " | ")
	if r := []rune(notes); len(r) > maxLength {
		// Cut on character boundaries so a multi-byte rune is never split.
		notes = string(r[:maxLength])
	}
	return notes
}

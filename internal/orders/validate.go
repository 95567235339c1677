package orders

import (
	"fmt"
	"unicode/utf8"

	"keepsake/internal/shipping"
)

// MessageMaxLength caps the optional keepsake message, mirroring the widget's
// input cap at the authoritative boundary.
const MessageMaxLength = 80

// ValidateOrderRequest checks an inbound order for completeness. It
// accumulates every problem into one list of human-readable messages — an
// empty list means valid — and never fails partway through.
func ValidateOrderRequest(req OrderRequest) []string {
	var errs []string

	if req.SessionKey == "" {
		errs = append(errs, "Session key is required")
	}

	if len(req.Selections) == 0 {
		errs = append(errs, "At least one seat selection is required")
	}
	for i, sel := range req.Selections {
		// 1-based positions read better in back-office logs.
		if sel.DesignID == "" {
			errs = append(errs, fmt.Sprintf("Selection %d: design is required", i+1))
		}
		if sel.Row == "" {
			errs = append(errs, fmt.Sprintf("Selection %d: seat row is required", i+1))
		}
		if sel.SeatNumber == "" {
			errs = append(errs, fmt.Sprintf("Selection %d: seat number is required", i+1))
		}
	}

	if req.ShippingAddress == nil {
		errs = append(errs, "Shipping address is required")
	} else {
		errs = append(errs, shipping.ValidateAddress(*req.ShippingAddress)...)
	}

	// Character count, not byte count: multi-byte messages at the limit are fine.
	if utf8.RuneCountInString(req.SpecialMessage) > MessageMaxLength {
		errs = append(errs, fmt.Sprintf("Special message must be %d characters or fewer", MessageMaxLength))
	}

	return errs
}

// ValidationError carries the accumulated field errors across the service
// boundary so the controller can answer with a structured 400.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order request failed validation (%d errors)", len(e.Details))
}

package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"keepsake/internal/shipping"
)

// genericSubmitError is shown when the server gives no usable message.
const genericSubmitError = "Something went wrong adding your commemorative tickets. Please try again."

// Wire shapes for the order-submission contract. Field names are fixed by the
// endpoint, not by this package.

type orderSelection struct {
	SeatID     string `json:"seatId,omitempty"`
	Section    string `json:"section"`
	Row        string `json:"row"`
	SeatNumber string `json:"seatNumber"`
	DesignID   string `json:"designId"`
}

type orderRequest struct {
	SessionKey      string           `json:"sessionKey"`
	Selections      []orderSelection `json:"selections"`
	SpecialMessage  string           `json:"specialMessage,omitempty"`
	ShippingAddress shipping.Address `json:"shippingAddress"`
	TotalPrice      float64          `json:"totalPrice"`
}

type orderResponse struct {
	Success        bool      `json:"success"`
	ContributionID string    `json:"contributionId,omitempty"`
	Error          string    `json:"error,omitempty"`
	LineItem       *LineItem `json:"lineItem,omitempty"`
}

// resolveShippingAddress picks the on-file address verbatim when that mode is
// active and one exists; otherwise it materializes the custom entry, defaulting
// the country to US and dropping an empty second street line.
func (w *Widget) resolveShippingAddress() shipping.Address {
	if w.state.ShippingMode == ModeAddressOnFile && w.cfg.AddressOnFile != nil {
		return *w.cfg.AddressOnFile
	}
	addr := w.state.CustomAddress
	if addr.Country == "" {
		addr.Country = "US"
	}
	return addr
}

// buildOrderRequest constructs the outbound request from current state. Only
// seats with a chosen design are included; the message rides along only when
// the buyer opted in, re-capped at the submission boundary.
func (w *Widget) buildOrderRequest() orderRequest {
	selected := w.SelectedSeats()
	selections := make([]orderSelection, 0, len(selected))
	for _, s := range selected {
		selections = append(selections, orderSelection{
			SeatID:     s.SeatID,
			Section:    s.Section,
			Row:        s.Row,
			SeatNumber: s.SeatNumber,
			DesignID:   w.state.SeatSelections[s.Key()],
		})
	}

	message := ""
	if w.state.IncludeMessage {
		message = w.state.Message
		if r := []rune(message); len(r) > MessageMaxLength {
			message = string(r[:MessageMaxLength])
		}
	}

	return orderRequest{
		SessionKey:      w.cfg.SessionKey,
		Selections:      selections,
		SpecialMessage:  message,
		ShippingAddress: w.resolveShippingAddress(),
		TotalPrice:      w.TotalPrice(),
	}
}

func (w *Widget) endpoint() string {
	if w.cfg.APIEndpoint != "" {
		return w.cfg.APIEndpoint
	}
	return DefaultEndpoint
}

// Submit performs the one-shot order submission. Only valid from the shipping
// phase; re-entrant calls while a submission is in flight are ignored. The
// call either lands in the success phase (firing the completion callback once)
// or stays in shipping with Error set. No error is ever returned to the
// caller; all failure is represented as state.
func (w *Widget) Submit(ctx context.Context) {
	if w.state.Phase != PhaseShipping || w.state.Submitting {
		return
	}
	w.state.Submitting = true
	w.state.Error = ""
	w.notify()

	req := w.buildOrderRequest()
	resp, err := w.postOrder(ctx, req)
	if err != nil || !resp.Success {
		msg := genericSubmitError
		if err == nil && resp.Error != "" {
			msg = resp.Error
		}
		w.state.Submitting = false
		w.state.Error = msg
		w.notify()
		return
	}

	w.state.Submitting = false
	w.state.Phase = PhaseSuccess
	w.notify()

	if w.cfg.OnAddToOrder != nil {
		w.cfg.OnAddToOrder(w.buildResult(req, resp))
	}
}

// postOrder performs exactly one outbound call: no retries, no timeout beyond
// the client default, no abort path.
func (w *Widget) postOrder(ctx context.Context, order orderRequest) (*orderResponse, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := w.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	// Non-2xx and success:false are treated identically; a malformed body is
	// a transport failure. The decoded message is surfaced either way.
	var decoded orderResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		decoded.Success = false
	}
	return &decoded, nil
}

func (w *Widget) buildResult(req orderRequest, resp *orderResponse) Result {
	selected := w.SelectedSeats()
	selections := make([]ResultSelection, 0, len(selected))
	for _, s := range selected {
		designID := w.state.SeatSelections[s.Key()]
		name := designID
		if w.cfg.Catalog != nil {
			if d, ok := w.cfg.Catalog.FindDesign(designID); ok {
				name = d.Name
			}
		}
		selections = append(selections, ResultSelection{Seat: s, DesignID: designID, DesignName: name})
	}

	total := req.TotalPrice
	if resp.LineItem != nil {
		// The server's recomputed total is authoritative.
		total = resp.LineItem.Total
	}

	return Result{
		Success:        true,
		ContributionID: resp.ContributionID,
		Quantity:       len(selected),
		Total:          total,
		Selections:     selections,
		SpecialMessage: req.SpecialMessage,
		LineItem:       resp.LineItem,
	}
}

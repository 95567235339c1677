package orders

import (
	"context"
	"fmt"

	"keepsake/internal/catalog"
	"keepsake/internal/pricing"
	"keepsake/internal/shipping"
	"keepsake/internal/tessitura"
	"keepsake/pkg/logger"
)

// Service is the authoritative server side of the order contract: it
// validates, reprices, builds notes, and submits to the box office. The
// fulfillment partner is deliberately absent here — fulfillment only runs
// after external payment confirmation, never at submission time.
type Service interface {
	SubmitOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error)
}

// OrderRecorder persists a summary of the accepted order for the
// post-payment fulfillment flow. Declared here, implemented by the cart
// session store.
type OrderRecorder interface {
	SaveOrderRecord(ctx context.Context, sessionKey string, record any) error
}

// OrderRecord is the summary saved per session for fulfillment to pick up
// once payment confirms.
type OrderRecord struct {
	ContributionID  string           `json:"contribution_id"`
	SessionKey      string           `json:"session_key"`
	Quantity        int              `json:"quantity"`
	Total           float64          `json:"total"`
	SpecialMessage  string           `json:"special_message,omitempty"`
	Selections      []OrderSelection `json:"selections"`
	ShippingAddress shipping.Address `json:"shipping_address"`
}

type service struct {
	catalog   catalog.Service
	boxOffice tessitura.Client
	recorder  OrderRecorder
	log       *logger.Logger
}

// NewService creates the order service. The recorder may be nil when no
// fulfillment flow is configured.
func NewService(cat catalog.Service, boxOffice tessitura.Client, recorder OrderRecorder, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		catalog:   cat,
		boxOffice: boxOffice,
		recorder:  recorder,
		log:       log,
	}
}

func (s *service) SubmitOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	if errs := ValidateOrderRequest(req); len(errs) > 0 {
		s.log.LogOrderRejected(ctx, req.SessionKey, errs)
		return nil, &ValidationError{Details: errs}
	}

	// The client's declared total is never trusted; a disagreement is logged
	// for audit and the server-computed total is used regardless.
	quantity := len(req.Selections)
	verification := pricing.VerifyPrice(req.TotalPrice, quantity, s.catalog.UnitPrice())
	if verification.Mismatch {
		s.log.LogPriceMismatch(ctx, req.SessionKey, req.TotalPrice, verification.Total)
	}

	notes := BuildOrderNotes(s.catalog, req.Selections, *req.ShippingAddress, req.SpecialMessage, DefaultNotesMaxLength)
	description := fmt.Sprintf("Commemorative Tickets (%d)", quantity)

	result, err := s.boxOffice.SubmitContribution(ctx, tessitura.Contribution{
		SessionKey:  req.SessionKey,
		Description: description,
		Quantity:    quantity,
		Amount:      verification.Total,
		Notes:       notes,
	})
	if err != nil {
		return nil, fmt.Errorf("box office submission failed: %w", err)
	}

	if s.recorder != nil {
		record := OrderRecord{
			ContributionID:  result.ContributionID,
			SessionKey:      req.SessionKey,
			Quantity:        quantity,
			Total:           verification.Total,
			SpecialMessage:  req.SpecialMessage,
			Selections:      req.Selections,
			ShippingAddress: *req.ShippingAddress,
		}
		if err := s.recorder.SaveOrderRecord(ctx, req.SessionKey, record); err != nil {
			// The contribution already went through; losing the fulfillment
			// summary is recoverable back-office work, not a buyer-facing failure.
			s.log.ErrorWithContext(ctx, "Failed to record order for fulfillment", err, map[string]interface{}{
				"session_key":     req.SessionKey,
				"contribution_id": result.ContributionID,
			})
		}
	}

	s.log.LogOrderSubmitted(ctx, result.ContributionID, req.SessionKey, quantity, verification.Total)

	return &OrderResponse{
		Success:        true,
		ContributionID: result.ContributionID,
		LineItem: &LineItem{
			Description: description,
			Quantity:    quantity,
			Total:       verification.Total,
		},
	}, nil
}

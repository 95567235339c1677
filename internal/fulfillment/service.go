package fulfillment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"keepsake/internal/orders"
	"keepsake/pkg/logger"
)

// OrderLoader reads the accepted-order summary recorded at submission time.
// Implemented by the cart session store.
type OrderLoader interface {
	LoadOrderRecord(ctx context.Context, sessionKey string, dest any) error
}

// Service turns payment confirmations into fulfillment orders. It runs only
// from the payment-confirmation consumer: order submission never reaches the
// fulfillment partner directly.
type Service interface {
	HandlePaymentConfirmation(ctx context.Context, confirmation PaymentConfirmation) error
	BuildOrder(record orders.OrderRecord, paymentRef string) (*Order, error)
}

type service struct {
	variants VariantMap
	loader   OrderLoader
	producer Producer
	log      *logger.Logger
}

// NewService wires the variant mapping, the order-record loader, and the
// partner queue producer.
func NewService(variants VariantMap, loader OrderLoader, producer Producer, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		variants: variants,
		loader:   loader,
		producer: producer,
		log:      log,
	}
}

// BuildOrder maps each selected design to its partner variant. An unmapped
// design is an error: fulfillment must not guess which physical product to
// print.
func (s *service) BuildOrder(record orders.OrderRecord, paymentRef string) (*Order, error) {
	lines := make([]Line, 0, len(record.Selections))
	for _, sel := range record.Selections {
		code, ok := s.variants.Resolve(sel.DesignID)
		if !ok {
			return nil, fmt.Errorf("no fulfillment variant configured for design %q", sel.DesignID)
		}
		lines = append(lines, Line{
			VariantCode: code,
			DesignID:    sel.DesignID,
			Row:         sel.Row,
			SeatNumber:  sel.SeatNumber,
		})
	}

	return &Order{
		OrderRef:       uuid.NewString(),
		SessionKey:     record.SessionKey,
		ContributionID: record.ContributionID,
		PaymentRef:     paymentRef,
		ShipTo:         record.ShippingAddress,
		SpecialMessage: record.SpecialMessage,
		Lines:          lines,
	}, nil
}

func (s *service) HandlePaymentConfirmation(ctx context.Context, confirmation PaymentConfirmation) error {
	if confirmation.SessionKey == "" {
		return fmt.Errorf("payment confirmation missing session key")
	}

	var record orders.OrderRecord
	if err := s.loader.LoadOrderRecord(ctx, confirmation.SessionKey, &record); err != nil {
		// No keepsake order for this session; most checkouts won't have one.
		return fmt.Errorf("no order record for session %s: %w", confirmation.SessionKey, err)
	}

	order, err := s.BuildOrder(record, confirmation.PaymentRef)
	if err != nil {
		return fmt.Errorf("failed to build fulfillment order: %w", err)
	}

	if err := s.producer.PublishFulfillmentOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to publish fulfillment order: %w", err)
	}

	s.log.LogFulfillmentQueued(ctx, order.OrderRef, len(order.Lines))
	return nil
}

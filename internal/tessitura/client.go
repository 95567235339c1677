// Package tessitura is the port to the box-office system. Only the
// request/response contract lives here; the backend itself is external and is
// stubbed in development and tests.
package tessitura

import "context"

// Contribution is one commemorative-ticket order submitted against a cart
// session. Notes carry the human-readable back-office summary and are capped
// by the box-office field length upstream.
type Contribution struct {
	SessionKey  string  `json:"session_key"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount"`
	Notes       string  `json:"notes"`
}

// ContributionResult is the box-office acknowledgement.
type ContributionResult struct {
	ContributionID string `json:"contribution_id"`
}

// Client submits contributions to the box office. Implementations make a
// single attempt; retry policy is deliberately absent.
type Client interface {
	SubmitContribution(ctx context.Context, c Contribution) (*ContributionResult, error)
}

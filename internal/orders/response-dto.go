package orders

// LineItem is the cart line reported back to the widget for a successful
// order. Total is always the server-computed value.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// OrderResponse is the outbound body for both outcomes of the submission
// contract: `{success:true, contributionId, lineItem}` or
// `{success:false, error, details?}`.
type OrderResponse struct {
	Success        bool      `json:"success"`
	ContributionID string    `json:"contributionId,omitempty"`
	LineItem       *LineItem `json:"lineItem,omitempty"`
	Error          string    `json:"error,omitempty"`
	Details        []string  `json:"details,omitempty"`
}

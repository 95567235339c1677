package pricing

// CalculateTotal computes the order total from quantity and unit price.
func CalculateTotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

// Verification is the result of reconciling a client-declared total against
// the server-computed one.
type Verification struct {
	Total    float64 `json:"total"`
	Mismatch bool    `json:"mismatch"`
}

// VerifyPrice recomputes the total authoritatively and flags whether the
// client's declared total disagrees. The returned Total is always the
// server-computed value; a client total is never used for the transaction,
// only compared for audit logging.
func VerifyPrice(clientTotal float64, quantity int, unitPrice float64) Verification {
	total := CalculateTotal(quantity, unitPrice)
	return Verification{
		Total:    total,
		Mismatch: clientTotal != total,
	}
}

package pricing

import "testing"

func TestCalculateTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		quantity  int
		unitPrice float64
		want      float64
	}{
		{"two seats at twenty", 2, 20, 40},
		{"zero seats", 0, 20, 0},
		{"single seat", 1, 12.5, 12.5},
		{"free keepsake", 3, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CalculateTotal(tt.quantity, tt.unitPrice); got != tt.want {
				t.Errorf("CalculateTotal(%d, %v) = %v, want %v", tt.quantity, tt.unitPrice, got, tt.want)
			}
		})
	}
}

func TestVerifyPriceTrustBoundary(t *testing.T) {
	t.Parallel()

	// The client's declared total must never win: the server-computed value is
	// returned whether or not it matches.
	tests := []struct {
		name         string
		clientTotal  float64
		quantity     int
		unitPrice    float64
		wantTotal    float64
		wantMismatch bool
	}{
		{"matching total", 40, 2, 20, 40, false},
		{"client under-declares", 20, 2, 20, 40, true},
		{"client over-declares", 999, 2, 20, 40, true},
		{"client declares zero", 0, 3, 20, 60, true},
		{"zero quantity matches zero", 0, 0, 20, 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := VerifyPrice(tt.clientTotal, tt.quantity, tt.unitPrice)
			if got.Total != tt.wantTotal {
				t.Errorf("VerifyPrice total = %v, want %v", got.Total, tt.wantTotal)
			}
			if got.Mismatch != tt.wantMismatch {
				t.Errorf("VerifyPrice mismatch = %v, want %v", got.Mismatch, tt.wantMismatch)
			}
		})
	}
}

// README: Delivery fee tariff tests.
package pricing

import "testing"

func TestEstimate(t *testing.T) {
	svc := NewService(DefaultRate())

	cases := []struct {
		name   string
		km     float64
		urgent bool
		want   int64
	}{
		{"base only", 0, false, 30},
		{"whole km", 5, false, 70},
		{"rounds up", 4.6, false, 70},
		{"rounds down", 4.4, false, 62},
		{"urgent surcharge", 5, true, 95},
		{"negative clamped", -3, false, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.Estimate(tc.km, tc.urgent)
			if got.Amount != tc.want {
				t.Fatalf("amount: got %d, want %d", got.Amount, tc.want)
			}
			if got.Currency != "INR" {
				t.Fatalf("currency: got %s", got.Currency)
			}
		})
	}
}

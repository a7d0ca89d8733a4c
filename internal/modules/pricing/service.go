// README: Delivery fee estimates shown alongside recommendations.
package pricing

import (
	"math"

	"github.com/rashmitha1620/admin-sub000/internal/types"
)

type Rate struct {
	BaseFare        int64
	PerKm           int64
	UrgentSurcharge int64
	Currency        string
}

// DefaultRate is the marketplace-wide delivery tariff. A single flat
// rate table is enough here; per-zone tariffs would move this behind a
// store.
func DefaultRate() Rate {
	return Rate{BaseFare: 30, PerKm: 8, UrgentSurcharge: 25, Currency: "INR"}
}

type Service struct {
	rate Rate
}

func NewService(rate Rate) *Service {
	return &Service{rate: rate}
}

// Estimate prices a delivery leg: base fare plus a per-km charge on the
// rounded distance, plus the urgent surcharge when applicable.
func (s *Service) Estimate(distanceKm float64, urgent bool) types.Money {
	if distanceKm < 0 {
		distanceKm = 0
	}
	amount := s.rate.BaseFare + int64(math.Round(distanceKm))*s.rate.PerKm
	if urgent {
		amount += s.rate.UrgentSurcharge
	}
	return types.Money{Amount: amount, Currency: s.rate.Currency}
}

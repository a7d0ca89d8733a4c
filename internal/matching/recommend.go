// README: Recommendation packaging: top/alternate matches plus order analysis.
package matching

import (
	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

const (
	// recommendPoolSize is how many candidates a recommendation ranks
	// before splitting into top matches and alternatives.
	recommendPoolSize = 5
	topMatchCount     = 3
)

// OrderAnalysis is display context attached to a recommendation.
// Rider recommendations fill the pickup/delivery fields; vendor
// recommendations fill Categories.
type OrderAnalysis struct {
	OrderID         types.ID
	Categories      []string
	PickupPincode   string
	DeliveryPincode string
	DistanceKm      float64
	ItemCount       int
	OrderValue      types.Money
	Priority        order.Priority
	FeeEstimate     *types.Money
}

// Criteria names the factors a recommendation was ranked by. Display
// metadata only; scoring reads the factor table, not this.
type Criteria struct {
	Primary   []string
	Secondary []string
}

type Recommendation[C any] struct {
	TopMatches    []Result[C]
	Alternatives  []Result[C]
	OrderAnalysis OrderAnalysis
	Criteria      Criteria
}

// Recommend ranks the pool and splits it into up to 3 top matches and
// up to 2 alternatives. Pure function of its inputs; no side effects.
func (e *Engine[C]) Recommend(candidates []C, o *order.Order, analysis OrderAnalysis, criteria Criteria) Recommendation[C] {
	ranked := e.FindMatching(candidates, o, recommendPoolSize)
	top := ranked
	var alternatives []Result[C]
	if len(ranked) > topMatchCount {
		top = ranked[:topMatchCount]
		alternatives = ranked[topMatchCount:]
	}
	return Recommendation[C]{
		TopMatches:    top,
		Alternatives:  alternatives,
		OrderAnalysis: analysis,
		Criteria:      criteria,
	}
}

func riderCriteria() Criteria {
	return Criteria{
		Primary:   []string{"availability", "location"},
		Secondary: []string{"rating", "experience", "capacity", "vehicle_type"},
	}
}

func vendorCriteria() Criteria {
	return Criteria{
		Primary:   []string{"category_match", "location"},
		Secondary: []string{"availability", "rating", "completion_rate", "capacity"},
	}
}

// README: Generic weighted-factor scoring engine shared by the rider and vendor matchers.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rashmitha1620/admin-sub000/internal/geo"
	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
)

// DefaultLimit is how many matches FindMatching returns when the caller
// does not ask for a specific count.
const DefaultLimit = 3

// averageSpeedKmh turns an estimated distance into an ETA.
const averageSpeedKmh = 25.0

// Factor is one weighted scoring dimension. Score returns a fraction in
// [0, 1]; the engine clamps it, scales by Weight and rounds to one
// decimal, so a sub-score can never exceed its weight or go negative.
type Factor[C any] struct {
	Name   string
	Weight float64
	Score  func(c C, o *order.Order, distanceKm float64) float64
}

// Profile describes one candidate kind (rider or vendor) as data: its
// factor table plus the accessors the engine needs. The rider and
// vendor matchers differ only in their profiles.
type Profile[C any] struct {
	// Kind labels metrics for this candidate type ("rider", "vendor").
	Kind    string
	Factors []Factor[C]
	// Rankable filters candidates before scoring in FindMatching.
	Rankable func(C) bool
	// Pincode is the candidate's own location code.
	Pincode func(C) string
	// Origin resolves the order-side pincode distances are measured to.
	Origin func(*order.Order) string
	// SearchFields are matched case-insensitively by Search.
	SearchFields func(C) []string
	Load         func(C) int
	Capacity     func(C) int
}

type FactorScore struct {
	Name   string
	Weight float64
	Points float64
}

// Result is a scored candidate. Breakdown entries sum to Score.
type Result[C any] struct {
	Candidate         C
	Score             float64
	Breakdown         []FactorScore
	DistanceKm        float64
	EstimatedMinutes  int
	AvailableCapacity int
}

type Engine[C any] struct {
	profile Profile[C]
	est     geo.Estimator
}

func NewEngine[C any](profile Profile[C], est geo.Estimator) *Engine[C] {
	return &Engine[C]{profile: profile, est: est}
}

// ScoreCandidate computes the weighted composite score of one candidate
// against an order. It never fails: data oddities score low, they do
// not error.
func (e *Engine[C]) ScoreCandidate(c C, o *order.Order) Result[C] {
	d := e.est.DistanceKm(e.profile.Pincode(c), e.profile.Origin(o))

	breakdown := make([]FactorScore, 0, len(e.profile.Factors))
	total := 0.0
	for _, f := range e.profile.Factors {
		frac := clampFraction(f.Score(c, o, d))
		pts := round1(frac * f.Weight)
		breakdown = append(breakdown, FactorScore{Name: f.Name, Weight: f.Weight, Points: pts})
		total += pts
	}

	return Result[C]{
		Candidate:         c,
		Score:             round1(total),
		Breakdown:         breakdown,
		DistanceKm:        d,
		EstimatedMinutes:  int(math.Round(d / averageSpeedKmh * 60)),
		AvailableCapacity: e.profile.Capacity(c) - e.profile.Load(c),
	}
}

// FindMatching filters to rankable candidates, scores them, and returns
// the top results sorted by score descending. The sort is stable so
// candidates with equal scores keep their input order.
func (e *Engine[C]) FindMatching(candidates []C, o *order.Order, limit int) []Result[C] {
	timer := prometheus.NewTimer(scoreDuration.WithLabelValues(e.profile.Kind))
	defer timer.ObserveDuration()

	if limit <= 0 {
		limit = DefaultLimit
	}
	results := make([]Result[C], 0, len(candidates))
	for _, c := range candidates {
		if !e.profile.Rankable(c) {
			continue
		}
		results = append(results, e.ScoreCandidate(c, o))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Search returns candidates whose search fields contain term
// (case-insensitive substring, any field qualifies), preserving input
// order. A term matching nothing yields an empty slice.
func (e *Engine[C]) Search(term string, candidates []C) []C {
	needle := strings.ToLower(strings.TrimSpace(term))
	var out []C
	for _, c := range candidates {
		for _, field := range e.profile.SearchFields(c) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// SearchRanked is Search with an order to score against: every textual
// match is scored (availability gating happens inside the factor table,
// not as a filter) and results come back sorted by score descending.
func (e *Engine[C]) SearchRanked(term string, candidates []C, o *order.Order) []Result[C] {
	matched := e.Search(term, candidates)
	results := make([]Result[C], 0, len(matched))
	for _, c := range matched {
		results = append(results, e.ScoreCandidate(c, o))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func clampFraction(f float64) float64 {
	if f < 0 || math.IsNaN(f) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// README: Optional AI summary of a rider recommendation set.
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rashmitha1620/admin-sub000/internal/ai"
	"github.com/rashmitha1620/admin-sub000/internal/matching"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

type InsightsHandler struct {
	matching *matching.Service
	provider ai.InsightProvider
}

// NewInsightsHandler accepts a nil provider; the endpoint then reports
// the feature as disabled instead of failing requests.
func NewInsightsHandler(matchingSvc *matching.Service, provider ai.InsightProvider) *InsightsHandler {
	return &InsightsHandler{matching: matchingSvc, provider: provider}
}

func (h *InsightsHandler) OrderInsights(c *gin.Context) {
	if h.provider == nil {
		writeError(c, http.StatusServiceUnavailable, "insights disabled: no AI provider configured")
		return
	}
	orderID := c.Param("id")
	if orderID == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	rec, err := h.matching.GetRiderRecommendations(c.Request.Context(), types.ID(orderID))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	summary, err := h.provider.RecommendationSummary(c.Request.Context(), briefing(rec))
	if err != nil {
		writeError(c, http.StatusBadGateway, "insight generation failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"order_id": orderID, "summary": summary})
}

// briefing flattens a recommendation into the plain-text context the
// model summarizes.
func briefing(rec *matching.Recommendation[rider.Rider]) string {
	var b strings.Builder
	a := rec.OrderAnalysis
	fmt.Fprintf(&b, "Order %s: %d items, value %d %s, priority %s, pickup %s, delivery %s, est. distance %.1f km.\n",
		a.OrderID, a.ItemCount, a.OrderValue.Amount, a.OrderValue.Currency,
		a.Priority, a.PickupPincode, a.DeliveryPincode, a.DistanceKm)
	for i, m := range rec.TopMatches {
		fmt.Fprintf(&b, "%d. %s (%s) score %.1f, %.1f km away, %d slot(s) free:",
			i+1, m.Candidate.Name, m.Candidate.VehicleType, m.Score, m.DistanceKm, m.AvailableCapacity)
		for _, f := range m.Breakdown {
			fmt.Fprintf(&b, " %s %.1f/%.0f", f.Name, f.Points, f.Weight)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// README: Handlers for candidate matching, search, and details lookups.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rashmitha1620/admin-sub000/internal/matching"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

type MatchingHandler struct {
	matching *matching.Service
}

func NewMatchingHandler(svc *matching.Service) *MatchingHandler {
	return &MatchingHandler{matching: svc}
}

func (h *MatchingHandler) FindRiders(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	results, err := h.matching.FindMatchingRiders(c.Request.Context(), types.ID(orderID), limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"matches": toRiderMatches(results)})
}

func (h *MatchingHandler) FindVendors(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	results, err := h.matching.FindMatchingVendors(c.Request.Context(), types.ID(orderID), limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"matches": toVendorMatches(results)})
}

func (h *MatchingHandler) RiderRecommendations(c *gin.Context) {
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
	writeJSON(c, http.StatusOK, gin.H{
		"top_matches":         toRiderMatches(rec.TopMatches),
		"alternative_options": toRiderMatches(rec.Alternatives),
		"order_analysis":      toAnalysis(rec.OrderAnalysis),
		"matching_criteria":   criteriaResp{Primary: rec.Criteria.Primary, Secondary: rec.Criteria.Secondary},
	})
}

func (h *MatchingHandler) VendorRecommendations(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	rec, err := h.matching.GetVendorRecommendations(c.Request.Context(), types.ID(orderID))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"top_matches":         toVendorMatches(rec.TopMatches),
		"alternative_options": toVendorMatches(rec.Alternatives),
		"order_analysis":      toAnalysis(rec.OrderAnalysis),
		"matching_criteria":   criteriaResp{Primary: rec.Criteria.Primary, Secondary: rec.Criteria.Secondary},
	})
}

// ListRiders serves /api/riders: full list, or filtered by ?search=,
// or scored against an order with ?search=&order_id=.
func (h *MatchingHandler) ListRiders(c *gin.Context) {
	term := c.Query("search")
	orderID := c.Query("order_id")

	if term != "" && orderID != "" {
		results, err := h.matching.SearchRidersForOrder(c.Request.Context(), term, types.ID(orderID))
		if err != nil {
			writeDomainError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, gin.H{"matches": toRiderMatches(results)})
		return
	}

	var err error
	var riders = []riderResp{}
	if term != "" {
		found, serr := h.matching.SearchRiders(c.Request.Context(), term)
		err = serr
		for _, r := range found {
			riders = append(riders, toRider(r))
		}
	} else {
		all, lerr := h.matching.ListRiders(c.Request.Context())
		err = lerr
		for _, r := range all {
			riders = append(riders, toRider(r))
		}
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"riders": riders})
}

func (h *MatchingHandler) ListVendors(c *gin.Context) {
	term := c.Query("search")
	orderID := c.Query("order_id")

	if term != "" && orderID != "" {
		results, err := h.matching.SearchVendorsForOrder(c.Request.Context(), term, types.ID(orderID))
		if err != nil {
			writeDomainError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, gin.H{"matches": toVendorMatches(results)})
		return
	}

	var err error
	var vendors = []vendorResp{}
	if term != "" {
		found, serr := h.matching.SearchVendors(c.Request.Context(), term)
		err = serr
		for _, v := range found {
			vendors = append(vendors, toVendor(v))
		}
	} else {
		all, lerr := h.matching.ListVendors(c.Request.Context())
		err = lerr
		for _, v := range all {
			vendors = append(vendors, toVendor(v))
		}
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"vendors": vendors})
}

func (h *MatchingHandler) RiderDetails(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing rider id")
		return
	}
	st, err := h.matching.GetRiderDetails(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"rider":              toRider(st.Rider),
		"available":          st.Available,
		"available_capacity": st.AvailableCapacity,
	})
}

func (h *MatchingHandler) VendorDetails(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing vendor id")
		return
	}
	st, err := h.matching.GetVendorDetails(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"vendor":             toVendor(st.Vendor),
		"available":          st.Available,
		"available_capacity": st.AvailableCapacity,
	})
}

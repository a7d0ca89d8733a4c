// README: Handlers for committing assignments and completing orders.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rashmitha1620/admin-sub000/internal/modules/dispatch"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

type DispatchHandler struct {
	dispatch *dispatch.Service
}

func NewDispatchHandler(svc *dispatch.Service) *DispatchHandler {
	return &DispatchHandler{dispatch: svc}
}

func (h *DispatchHandler) AssignRider(c *gin.Context) {
	orderID, riderID := c.Param("id"), c.Param("riderID")
	if orderID == "" || riderID == "" {
		writeError(c, http.StatusBadRequest, "missing order or rider id")
		return
	}
	a, err := h.dispatch.AssignOrderToRider(c.Request.Context(), types.ID(orderID), types.ID(riderID))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"order_id":          a.OrderID,
		"tracking_id":       a.TrackingID,
		"estimated_arrival": a.EstimatedArrival,
		"rider":             toRider(*a.Rider),
	})
}

func (h *DispatchHandler) AssignVendor(c *gin.Context) {
	orderID, vendorID := c.Param("id"), c.Param("vendorID")
	if orderID == "" || vendorID == "" {
		writeError(c, http.StatusBadRequest, "missing order or vendor id")
		return
	}
	a, err := h.dispatch.AssignOrderToVendor(c.Request.Context(), types.ID(orderID), types.ID(vendorID))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"order_id":          a.OrderID,
		"tracking_id":       a.TrackingID,
		"estimated_arrival": a.EstimatedArrival,
		"vendor":            toVendor(*a.Vendor),
	})
}

func (h *DispatchHandler) Tracking(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	info, err := h.dispatch.Tracking(c.Request.Context(), types.ID(orderID))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"order_id":    info.OrderID,
		"tracking_id": info.TrackingID,
		"assigned_at": info.AssignedAt,
	})
}

func (h *DispatchHandler) Complete(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	if err := h.dispatch.Complete(c.Request.Context(), types.ID(orderID)); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"order_id": orderID, "status": "delivered"})
}

// README: Order handlers for list/get/create/cancel.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

type OrderHandler struct {
	order *order.Service
}

func NewOrderHandler(svc *order.Service) *OrderHandler {
	return &OrderHandler{order: svc}
}

type createOrderReq struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Items        []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Quantity int    `json:"quantity"`
		Price    int64  `json:"price"`
	} `json:"items"`
	Street   string `json:"street"`
	Area     string `json:"area"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Total    int64  `json:"total"`
	Currency string `json:"currency"`
	Priority string `json:"priority"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	items := make([]order.Item, len(req.Items))
	for i, it := range req.Items {
		items[i] = order.Item{
			Name:     it.Name,
			Category: it.Category,
			Quantity: it.Quantity,
			Price:    types.Money{Amount: it.Price, Currency: currency},
		}
	}
	id, err := h.order.Create(c.Request.Context(), order.CreateCommand{
		ID:           types.ID(req.ID),
		CustomerName: req.CustomerName,
		Items:        items,
		DeliveryAddress: types.Address{
			Street: req.Street, Area: req.Area, City: req.City,
			State: req.State, Pincode: req.Pincode,
		},
		Total:    types.Money{Amount: req.Total, Currency: currency},
		Priority: order.Priority(req.Priority),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"order_id": id, "status": order.StatusPending})
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.order.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]orderResp, len(orders))
	for i, o := range orders {
		out[i] = toOrder(o)
	}
	writeJSON(c, http.StatusOK, gin.H{"orders": out})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	o, err := h.order.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toOrder(o))
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	if err := h.order.Cancel(c.Request.Context(), types.ID(id), "admin"); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"order_id": id, "status": order.StatusCancelled})
}

// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
	"github.com/rashmitha1620/admin-sub000/internal/modules/vendor"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, rider.ErrNotFound),
		errors.Is(err, vendor.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, rider.ErrUnavailable),
		errors.Is(err, vendor.ErrUnavailable),
		errors.Is(err, order.ErrInvalidState),
		errors.Is(err, order.ErrConflict):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

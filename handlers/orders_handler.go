package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cemention-gateway/clients"
	"cemention-gateway/models"
)

// OrdersHandler serves the read-only order history.
type OrdersHandler struct {
	backend *clients.Backend
}

func NewOrdersHandler(backend *clients.Backend) *OrdersHandler {
	return &OrdersHandler{backend: backend}
}

// orderView decorates an order with the flag that decides whether the
// driver/vehicle block renders.
type orderView struct {
	models.Order
	HasDriverInfo bool `json:"has_driver_info"`
}

// List handles GET /orders.
func (h *OrdersHandler) List(c *gin.Context) {
	s := currentSession(c)
	orders, err := h.backend.MyOrders(c.Request.Context(), s.Token)
	if err != nil {
		writeBackendError(c, err)
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView{Order: o, HasDriverInfo: o.HasDriverInfo()})
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

// Get handles GET /orders/:orderID.
func (h *OrdersHandler) Get(c *gin.Context) {
	s := currentSession(c)
	order, err := h.backend.Order(c.Request.Context(), s.Token, c.Param("orderID"))
	if err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderView{Order: *order, HasDriverInfo: order.HasDriverInfo()})
}

// ConfirmPayment handles POST /orders/:orderID/payment-confirmation, passing
// the gateway payload through untouched.
func (h *OrdersHandler) ConfirmPayment(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidInput(c, err)
		return
	}

	s := currentSession(c)
	if err := h.backend.ConfirmPayment(c.Request.Context(), s.Token, c.Param("orderID"), payload); err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

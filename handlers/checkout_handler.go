package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"cemention-gateway/clients"
	"cemention-gateway/models"
)

// CheckoutHandler serves the address/payment screen and order placement.
type CheckoutHandler struct {
	backend *clients.Backend
}

func NewCheckoutHandler(backend *clients.Backend) *CheckoutHandler {
	return &CheckoutHandler{backend: backend}
}

type checkoutView struct {
	Addresses         []models.Address `json:"addresses"`
	SelectedAddressID string           `json:"selected_address_id,omitempty"`
	Cart              *models.Cart     `json:"cart"`
	Quotes            []models.Quote   `json:"quotes"`
}

// Checkout handles GET /checkout. Addresses and cart load together; either
// both arrive or the page fails as one.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	s := currentSession(c)

	var (
		addresses []models.Address
		cart      *models.Cart
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		addresses, err = h.backend.Addresses(ctx, s.Token)
		return err
	})
	g.Go(func() error {
		var err error
		cart, err = h.backend.Cart(ctx, s.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		writeBackendError(c, err)
		return
	}

	selected := ""
	if addr, ok := models.DefaultAddress(addresses); ok {
		selected = addr.ID
	}

	methods := models.PaymentMethods()
	quotes := make([]models.Quote, 0, len(methods))
	for _, m := range methods {
		quotes = append(quotes, models.QuoteFor(cart.Total, m))
	}

	c.JSON(http.StatusOK, checkoutView{
		Addresses:         addresses,
		SelectedAddressID: selected,
		Cart:              cart,
		Quotes:            quotes,
	})
}

// CreateAddress handles POST /addresses and answers with the reloaded list.
func (h *CheckoutHandler) CreateAddress(c *gin.Context) {
	var req models.AddressCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidInput(c, err)
		return
	}

	s := currentSession(c)
	ctx := c.Request.Context()
	if _, err := h.backend.CreateAddress(ctx, s.Token, req); err != nil {
		writeBackendError(c, err)
		return
	}
	addresses, err := h.backend.Addresses(ctx, s.Token)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"addresses": addresses})
}

// DeleteAddress handles DELETE /addresses/:addressID.
func (h *CheckoutHandler) DeleteAddress(c *gin.Context) {
	s := currentSession(c)
	ctx := c.Request.Context()
	if err := h.backend.DeleteAddress(ctx, s.Token, c.Param("addressID")); err != nil {
		writeBackendError(c, err)
		return
	}
	addresses, err := h.backend.Addresses(ctx, s.Token)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

type placeOrderRequest struct {
	DeliveryAddressID string               `json:"delivery_address_id"`
	PaymentMethod     models.PaymentMethod `json:"payment_method" binding:"required"`
}

type orderPlacedView struct {
	Order    *models.Order `json:"order"`
	Redirect string        `json:"redirect"`
}

// PlaceOrder handles POST /orders. A missing address is refused locally;
// no request leaves the gateway. A backend failure leaves the form intact
// for the user to retry.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidInput(c, err)
		return
	}
	if req.DeliveryAddressID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "NO_ADDRESS",
			Message: "Please select a delivery address",
		})
		return
	}

	s := currentSession(c)
	order, err := h.backend.CreateOrder(c.Request.Context(), s.Token, models.OrderCreate{
		DeliveryAddressID: req.DeliveryAddressID,
		PaymentMethod:     req.PaymentMethod,
	})
	if err != nil {
		writeBackendError(c, err)
		return
	}

	log.Printf("placed order %s for session %s", order.OrderNumber, s.ID)
	c.JSON(http.StatusCreated, orderPlacedView{Order: order, Redirect: "/orders"})
}

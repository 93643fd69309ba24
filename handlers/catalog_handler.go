package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"cemention-gateway/clients"
	"cemention-gateway/models"
)

// CatalogHandler serves the product listing and the cart.
type CatalogHandler struct {
	backend *clients.Backend
}

func NewCatalogHandler(backend *clients.Backend) *CatalogHandler {
	return &CatalogHandler{backend: backend}
}

type catalogView struct {
	Products         []models.Product `json:"products"`
	CartCount        int              `json:"cart_count"`
	OrderingDisabled bool             `json:"ordering_disabled"`
	MinQuantity      int              `json:"min_quantity"`
	QuantityStep     int              `json:"quantity_step"`
}

type cartBadge struct {
	CartCount int `json:"cart_count"`
}

// ListProducts handles GET /products. Products and the cart badge load in
// parallel; a cart failure only zeroes the badge, it does not fail the page.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	s := currentSession(c)

	var (
		products []models.Product
		cart     *models.Cart
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		products, err = h.backend.Products(ctx, s.Token)
		return err
	})
	g.Go(func() error {
		var err error
		cart, err = h.backend.Cart(ctx, s.Token)
		if err != nil {
			log.Printf("cart load failed, showing empty badge: %v", err)
			cart = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		writeBackendError(c, err)
		return
	}

	count := 0
	if cart != nil {
		count = len(cart.Items)
	}
	c.JSON(http.StatusOK, catalogView{
		Products:         products,
		CartCount:        count,
		OrderingDisabled: s.User != nil && s.User.Status == models.UserPending,
		MinQuantity:      models.MinOrderQuantity,
		QuantityStep:     models.QuantityStep,
	})
}

// AddToCart handles POST /cart/items. The quantity rules are checked here
// first; nothing is sent for a quantity under the minimum or off the step
// grid. On success the cart is re-fetched for the badge count rather than
// merged locally.
func (h *CatalogHandler) AddToCart(c *gin.Context) {
	var req models.CartItemAdd
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidInput(c, err)
		return
	}
	if !models.ValidQuantity(req.Quantity) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_QUANTITY",
			Message: fmt.Sprintf("Quantity must be at least %d bags in steps of %d", models.MinOrderQuantity, models.QuantityStep),
		})
		return
	}

	s := currentSession(c)
	if s.User != nil && s.User.Status == models.UserPending {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "PENDING_APPROVAL",
			Message: "Account pending approval. You can browse but cannot order yet.",
		})
		return
	}

	ctx := c.Request.Context()
	if err := h.backend.AddToCart(ctx, s.Token, req); err != nil {
		writeBackendError(c, err)
		return
	}
	cart, err := h.backend.Cart(ctx, s.Token)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartBadge{CartCount: len(cart.Items)})
}

// GetCart handles GET /cart.
func (h *CatalogHandler) GetCart(c *gin.Context) {
	s := currentSession(c)
	cart, err := h.backend.Cart(c.Request.Context(), s.Token)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveItem handles DELETE /cart/items/:productID and answers with the
// re-fetched cart.
func (h *CatalogHandler) RemoveItem(c *gin.Context) {
	s := currentSession(c)
	ctx := c.Request.Context()

	if err := h.backend.RemoveFromCart(ctx, s.Token, c.Param("productID")); err != nil {
		writeBackendError(c, err)
		return
	}
	cart, err := h.backend.Cart(ctx, s.Token)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// ClearCart handles DELETE /cart.
func (h *CatalogHandler) ClearCart(c *gin.Context) {
	s := currentSession(c)
	ctx := c.Request.Context()

	if err := h.backend.ClearCart(ctx, s.Token); err != nil {
		writeBackendError(c, err)
		return
	}
	cart, err := h.backend.Cart(ctx, s.Token)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"cemention-gateway/clients"
	"cemention-gateway/models"
)

// AdminHandler serves the admin console. Every mutation is followed by an
// unconditional reload of all four dashboard datasets, the same as the
// original console: four round trips per action, zero partial state.
type AdminHandler struct {
	backend *clients.Backend
}

func NewAdminHandler(backend *clients.Backend) *AdminHandler {
	return &AdminHandler{backend: backend}
}

type dashboard struct {
	Stats        *models.SummaryReport `json:"stats"`
	PendingUsers []models.User         `json:"pending_users"`
	Orders       []models.Order        `json:"orders"`
	Products     []models.Product      `json:"products"`
}

// loadDashboard gathers the four datasets in parallel; any single failure
// fails the whole load with one combined error.
func (h *AdminHandler) loadDashboard(ctx context.Context, token string) (*dashboard, error) {
	var d dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Stats, err = h.backend.SummaryReport(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		d.PendingUsers, err = h.backend.PendingUsers(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		d.Orders, err = h.backend.AllOrders(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		d.Products, err = h.backend.AdminProducts(ctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load admin data: %w", err)
	}
	return &d, nil
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	s := currentSession(c)
	d, err := h.loadDashboard(c.Request.Context(), s.Token)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *AdminHandler) reload(c *gin.Context, token string) {
	d, err := h.loadDashboard(c.Request.Context(), token)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// ApproveUser handles PATCH /admin/users/:userID/approve.
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	s := currentSession(c)
	userID := c.Param("userID")
	if err := h.backend.ApproveUser(c.Request.Context(), s.Token, userID); err != nil {
		writeBackendError(c, err)
		return
	}
	log.Printf("approved user %s", userID)
	h.reload(c, s.Token)
}

// RejectUser handles PATCH /admin/users/:userID/reject.
func (h *AdminHandler) RejectUser(c *gin.Context) {
	s := currentSession(c)
	userID := c.Param("userID")
	if err := h.backend.RejectUser(c.Request.Context(), s.Token, userID); err != nil {
		writeBackendError(c, err)
		return
	}
	log.Printf("rejected user %s", userID)
	h.reload(c, s.Token)
}

// UpdateOrder handles PATCH /admin/orders/:orderID: order status, payment
// status, or the driver/vehicle assignment, whichever fields are present.
func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	var req models.OrderUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidInput(c, err)
		return
	}

	s := currentSession(c)
	if err := h.backend.UpdateOrder(c.Request.Context(), s.Token, c.Param("orderID"), req); err != nil {
		writeBackendError(c, err)
		return
	}
	h.reload(c, s.Token)
}

// CreateProduct handles POST /admin/products.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req models.ProductCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidInput(c, err)
		return
	}

	s := currentSession(c)
	if _, err := h.backend.CreateProduct(c.Request.Context(), s.Token, req); err != nil {
		writeBackendError(c, err)
		return
	}
	log.Printf("created product %q (%s)", req.Name, req.Brand)
	h.reload(c, s.Token)
}

// UpdateProduct handles PATCH /admin/products/:productID. Toggling a
// product's active flag comes through here as an update with only is_active.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req models.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidInput(c, err)
		return
	}

	s := currentSession(c)
	if err := h.backend.UpdateProduct(c.Request.Context(), s.Token, c.Param("productID"), req); err != nil {
		writeBackendError(c, err)
		return
	}
	h.reload(c, s.Token)
}

// DeleteProduct handles DELETE /admin/products/:productID.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	s := currentSession(c)
	if err := h.backend.DeleteProduct(c.Request.Context(), s.Token, c.Param("productID")); err != nil {
		writeBackendError(c, err)
		return
	}
	h.reload(c, s.Token)
}

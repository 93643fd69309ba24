package clients

import (
	"context"
	"net/http"
	"net/url"

	"cemention-gateway/models"
)

func (b *Backend) PendingUsers(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	if err := b.do(ctx, http.MethodGet, "/admin/users/pending", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllUsers lists users, optionally filtered by role.
func (b *Backend) AllUsers(ctx context.Context, token string, role models.Role) ([]models.User, error) {
	path := "/admin/users"
	if role != "" {
		path += "?role=" + url.QueryEscape(string(role))
	}
	var out []models.User
	if err := b.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) ApproveUser(ctx context.Context, token, userID string) error {
	return b.do(ctx, http.MethodPatch, "/admin/users/"+userID+"/approve", token, nil, nil)
}

func (b *Backend) RejectUser(ctx context.Context, token, userID string) error {
	return b.do(ctx, http.MethodPatch, "/admin/users/"+userID+"/reject", token, nil, nil)
}

func (b *Backend) CreateProduct(ctx context.Context, token string, req models.ProductCreate) (*models.Product, error) {
	var out models.Product
	if err := b.do(ctx, http.MethodPost, "/admin/products", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) AdminProducts(ctx context.Context, token string) ([]models.Product, error) {
	var out []models.Product
	if err := b.do(ctx, http.MethodGet, "/admin/products", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) UpdateProduct(ctx context.Context, token, productID string, req models.ProductUpdate) error {
	return b.do(ctx, http.MethodPatch, "/admin/products/"+productID, token, req, nil)
}

func (b *Backend) DeleteProduct(ctx context.Context, token, productID string) error {
	return b.do(ctx, http.MethodDelete, "/admin/products/"+productID, token, nil, nil)
}

func (b *Backend) AllOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	if err := b.do(ctx, http.MethodGet, "/admin/orders", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) UpdateOrder(ctx context.Context, token, orderID string, req models.OrderUpdate) error {
	return b.do(ctx, http.MethodPatch, "/admin/orders/"+orderID, token, req, nil)
}

func (b *Backend) SummaryReport(ctx context.Context, token string) (*models.SummaryReport, error) {
	var out models.SummaryReport
	if err := b.do(ctx, http.MethodGet, "/admin/reports/summary", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

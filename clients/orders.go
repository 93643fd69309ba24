package clients

import (
	"context"
	"net/http"

	"cemention-gateway/models"
)

func (b *Backend) CreateOrder(ctx context.Context, token string, req models.OrderCreate) (*models.Order, error) {
	var out models.Order
	if err := b.do(ctx, http.MethodPost, "/orders/create", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	if err := b.do(ctx, http.MethodGet, "/orders/my-orders", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) Order(ctx context.Context, token, orderID string) (*models.Order, error) {
	var out models.Order
	if err := b.do(ctx, http.MethodGet, "/orders/"+orderID, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmPayment forwards the payment gateway's confirmation payload as-is.
func (b *Backend) ConfirmPayment(ctx context.Context, token, orderID string, payload map[string]any) error {
	return b.do(ctx, http.MethodPost, "/orders/payment-confirmation/"+orderID, token, payload, nil)
}

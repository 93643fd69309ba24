package clients

import (
	"context"
	"net/http"

	"cemention-gateway/models"
)

func (b *Backend) Products(ctx context.Context, token string) ([]models.Product, error) {
	var out []models.Product
	if err := b.do(ctx, http.MethodGet, "/products", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) Product(ctx context.Context, token, productID string) (*models.Product, error) {
	var out models.Product
	if err := b.do(ctx, http.MethodGet, "/products/"+productID, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) Cart(ctx context.Context, token string) (*models.Cart, error) {
	var out models.Cart
	if err := b.do(ctx, http.MethodGet, "/cart", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) AddToCart(ctx context.Context, token string, item models.CartItemAdd) error {
	return b.do(ctx, http.MethodPost, "/cart/add", token, item, nil)
}

func (b *Backend) RemoveFromCart(ctx context.Context, token, productID string) error {
	return b.do(ctx, http.MethodDelete, "/cart/remove/"+productID, token, nil, nil)
}

func (b *Backend) ClearCart(ctx context.Context, token string) error {
	return b.do(ctx, http.MethodDelete, "/cart/clear", token, nil, nil)
}

func (b *Backend) Addresses(ctx context.Context, token string) ([]models.Address, error) {
	var out []models.Address
	if err := b.do(ctx, http.MethodGet, "/addresses", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) CreateAddress(ctx context.Context, token string, addr models.AddressCreate) (*models.Address, error) {
	var out models.Address
	if err := b.do(ctx, http.MethodPost, "/addresses", token, addr, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) DeleteAddress(ctx context.Context, token, addressID string) error {
	return b.do(ctx, http.MethodDelete, "/addresses/"+addressID, token, nil, nil)
}

package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cemention-gateway/models"
	"cemention-gateway/session"
)

func approvedCustomer(env *testEnv) *session.Session {
	s := env.store.Create()
	s.Authenticate(&models.User{ID: "u1", Phone: "+919876543210", Role: models.RoleCustomer, Status: models.UserApproved}, "tok-cust")
	return s
}

func TestListProducts_LoadsInParallel(t *testing.T) {
	env := newTestEnv(t)
	env.backend.handleJSON("GET /api/products", []models.Product{
		{ID: "p1", Name: "OPC 53 Grade", Brand: "UltraTech", UserPrice: 303, MinQuantity: 100, IsActive: true},
		{ID: "p2", Name: "PPC", Brand: "ACC", UserPrice: 295, MinQuantity: 100, IsActive: true},
	})
	env.backend.handleJSON("GET /api/cart", models.Cart{
		Items: []models.CartItem{{ProductID: "p1", Quantity: 150, PricePerBag: 303}},
		Total: 45450,
	})
	s := approvedCustomer(env)

	w := env.do(t, http.MethodGet, "/products", nil, s)
	require.Equal(t, http.StatusOK, w.Code)

	view := decode[catalogView](t, w)
	assert.Len(t, view.Products, 2)
	assert.Equal(t, 1, view.CartCount)
	assert.False(t, view.OrderingDisabled)
	assert.Equal(t, models.MinOrderQuantity, view.MinQuantity)
	assert.Equal(t, models.QuantityStep, view.QuantityStep)
}

func TestListProducts_CartFailureOnlyZeroesBadge(t *testing.T) {
	env := newTestEnv(t)
	env.backend.handleJSON("GET /api/products", []models.Product{{ID: "p1", IsActive: true}})
	env.backend.handleStatus("GET /api/cart", http.StatusInternalServerError, "cart store down")
	s := approvedCustomer(env)

	w := env.do(t, http.MethodGet, "/products", nil, s)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[catalogView](t, w).CartCount)
}

func TestListProducts_ProductFailureFailsThePage(t *testing.T) {
	env := newTestEnv(t)
	env.backend.handleStatus("GET /api/products", http.StatusForbidden, "Account pending approval")
	env.backend.handleJSON("GET /api/cart", models.Cart{})
	s := approvedCustomer(env)

	w := env.do(t, http.MethodGet, "/products", nil, s)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddToCart_QuantityRules(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{"below the minimum", 90},
		{"off the step grid", 120},
		{"negative", -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			s := approvedCustomer(env)

			w := env.do(t, http.MethodPost, "/cart/items", models.CartItemAdd{ProductID: "p1", Quantity: tt.quantity}, s)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, 0, env.backend.count("POST /api/cart/add"), "refused quantities never reach the backend")
		})
	}
}

func TestAddToCart_ReloadsAfterMutation(t *testing.T) {
	env := newTestEnv(t)
	env.backend.handleJSON("POST /api/cart/add", map[string]string{"message": "Item added to cart"})
	env.backend.handleJSON("GET /api/cart", models.Cart{
		Items: []models.CartItem{{ProductID: "p1", Quantity: 150, PricePerBag: 303}},
		Total: 45450,
	})
	s := approvedCustomer(env)

	w := env.do(t, http.MethodPost, "/cart/items", models.CartItemAdd{ProductID: "p1", Quantity: 150}, s)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, decode[cartBadge](t, w).CartCount)
	assert.Equal(t, 1, env.backend.count("POST /api/cart/add"))
	assert.Equal(t, 1, env.backend.count("GET /api/cart"), "the cart is re-fetched, not merged locally")
}

func TestAddToCart_PendingAccountRefused(t *testing.T) {
	env := newTestEnv(t)
	s := env.store.Create()
	s.Authenticate(&models.User{ID: "u2", Role: models.RoleRetailer, Status: models.UserPending}, "tok-pending")

	w := env.do(t, http.MethodPost, "/cart/items", models.CartItemAdd{ProductID: "p1", Quantity: 150}, s)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, env.backend.count("POST /api/cart/add"))
}

func TestRemoveItem_AnswersWithFreshCart(t *testing.T) {
	env := newTestEnv(t)
	env.backend.handleJSON("DELETE /api/cart/remove/p1", map[string]string{"message": "Item removed"})
	env.backend.handleJSON("GET /api/cart", models.Cart{})
	s := approvedCustomer(env)

	w := env.do(t, http.MethodDelete, "/cart/items/p1", nil, s)
	require.Equal(t, http.StatusOK, w.Code)

	cart := decode[models.Cart](t, w)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 1, env.backend.count("GET /api/cart"))
}

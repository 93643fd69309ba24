package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"cemention-gateway/clients"
	"cemention-gateway/session"
)

// stubBackend is a fake core API. Tests register handlers per
// "METHOD /api/path"; unstubbed routes answer 404.
type stubBackend struct {
	*httptest.Server
	mu     sync.Mutex
	calls  []string
	routes map[string]http.HandlerFunc
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()
	sb := &stubBackend{routes: map[string]http.HandlerFunc{}}
	sb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		sb.mu.Lock()
		sb.calls = append(sb.calls, key)
		h, ok := sb.routes[key]
		sb.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, `{"detail": "no stub for %s"}`, key)
			return
		}
		h(w, r)
	}))
	t.Cleanup(sb.Close)
	return sb
}

func (sb *stubBackend) handle(key string, h http.HandlerFunc) {
	sb.mu.Lock()
	sb.routes[key] = h
	sb.mu.Unlock()
}

// handleJSON stubs a route with a fixed 200 JSON body.
func (sb *stubBackend) handleJSON(key string, v any) {
	sb.handle(key, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(v)
	})
}

// handleStatus stubs a route with a fixed error status and detail message.
func (sb *stubBackend) handleStatus(key string, status int, detail string) {
	sb.handle(key, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"detail": %q}`, detail)
	})
}

func (sb *stubBackend) count(key string) int {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	n := 0
	for _, c := range sb.calls {
		if c == key {
			n++
		}
	}
	return n
}

// testEnv wires the full route table against a stub backend, the same shape
// main.go builds.
type testEnv struct {
	router  *gin.Engine
	store   *session.Store
	backend *stubBackend
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sb := newStubBackend(t)
	b := clients.NewBackend(sb.URL, 2*time.Second)
	store := session.NewStore(time.Hour)

	authHandler := NewAuthHandler(b, store)
	catalogHandler := NewCatalogHandler(b)
	checkoutHandler := NewCheckoutHandler(b)
	ordersHandler := NewOrdersHandler(b)
	adminHandler := NewAdminHandler(b)

	router := gin.New()
	router.Use(Sessions(store))

	router.GET("/auth/state", authHandler.State)
	router.POST("/auth/phone", authHandler.SubmitPhone)
	router.POST("/auth/otp", authHandler.SubmitOTP)
	router.POST("/auth/back", authHandler.Back)
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/logout", authHandler.Logout)
	router.GET("/me", authHandler.Me)

	router.GET("/products", catalogHandler.ListProducts)
	router.GET("/cart", catalogHandler.GetCart)
	router.POST("/cart/items", catalogHandler.AddToCart)
	router.DELETE("/cart/items/:productID", catalogHandler.RemoveItem)
	router.DELETE("/cart", catalogHandler.ClearCart)

	router.GET("/checkout", checkoutHandler.Checkout)
	router.POST("/addresses", checkoutHandler.CreateAddress)
	router.DELETE("/addresses/:addressID", checkoutHandler.DeleteAddress)
	router.POST("/orders", checkoutHandler.PlaceOrder)
	router.GET("/orders", ordersHandler.List)
	router.GET("/orders/:orderID", ordersHandler.Get)
	router.POST("/orders/:orderID/payment-confirmation", ordersHandler.ConfirmPayment)

	admin := router.Group("/admin", RequireAdmin())
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.PATCH("/users/:userID/approve", adminHandler.ApproveUser)
	admin.PATCH("/users/:userID/reject", adminHandler.RejectUser)
	admin.PATCH("/orders/:orderID", adminHandler.UpdateOrder)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PATCH("/products/:productID", adminHandler.UpdateProduct)
	admin.DELETE("/products/:productID", adminHandler.DeleteProduct)

	return &testEnv{router: router, store: store, backend: sb}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, s *session.Session) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s != nil {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: s.ID})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cemention-gateway/models"
)

func testBackend(t *testing.T, handler http.HandlerFunc) *Backend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBackend(srv.URL, 2*time.Second)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotPath string
	b := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]models.Product{})
	})

	_, err := b.Products(context.Background(), "tok-123")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/api/products", gotPath)
}

func TestMissingTokenOmitsHeader(t *testing.T) {
	var hasAuth bool
	b := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(models.Cart{})
	})

	_, err := b.Cart(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, hasAuth, "no token means no Authorization header at all")
}

func TestAPIErrorFromDetailPayload(t *testing.T) {
	b := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"detail": "Account pending approval"}`)
	})

	_, err := b.Products(context.Background(), "tok")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Account pending approval", apiErr.Message)
}

func TestAPIErrorFromRawBody(t *testing.T) {
	b := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "upstream exploded")
	})

	_, err := b.Cart(context.Background(), "tok")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"404 status", &APIError{StatusCode: http.StatusNotFound, Message: "nope"}, true},
		{"not-found message on another status", &APIError{StatusCode: http.StatusBadRequest, Message: "User not found. Please register first."}, true},
		{"wrapped api error", fmt.Errorf("verify: %w", &APIError{StatusCode: http.StatusNotFound}), true},
		{"other api error", &APIError{StatusCode: http.StatusForbidden, Message: "denied"}, false},
		{"plain error", errors.New("not found"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

func TestSendOTPDemoMode(t *testing.T) {
	b := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/send-otp", r.URL.Path)
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "+919876543210", in["phone"])
		json.NewEncoder(w).Encode(models.OTPResponse{
			Success: true, Message: "OTP sent (demo)", SID: "demo_sid", OTP: "123456",
		})
	})

	resp, err := b.SendOTP(context.Background(), "+919876543210")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "123456", resp.OTP)
}

func TestRegisterSendsNullOptionals(t *testing.T) {
	var raw map[string]json.RawMessage
	b := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		json.NewEncoder(w).Encode(models.LoginResponse{Success: true, Token: "t"})
	})

	_, err := b.Register(context.Background(), models.RegisterRequest{
		Phone: "+919876543210",
		Role:  models.RoleCustomer,
	})
	require.NoError(t, err)

	assert.Equal(t, "null", string(raw["name"]))
	assert.Equal(t, "null", string(raw["gst_number"]))
}

func TestContextCancellation(t *testing.T) {
	b := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := b.Products(ctx, "tok")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport errors are not APIErrors")
}

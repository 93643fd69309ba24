package clients

import (
	"context"
	"net/http"

	"cemention-gateway/models"
)

func (b *Backend) SendOTP(ctx context.Context, phone string) (*models.OTPResponse, error) {
	var out models.OTPResponse
	in := map[string]string{"phone": phone}
	if err := b.do(ctx, http.MethodPost, "/auth/send-otp", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) VerifyOTP(ctx context.Context, phone, otp string) (*models.OTPResponse, error) {
	var out models.OTPResponse
	in := map[string]string{"phone": phone, "otp": otp}
	if err := b.do(ctx, http.MethodPost, "/auth/verify-otp", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) Login(ctx context.Context, phone string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	in := map[string]string{"phone": phone}
	if err := b.do(ctx, http.MethodPost, "/auth/login", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := b.do(ctx, http.MethodPost, "/auth/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the profile behind the token, used to refresh approval status.
func (b *Backend) Me(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	if err := b.do(ctx, http.MethodGet, "/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

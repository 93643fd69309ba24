// Package authflow drives the phone / OTP / registration sequence a browser
// walks through before it holds a backend token. The flow is linear: phone ->
// otp -> register. It only moves backward through Back, and it never retries
// a failed call on its own.
package authflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cemention-gateway/clients"
	"cemention-gateway/models"
)

// Step is the screen the flow is on.
type Step string

const (
	StepPhone    Step = "phone"
	StepOTP      Step = "otp"
	StepRegister Step = "register"
	StepDone     Step = "done"
)

// AuthAPI is the slice of the core API the flow drives.
type AuthAPI interface {
	SendOTP(ctx context.Context, phone string) (*models.OTPResponse, error)
	VerifyOTP(ctx context.Context, phone, otp string) (*models.OTPResponse, error)
	Login(ctx context.Context, phone string) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error)
}

var (
	ErrWrongStep = errors.New("action not valid for the current step")

	// ErrMissingBusinessFields rejects a dealer/retailer registration that
	// omits any of the four mandatory business fields. Raised locally; no
	// request is sent.
	ErrMissingBusinessFields = errors.New("business name, shop name, GST number and GST registered name are mandatory for dealers and retailers")
)

// Flow holds one browser's progress through the sequence.
type Flow struct {
	api AuthAPI

	Step    Step
	Phone   string // normalized once the OTP send succeeds
	OTPSid  string // opaque session identifier from the OTP provider
	DemoOTP string // plaintext code the backend returns in demo mode
}

func New(api AuthAPI) *Flow {
	return &Flow{api: api, Step: StepPhone}
}

// Result is what a submission produced. User and Token are set only when the
// flow reached its terminal state and the caller should persist the session.
type Result struct {
	Step    Step
	Message string
	DemoOTP string

	User            *models.User
	Token           string
	Redirect        string
	PendingApproval bool
}

// SubmitPhone normalizes the number and asks the backend to send an OTP.
// Any failure leaves the flow on the phone screen.
func (f *Flow) SubmitPhone(ctx context.Context, phone string) (*Result, error) {
	if f.Step != StepPhone {
		return nil, ErrWrongStep
	}

	normalized := NormalizePhone(phone)
	resp, err := f.api.SendOTP(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return &Result{Step: StepPhone, Message: resp.Message}, nil
	}

	f.Phone = normalized
	f.OTPSid = resp.SID
	f.DemoOTP = resp.OTP
	f.Step = StepOTP
	return &Result{Step: StepOTP, Message: resp.Message, DemoOTP: resp.OTP}, nil
}

// SubmitOTP verifies the code, then attempts a login with the phone number
// alone. A login that reports no account moves the flow to registration, as
// does a verify error that reads as "not found": the backend signals an
// unregistered phone through either path, and the flow treats them the same.
func (f *Flow) SubmitOTP(ctx context.Context, code string) (*Result, error) {
	if f.Step != StepOTP {
		return nil, ErrWrongStep
	}

	resp, err := f.api.VerifyOTP(ctx, f.Phone, code)
	if err != nil {
		if clients.IsNotFound(err) {
			return f.toRegister(), nil
		}
		return nil, err
	}
	if !resp.Success {
		return &Result{Step: StepOTP, Message: resp.Message}, nil
	}

	login, err := f.api.Login(ctx, f.Phone)
	if err != nil {
		if clients.IsNotFound(err) {
			return f.toRegister(), nil
		}
		return nil, err
	}
	if !login.Success {
		return f.toRegister(), nil
	}
	return f.finish(login, "Login successful"), nil
}

// Back returns to the phone screen unconditionally, discarding OTP state.
// The entered phone number is kept for re-submission.
func (f *Flow) Back() {
	f.Step = StepPhone
	f.OTPSid = ""
	f.DemoOTP = ""
}

// Registration is the register screen's form. Only Role is always required.
type Registration struct {
	Role              models.Role
	Name              string
	Email             string
	BusinessName      string
	BrandShopName     string
	GSTNumber         string
	GSTRegisteredName string
}

// Validate applies the role rules locally, before anything is sent.
func (r *Registration) Validate() error {
	switch r.Role {
	case models.RoleCustomer, models.RoleRetailer, models.RoleDealer:
	default:
		return fmt.Errorf("invalid role %q: %w", r.Role, ErrInvalidRole)
	}
	if r.Role == models.RoleDealer || r.Role == models.RoleRetailer {
		if r.BusinessName == "" || r.BrandShopName == "" || r.GSTNumber == "" || r.GSTRegisteredName == "" {
			return ErrMissingBusinessFields
		}
	}
	return nil
}

// ErrInvalidRole rejects roles outside CUSTOMER/RETAILER/DEALER. ADMIN
// accounts are never self-registered.
var ErrInvalidRole = errors.New("invalid role")

// SubmitRegistration validates the form, then registers the verified phone.
// Empty optional fields go out as JSON null. GST numbers are uppercased.
func (f *Flow) SubmitRegistration(ctx context.Context, reg Registration) (*Result, error) {
	if f.Step != StepRegister {
		return nil, ErrWrongStep
	}

	reg.GSTNumber = strings.ToUpper(strings.TrimSpace(reg.GSTNumber))
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	req := models.RegisterRequest{
		Phone:             f.Phone,
		Role:              reg.Role,
		Name:              optional(reg.Name),
		Email:             optional(reg.Email),
		BusinessName:      optional(reg.BusinessName),
		BrandShopName:     optional(reg.BrandShopName),
		GSTNumber:         optional(reg.GSTNumber),
		GSTRegisteredName: optional(reg.GSTRegisteredName),
	}

	resp, err := f.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return &Result{Step: StepRegister, Message: resp.Message}, nil
	}
	return f.finish(resp, "Registration successful"), nil
}

func (f *Flow) toRegister() *Result {
	f.Step = StepRegister
	return &Result{Step: StepRegister, Message: "Please complete registration"}
}

func (f *Flow) finish(login *models.LoginResponse, message string) *Result {
	f.Step = StepDone

	redirect := "/products"
	pending := false
	if login.User != nil {
		if login.User.Role == models.RoleAdmin {
			redirect = "/admin"
		}
		pending = login.User.Status == models.UserPending
	}
	return &Result{
		Step:            StepDone,
		Message:         message,
		User:            login.User,
		Token:           login.Token,
		Redirect:        redirect,
		PendingApproval: pending,
	}
}

// optional maps an empty form field to JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

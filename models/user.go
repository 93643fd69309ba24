package models

type Role string

const (
	RoleDealer   Role = "DEALER"
	RoleRetailer Role = "RETAILER"
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

type UserStatus string

const (
	UserPending  UserStatus = "PENDING"
	UserApproved UserStatus = "APPROVED"
	UserRejected UserStatus = "REJECTED"
)

// User is the account record as the core API returns it. Optional fields are
// pointers so that absent and empty are distinguishable on the wire.
type User struct {
	ID                string     `json:"id"`
	Phone             string     `json:"phone"`
	Role              Role       `json:"role"`
	Name              *string    `json:"name,omitempty"`
	Email             *string    `json:"email,omitempty"`
	BusinessName      *string    `json:"business_name,omitempty"`
	BrandShopName     *string    `json:"brand_shop_name,omitempty"`
	GSTNumber         *string    `json:"gst_number,omitempty"`
	GSTRegisteredName *string    `json:"gst_registered_name,omitempty"`
	Status            UserStatus `json:"status"`
	IsActive          bool       `json:"is_active"`
}

// OTPResponse covers both send-otp and verify-otp. The otp field is only
// present when the backend runs in demo mode and hands the code back in
// plaintext instead of texting it.
type OTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SID     string `json:"sid,omitempty"`
	OTP     string `json:"otp,omitempty"`
}

// LoginResponse is shared by the login and register endpoints. A success=false
// login with a 200 status means the phone has no account yet.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

// RegisterRequest is the registration payload. Empty optional form fields are
// sent as JSON null, never as empty strings.
type RegisterRequest struct {
	Phone             string  `json:"phone"`
	Role              Role    `json:"role"`
	Name              *string `json:"name"`
	Email             *string `json:"email"`
	BusinessName      *string `json:"business_name"`
	BrandShopName     *string `json:"brand_shop_name"`
	GSTNumber         *string `json:"gst_number"`
	GSTRegisteredName *string `json:"gst_registered_name"`
}

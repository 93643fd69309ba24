package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cemention-gateway/authflow"
	"cemention-gateway/clients"
	"cemention-gateway/models"
	"cemention-gateway/session"
)

// AuthHandler exposes the phone/OTP/registration flow to the browser.
type AuthHandler struct {
	backend *clients.Backend
	store   *session.Store
}

func NewAuthHandler(backend *clients.Backend, store *session.Store) *AuthHandler {
	return &AuthHandler{backend: backend, store: store}
}

// flowState is what every auth endpoint answers with.
type flowState struct {
	Step            authflow.Step `json:"step"`
	Message         string        `json:"message,omitempty"`
	DemoOTP         string        `json:"demo_otp,omitempty"`
	Redirect        string        `json:"redirect,omitempty"`
	PendingApproval bool          `json:"pending_approval,omitempty"`
	User            *models.User  `json:"user,omitempty"`
}

func flowView(res *authflow.Result) flowState {
	return flowState{
		Step:            res.Step,
		Message:         res.Message,
		DemoOTP:         res.DemoOTP,
		Redirect:        res.Redirect,
		PendingApproval: res.PendingApproval,
		User:            res.User,
	}
}

// flowFor returns the session's in-progress flow, starting one if needed.
func (h *AuthHandler) flowFor(s *session.Session) *authflow.Flow {
	if s.Flow == nil {
		s.Flow = authflow.New(h.backend)
	}
	return s.Flow
}

// State handles GET /auth/state: where the browser currently is.
func (h *AuthHandler) State(c *gin.Context) {
	s := currentSession(c)
	if s.LoggedIn() {
		redirect := "/products"
		if s.User.Role == models.RoleAdmin {
			redirect = "/admin"
		}
		c.JSON(http.StatusOK, flowState{Step: authflow.StepDone, Redirect: redirect, User: s.User})
		return
	}
	f := h.flowFor(s)
	c.JSON(http.StatusOK, flowState{Step: f.Step, DemoOTP: f.DemoOTP})
}

type phoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// SubmitPhone handles POST /auth/phone.
func (h *AuthHandler) SubmitPhone(c *gin.Context) {
	var req phoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidInput(c, err)
		return
	}

	s := currentSession(c)
	res, err := h.flowFor(s).SubmitPhone(c.Request.Context(), req.Phone)
	if err != nil {
		h.flowError(c, err)
		return
	}
	c.JSON(http.StatusOK, flowView(res))
}

type otpRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// SubmitOTP handles POST /auth/otp.
func (h *AuthHandler) SubmitOTP(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidInput(c, err)
		return
	}

	s := currentSession(c)
	res, err := h.flowFor(s).SubmitOTP(c.Request.Context(), req.OTP)
	if err != nil {
		h.flowError(c, err)
		return
	}
	h.settle(c, s, res)
}

// Back handles POST /auth/back: return to the phone screen, drop OTP state.
func (h *AuthHandler) Back(c *gin.Context) {
	s := currentSession(c)
	f := h.flowFor(s)
	f.Back()
	c.JSON(http.StatusOK, flowState{Step: f.Step})
}

type registerRequest struct {
	Role              models.Role `json:"role" binding:"required"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	BusinessName      string      `json:"business_name"`
	BrandShopName     string      `json:"brand_shop_name"`
	GSTNumber         string      `json:"gst_number"`
	GSTRegisteredName string      `json:"gst_registered_name"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidInput(c, err)
		return
	}

	s := currentSession(c)
	res, err := h.flowFor(s).SubmitRegistration(c.Request.Context(), authflow.Registration{
		Role:              req.Role,
		Name:              req.Name,
		Email:             req.Email,
		BusinessName:      req.BusinessName,
		BrandShopName:     req.BrandShopName,
		GSTNumber:         req.GSTNumber,
		GSTRegisteredName: req.GSTRegisteredName,
	})
	if err != nil {
		h.flowError(c, err)
		return
	}
	h.settle(c, s, res)
}

// Logout handles POST /auth/logout: explicit session teardown.
func (h *AuthHandler) Logout(c *gin.Context) {
	s := currentSession(c)
	h.store.Delete(s.ID)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, flowState{Step: authflow.StepPhone, Redirect: "/"})
}

// Me handles GET /me: the profile behind the session's token.
func (h *AuthHandler) Me(c *gin.Context) {
	s := currentSession(c)
	user, err := h.backend.Me(c.Request.Context(), s.Token)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	s.User = user
	c.JSON(http.StatusOK, user)
}

// settle persists a terminal flow result into the session before answering.
func (h *AuthHandler) settle(c *gin.Context, s *session.Session, res *authflow.Result) {
	if res.User != nil && res.Token != "" {
		s.Authenticate(res.User, res.Token)
		log.Printf("session %s authenticated as %s (%s)", s.ID, res.User.Phone, res.User.Role)
	}
	c.JSON(http.StatusOK, flowView(res))
}

func (h *AuthHandler) flowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authflow.ErrWrongStep):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "WRONG_STEP",
			Message: err.Error(),
		})
	case errors.Is(err, authflow.ErrMissingBusinessFields), errors.Is(err, authflow.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: err.Error(),
		})
	default:
		writeBackendError(c, err)
	}
}

package auth

import (
	"net/http"

	"github.com/user/journal-go/respond"
)

// Handlers exposes the auth service over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates auth Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User registration
// @Description Registers a new user. The first user ever registered becomes admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Registration details"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 409 {object} respond.Envelope
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		message := "User registered successfully"
		if user.IsAdmin() {
			message = "Admin account created"
		}
		respond.JSONMessage(w, http.StatusCreated, user, message)
	}
}

// HandleLogin godoc
// @Summary User login
// @Description Logs in with email and password, returning a 24h bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 401 {object} respond.Envelope
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, resp)
	}
}

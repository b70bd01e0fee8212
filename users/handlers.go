package users

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/auth"
	"github.com/user/journal-go/respond"
)

// Handlers exposes the users service over HTTP. All routes assume the
// Authenticate middleware has run; the admin-only ones additionally sit
// behind RequireAdmin.
type Handlers struct {
	service *Service
}

// NewHandlers creates users Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.NewValidationError("Invalid user id", err)
	}
	return id, nil
}

// HandleMe godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} respond.Envelope
// @Router /users/me [get]
func (h *Handlers) HandleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			respond.Error(w, r, apperror.NewNoCredentialError("Access denied, no token provided", nil))
			return
		}

		profile, err := h.service.Profile(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, profile)
	}
}

// HandleStats godoc
// @Summary Get own journal statistics
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} respond.Envelope
// @Router /users/me/stats [get]
func (h *Handlers) HandleStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			respond.Error(w, r, apperror.NewNoCredentialError("Access denied, no token provided", nil))
			return
		}

		stats, err := h.service.Stats(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, stats)
	}
}

// HandleList godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} respond.Envelope
// @Failure 403 {object} respond.Envelope
// @Router /users [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := h.service.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, profiles)
	}
}

// HandleGet godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /users/{id} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		profile, err := h.service.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, profile)
	}
}

// HandleUpdateRole godoc
// @Summary Change a user's role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Param roleBody body users.UpdateRoleRequest true "New role"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /users/{id}/role [put]
func (h *Handlers) HandleUpdateRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req UpdateRoleRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		updated, err := h.service.UpdateRole(r.Context(), id, req)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, updated)
	}
}

// HandleDelete godoc
// @Summary Delete a user
// @Description Deletes a user account. Self-deletion is blocked even for admins.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /users/{id} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			respond.Error(w, r, apperror.NewNoCredentialError("Access denied, no token provided", nil))
			return
		}

		id, err := idParam(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		deleted, err := h.service.Delete(r.Context(), claims.UserID, id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSONMessage(w, http.StatusOK, deleted, "User deleted")
	}
}

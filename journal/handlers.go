package journal

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/auth"
	"github.com/user/journal-go/respond"
)

// Handlers exposes the journal service over HTTP. Every route assumes the
// Authenticate middleware has run.
type Handlers struct {
	service *Service
}

// NewHandlers creates journal Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the journal routes on the given router. The /all
// listing is additionally wrapped in the admin gate.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList())
	r.With(auth.RequireAdmin).Get("/all", h.HandleListAll())
	r.Post("/", h.HandleCreate())
	r.Get("/{id}", h.HandleGet())
	r.Put("/{id}", h.HandleUpdate())
	r.Delete("/{id}", h.HandleDelete())
}

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.NewValidationError("Invalid entry id", err)
	}
	return id, nil
}

func claimsOrError(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respond.Error(w, r, apperror.NewNoCredentialError("Access denied, no token provided", nil))
		return nil, false
	}
	return claims, true
}

// HandleList godoc
// @Summary List own journal entries
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} respond.Envelope
// @Router /journal-entries [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrError(w, r)
		if !ok {
			return
		}

		entries, err := h.service.ListMine(r.Context(), claims)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, entries)
	}
}

// HandleListAll godoc
// @Summary List all journal entries (admin)
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} respond.Envelope
// @Failure 403 {object} respond.Envelope
// @Router /journal-entries/all [get]
func (h *Handlers) HandleListAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.service.ListAll(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, entries)
	}
}

// HandleGet godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry id"
// @Success 200 {object} respond.Envelope
// @Failure 403 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /journal-entries/{id} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrError(w, r)
		if !ok {
			return
		}

		id, err := idParam(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		entry, err := h.service.Get(r.Context(), claims, id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, entry)
	}
}

// HandleCreate godoc
// @Summary Create a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entryBody body journal.CreateEntryRequest true "Entry details"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /journal-entries [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrError(w, r)
		if !ok {
			return
		}

		var req CreateEntryRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		entry, err := h.service.Create(r.Context(), claims, req)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSONMessage(w, http.StatusCreated, entry, "Journal entry created")
	}
}

// HandleUpdate godoc
// @Summary Update a journal entry
// @Description Partial update. Omitted fields keep their stored values.
// @Tags journal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry id"
// @Param entryBody body journal.UpdateEntryRequest true "Fields to change"
// @Success 200 {object} respond.Envelope
// @Failure 403 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /journal-entries/{id} [put]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrError(w, r)
		if !ok {
			return
		}

		id, err := idParam(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req UpdateEntryRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		entry, err := h.service.Update(r.Context(), claims, id, req)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, entry)
	}
}

// HandleDelete godoc
// @Summary Delete a journal entry
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry id"
// @Success 200 {object} respond.Envelope
// @Failure 403 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /journal-entries/{id} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrError(w, r)
		if !ok {
			return
		}

		id, err := idParam(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		deleted, err := h.service.Delete(r.Context(), claims, id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSONMessage(w, http.StatusOK, deleted, "Journal entry deleted")
	}
}

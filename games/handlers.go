package games

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/respond"
)

// Handlers exposes the games service over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates games Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.NewValidationError("Invalid game id", err)
	}
	return id, nil
}

// HandleList godoc
// @Summary List all games
// @Tags games
// @Produce json
// @Success 200 {object} respond.Envelope
// @Router /games [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.service.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, result)
	}
}

// HandleGet godoc
// @Summary Get a game by id
// @Tags games
// @Produce json
// @Param id path int true "Game id"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /games/{id} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		game, err := h.service.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, game)
	}
}

// HandleCreate godoc
// @Summary Add a game to the catalog
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gameBody body games.CreateGameRequest true "Game details"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /games [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGameRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		game, err := h.service.Create(r.Context(), req)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSONMessage(w, http.StatusCreated, game, "Game created")
	}
}

// HandleUpdate godoc
// @Summary Update a game
// @Description Partial update. Omitted fields keep their stored values.
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game id"
// @Param gameBody body games.UpdateGameRequest true "Fields to change"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /games/{id} [put]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req UpdateGameRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		game, err := h.service.Update(r.Context(), id, req)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, game)
	}
}

// HandleDelete godoc
// @Summary Delete a game
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game id"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /games/{id} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		deleted, err := h.service.Delete(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSONMessage(w, http.StatusOK, deleted, "Game deleted")
	}
}

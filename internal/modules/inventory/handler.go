package inventory

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/carmarket-backend/internal/modules/auth"
	"github.com/georgemunganga/carmarket-backend/internal/modules/catalog"
	"github.com/georgemunganga/carmarket-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler exposes the seller dashboard HTTP endpoints. Every route sits
// behind the seller gate; a controller is built per request from the
// authenticated principal.
type Handler struct{ store catalog.Store }

func NewHandler(store catalog.Store) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(router *chi.Mux, mw *auth.Middleware) {
	router.Route("/api/v1/seller/listings", func(r chi.Router) {
		r.Use(mw.RequireRole(user.RoleSeller))
		r.Get("/", h.listOwn)
		r.Post("/", h.add)
		r.Put("/{id}", h.edit)
		r.Delete("/{id}", h.remove)
	})
}

func (h *Handler) controller(r *http.Request) (*Controller, bool) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		return nil, false
	}
	return NewController(h.store, p.ID), true
}

func (h *Handler) listOwn(w http.ResponseWriter, r *http.Request) {
	c, ok := h.controller(r)
	if !ok {
		http.Error(w, "no principal", http.StatusUnauthorized)
		return
	}

	listings, err := c.Load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, listings)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	c, ok := h.controller(r)
	if !ok {
		http.Error(w, "no principal", http.StatusUnauthorized)
		return
	}

	var draft catalog.ListingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := c.Add(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusCreated, l)
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	c, ok := h.controller(r)
	if !ok {
		http.Error(w, "no principal", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, catalog.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	var patch catalog.ListingPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := c.Edit(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, l)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	c, ok := h.controller(r)
	if !ok {
		http.Error(w, "no principal", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, catalog.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	if err := c.Remove(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, catalog.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, catalog.ErrInvalidListing):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

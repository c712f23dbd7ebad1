package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/georgemunganga/carmarket-backend/internal/modules/auth"
	"github.com/georgemunganga/carmarket-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the buyer-facing catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, mw *auth.Middleware) {
	router.Route("/api/v1/catalog", func(r chi.Router) {
		r.With(mw.RequireRole(user.RoleBuyer)).Get("/listings", h.browse)
		// Any authenticated role may view a listing detail; sellers land
		// here from their own inventory.
		r.With(mw.RequireRole("")).Get("/listings/{id}", h.getListing)
	})
}

func (h *Handler) browse(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	listings, err := h.service.Browse(r.Context(), criteria)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, listings)
}

func (h *Handler) getListing(w http.ResponseWriter, r *http.Request) {
	l, err := h.service.GetListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, l)
}

// criteriaFromQuery maps query parameters to filter criteria. Empty
// parameters stay absent; "min_price=0" becomes a real zero bound.
func criteriaFromQuery(r *http.Request) (Criteria, error) {
	q := r.URL.Query()
	c := Criteria{
		SearchTerm: q.Get("search"),
		Status:     ListingStatus(q.Get("status")),
	}
	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Criteria{}, errors.New("invalid min_price")
		}
		c.MinPrice = &v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Criteria{}, errors.New("invalid max_price")
		}
		c.MaxPrice = &v
	}
	return c, nil
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

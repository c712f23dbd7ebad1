package order

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/carmarket-backend/internal/modules/auth"
	"github.com/georgemunganga/carmarket-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the buyer's order history.
type Handler struct{ repo Repository }

func NewHandler(repo Repository) *Handler { return &Handler{repo: repo} }

func (h *Handler) RegisterRoutes(router *chi.Mux, mw *auth.Middleware) {
	router.With(mw.RequireRole(user.RoleBuyer)).Get("/api/v1/orders", h.listOwn)
}

func (h *Handler) listOwn(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "no principal", http.StatusUnauthorized)
		return
	}

	orders, err := h.repo.ListOrdersByBuyer(r.Context(), p.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

package purchase

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/carmarket-backend/internal/modules/auth"
	"github.com/georgemunganga/carmarket-backend/internal/modules/catalog"
	"github.com/georgemunganga/carmarket-backend/internal/modules/order"
	"github.com/georgemunganga/carmarket-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler exposes the purchase endpoint. A fresh flow runs per request;
// the request is the screen's lifetime, so any navigation still pending
// when the response is written is cancelled and handed to the client as a
// redirect target instead.
type Handler struct {
	store  catalog.Store
	orders order.Repository
}

func NewHandler(store catalog.Store, orders order.Repository) *Handler {
	return &Handler{store: store, orders: orders}
}

func (h *Handler) RegisterRoutes(router *chi.Mux, mw *auth.Middleware) {
	router.With(mw.RequireRole(user.RoleBuyer)).Post("/api/v1/purchase/{listingID}", h.initiate)
}

func (h *Handler) initiate(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "no principal", http.StatusUnauthorized)
		return
	}

	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		http.Error(w, catalog.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	flow := NewFlow(h.store, h.orders, NavigatorFunc(func(string) {}), DefaultRedirectDelay)
	defer flow.Cancel()

	if err := flow.Initiate(r.Context(), p, listingID); err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{
				"state":   string(flow.State()),
				"message": rejected.Reason,
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{
		"state":       string(flow.State()),
		"message":     flow.Message(),
		"redirect_to": auth.RouteBrowse,
	})
}

package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tinytots/storefront/internal/modules/auth"
)

// Handler exposes the current user's cart over HTTP. All routes require
// an authenticated user; the JWT subject is the cart key.
type Handler struct {
	stores  *Stores
	pricing PricingConfig
}

func NewHandler(stores *Stores, pricing PricingConfig) *Handler {
	return &Handler{stores: stores, pricing: pricing}
}

func (h *Handler) RegisterRoutes(r *chi.Mux, authenticated func(http.Handler) http.Handler) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", h.getCart)
		r.Post("/items", h.addItem)
		r.Put("/items", h.updateQuantity)
		r.Delete("/items", h.removeItem)
		r.Delete("/", h.clearCart)
	})
}

// cartResponse pairs the item sequence with totals recomputed on every
// read.
type cartResponse struct {
	Items   []Item  `json:"items"`
	Summary Summary `json:"summary"`
}

func (h *Handler) store(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	store, err := h.stores.ForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return store, true
}

func (h *Handler) respondCart(w http.ResponseWriter, store *Store) {
	items := store.Items()
	if items == nil {
		items = []Item{}
	}
	respond(w, http.StatusOK, cartResponse{Items: items, Summary: h.pricing.Summarize(items)})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	h.respondCart(w, store)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if item.ProductID == 0 || item.Name == "" || item.Price <= 0 {
		http.Error(w, "id, name and price are required", http.StatusBadRequest)
		return
	}
	if err := store.AddItem(r.Context(), item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.respondCart(w, store)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	var req struct {
		ProductID int64  `json:"id"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := store.UpdateQuantity(r.Context(), req.ProductID, req.Quantity, req.Size, req.Color); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.respondCart(w, store)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	productID, err := strconv.ParseInt(q.Get("productId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid productId", http.StatusBadRequest)
		return
	}
	if err := store.RemoveItem(r.Context(), productID, q.Get("size"), q.Get("color")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.respondCart(w, store)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	if err := store.Clear(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.respondCart(w, store)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

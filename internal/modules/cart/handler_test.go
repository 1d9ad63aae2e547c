package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytots/storefront/internal/modules/auth"
)

// asUser stands in for the JWT middleware in tests.
func asUser(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), userID, "customer")))
		})
	}
}

func newTestRouter(userID string) *chi.Mux {
	r := chi.NewRouter()
	stores := NewStores(NewMemoryStorage())
	NewHandler(stores, DefaultPricing()).RegisterRoutes(r, asUser(userID))
	return r
}

func doJSON(t *testing.T, router *chi.Mux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetCartStartsEmpty(t *testing.T) {
	router := newTestRouter("u1")

	rec := doJSON(t, router, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeCart(t, rec)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.Summary.Subtotal)
	assert.Equal(t, 5.99, resp.Summary.ShippingCost)
}

func TestAddItemEndpointMergesAndSummarizes(t *testing.T) {
	router := newTestRouter("u1")

	item := `{"id":1,"name":"Floral Summer Dress","price":29.99,"quantity":1,"size":"0-3 months"}`
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", item)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/cart/items", item)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 59.98, resp.Summary.Subtotal)
	assert.Equal(t, 0.0, resp.Summary.ShippingCost)
}

func TestAddItemEndpointValidates(t *testing.T) {
	router := newTestRouter("u1")

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", `{"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveItemEndpoint(t *testing.T) {
	router := newTestRouter("u1")

	doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"id":1,"name":"Dress","price":29.99,"quantity":1,"size":"0-3 months","color":"Pink"}`)

	// Wrong color: no-op.
	rec := doJSON(t, router, http.MethodDelete, "/api/cart/items?productId=1&size=0-3+months&color=Blue", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeCart(t, rec).Items, 1)

	rec = doJSON(t, router, http.MethodDelete, "/api/cart/items?productId=1&size=0-3+months&color=Pink", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec).Items)
}

func TestUpdateQuantityEndpoint(t *testing.T) {
	router := newTestRouter("u1")

	doJSON(t, router, http.MethodPost, "/api/cart/items", `{"id":6,"name":"Bow Set","price":14.99,"quantity":1}`)

	rec := doJSON(t, router, http.MethodPut, "/api/cart/items", `{"id":6,"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, 44.97, resp.Summary.Subtotal)
}

func TestClearCartEndpoint(t *testing.T) {
	router := newTestRouter("u1")

	doJSON(t, router, http.MethodPost, "/api/cart/items", `{"id":1,"name":"Dress","price":29.99,"quantity":2}`)

	rec := doJSON(t, router, http.MethodDelete, "/api/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec).Items)
}

package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	httpapi "dineout/internal/api/http"
	"dineout/internal/domain"
	"dineout/internal/service"
	"dineout/internal/storage"
)

func newServer() http.Handler {
	sys := service.NewDineOut(
		storage.NewMemoryCatalog(),
		storage.NewMemoryUserDirectory(),
		storage.NewMemoryOrderStore(),
		service.ReceiptQRGenerator{BaseURL: "http://localhost:8080"},
		nil,
	)
	sys.RegisterCustomer(domain.NewCustomer("C001", "Paras", "paras@example.com", "paras1234"))
	sys.AddRestaurant(pizzaParadise())
	sys.AddRestaurant(cafeBrew())

	router := mux.NewRouter()
	httpapi.NewHandler(sys).RegisterRoutes(router)
	return router
}

func doRequest(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "valid credentials", body: `{"email":"paras@example.com","password":"paras1234"}`, wantCode: http.StatusOK},
		{name: "wrong password", body: `{"email":"paras@example.com","password":"wrong"}`, wantCode: http.StatusUnauthorized},
		{name: "invalid JSON", body: `{invalid}`, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := newServer()

			w := doRequest(server, "POST", "/api/login", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), "Paras")
				assert.NotContains(t, w.Body.String(), "paras1234")
			}
		})
	}
}

func TestSearchHandler(t *testing.T) {
	server := newServer()

	w := doRequest(server, "GET", "/api/restaurants?q=fast+food", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var restaurants []domain.Restaurant
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&restaurants))
	assert.Len(t, restaurants, 1)
	assert.Equal(t, "Pizza Paradise", restaurants[0].Name)
}

func TestRestaurantEndpoints(t *testing.T) {
	server := newServer()

	w := doRequest(server, "GET", "/api/restaurants/R06/details", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Restaurant: Pizza Paradise")

	w = doRequest(server, "GET", "/api/restaurants/R06/menu", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var menu []domain.MenuItem
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&menu))
	assert.Len(t, menu, 2)

	w = doRequest(server, "GET", "/api/restaurants/R06/menu/text", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1. Margherita Pizza")

	w = doRequest(server, "GET", "/api/restaurants/R99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartRequiresLogin(t *testing.T) {
	server := newServer()

	w := doRequest(server, "POST", "/api/cart/items", `{"restaurant_id":"R06","item_id":"F04","quantity":1}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReservationHandler(t *testing.T) {
	server := newServer()

	w := doRequest(server, "POST", "/api/reservations", `{"restaurant_id":"R06","year":2026,"month":12,"day":24,"hour":19,"minute":30,"guests":2}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(server, "POST", "/api/login", `{"email":"paras@example.com","password":"paras1234"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(server, "POST", "/api/reservations", `{"restaurant_id":"R06","year":2026,"month":13,"day":24,"hour":19,"minute":30,"guests":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(server, "POST", "/api/reservations", `{"restaurant_id":"R06","year":2026,"month":12,"day":24,"hour":19,"minute":30,"guests":2}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Pizza Paradise")

	w = doRequest(server, "GET", "/api/me/reservations", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "--- Your Booking History ---")
	assert.Contains(t, w.Body.String(), "Guests: 2")
}

func TestCheckoutFlow(t *testing.T) {
	server := newServer()

	w := doRequest(server, "POST", "/api/login", `{"email":"paras@example.com","password":"paras1234"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(server, "POST", "/api/cart/items", `{"restaurant_id":"R06","item_id":"F04","quantity":2}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(server, "POST", "/api/cart/items", `{"restaurant_id":"R06","item_id":"F03","quantity":1}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(server, "GET", "/api/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		Items []domain.CartLine `json:"items"`
		Total float64           `json:"total"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&cart))
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 250.0, cart.Total)

	w = doRequest(server, "POST", "/api/orders", `{"restaurant_id":"R06"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	var placed struct {
		ID      string  `json:"id"`
		Total   float64 `json:"total"`
		Receipt string  `json:"receipt"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&placed))
	assert.Equal(t, 250.0, placed.Total)
	assert.Contains(t, placed.Receipt, "Total Bill: ₹250.00")

	w = doRequest(server, "GET", "/api/orders/"+placed.ID+"/receipt", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Customer: Paras")

	w = doRequest(server, "GET", "/api/orders/"+placed.ID+"/qrcode", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = doRequest(server, "POST", "/api/orders/"+placed.ID+"/payment", `{"method":"wallet","wallet_id":"paras@wallet"}`)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	// The failed payment left the cart intact for a retry.
	w = doRequest(server, "GET", "/api/cart", "")
	assert.Contains(t, w.Body.String(), `"total":250`)

	w = doRequest(server, "POST", "/api/orders/"+placed.ID+"/payment", `{"method":"card","card_number":"4111111111113456","card_holder":"Paras"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "3456")

	w = doRequest(server, "DELETE", "/api/cart", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(server, "GET", "/api/me/orders", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), placed.ID)

	w = doRequest(server, "POST", "/api/logout", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(server, "GET", "/api/me/orders", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlaceOrderHandlerEmptyCart(t *testing.T) {
	server := newServer()

	w := doRequest(server, "POST", "/api/login", `{"email":"paras@example.com","password":"paras1234"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(server, "POST", "/api/orders", `{"restaurant_id":"R06"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(server, "POST", "/api/orders/ORD-missing/payment", `{"method":"card","card_number":"4111111111113456","card_holder":"Paras"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(server, "POST", "/api/orders/ORD-missing/payment", `{"method":"cheque"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

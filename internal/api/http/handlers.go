// Package httpapi is the presentation collaborator: a thin HTTP layer
// that calls into the DineOut core and renders its outputs. The core
// never depends on this package.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"dineout/internal/domain"
	"dineout/internal/payment"
	"dineout/internal/service"
)

type Handler struct {
	DineOut service.DineOutInterface
}

func NewHandler(dineout service.DineOutInterface) *Handler {
	return &Handler{DineOut: dineout}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/register", h.register).Methods("POST")
	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/logout", h.logout).Methods("POST")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/details", h.getRestaurantDetails).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu/text", h.getMenuText).Methods("GET")

	r.HandleFunc("/api/reservations", h.makeReservation).Methods("POST")
	r.HandleFunc("/api/me/reservations", h.getBookingHistory).Methods("GET")
	r.HandleFunc("/api/me/orders", h.getOrderHistory).Methods("GET")

	r.HandleFunc("/api/cart/items", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/receipt", h.getReceipt).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/payment", h.payOrder).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "dineout",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	customer := domain.NewCustomer(req.ID, req.Name, req.Email, req.Password)
	h.DineOut.RegisterCustomer(customer)
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	customer, err := h.DineOut.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.DineOut.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	var restaurants []*domain.Restaurant
	if query := r.URL.Query().Get("q"); query != "" {
		restaurants = h.DineOut.SearchRestaurants(query)
	} else {
		restaurants = h.DineOut.Restaurants()
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.DineOut.Restaurant(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getRestaurantDetails(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.DineOut.Restaurant(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, restaurant.Summary())
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.DineOut.Restaurant(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant.Menu())
}

func (h *Handler) getMenuText(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.DineOut.Restaurant(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, restaurant.MenuText())
}

func (h *Handler) makeReservation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RestaurantID string `json:"restaurant_id"`
		Year         int    `json:"year"`
		Month        int    `json:"month"`
		Day          int    `json:"day"`
		Hour         int    `json:"hour"`
		Minute       int    `json:"minute"`
		Guests       int    `json:"guests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	reservation, err := h.DineOut.MakeReservation(req.RestaurantID, req.Year, req.Month, req.Day, req.Hour, req.Minute, req.Guests)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":            reservation.ID,
		"restaurant_id": reservation.Restaurant.ID,
		"when":          reservation.When,
		"guests":        reservation.Guests,
		"details":       reservation.Details(),
	})
}

func (h *Handler) getBookingHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.DineOut.BookingHistory()
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, history)
}

func (h *Handler) getOrderHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.DineOut.OrderHistory()
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, history)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RestaurantID string `json:"restaurant_id"`
		ItemID       string `json:"item_id"`
		Quantity     int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	restaurant, err := h.DineOut.Restaurant(req.RestaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	item, ok := restaurant.MenuItemByID(req.ItemID)
	if !ok {
		writeError(w, domain.ErrMenuItemNotFound)
		return
	}
	if err := h.DineOut.AddToCart(item, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	h.getCart(w, r)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": h.DineOut.CartLines(),
		"total": h.DineOut.CartTotal(),
	})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.DineOut.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RestaurantID string `json:"restaurant_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.DineOut.PlaceOrder(r.Context(), req.RestaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":            order.ID,
		"restaurant_id": order.Restaurant.ID,
		"lines":         order.Lines(),
		"total":         order.Total(),
		"receipt":       order.Receipt(),
		"qrcode_url":    "/api/orders/" + order.ID + "/qrcode",
	})
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	order, err := h.DineOut.Order(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, order.Receipt())
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.DineOut.OrderQRCode(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) payOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method         string `json:"method"`
		CardNumber     string `json:"card_number"`
		CardHolder     string `json:"card_holder"`
		WalletID       string `json:"wallet_id"`
		WalletPassword string `json:"wallet_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var method payment.Method
	switch req.Method {
	case "card":
		method = payment.NewCard(req.CardNumber, req.CardHolder)
	case "wallet":
		method = payment.NewWallet(req.WalletID, req.WalletPassword)
	default:
		http.Error(w, "unknown payment method", http.StatusBadRequest)
		return
	}

	order, err := h.DineOut.Order(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := h.DineOut.PayOrder(order, method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNoActiveSession):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPaymentAuthentication):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidGuestCount),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNothingToOrder),
		errors.Is(err, domain.ErrNoOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

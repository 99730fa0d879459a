// Package service implements the DineOut session controller. It owns the
// single active session and its cart; every caller goes through here, so
// session and cart mutations are serialized behind one mutex.
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dineout/internal/domain"
	"dineout/internal/payment"
)

// DineOut coordinates the catalog, the user directory and the single
// active customer session. At most one customer is logged in at a time.
type DineOut struct {
	catalog   Catalog
	users     UserDirectory
	orders    OrderStore
	qrEncoder QRGenerator
	publisher OrderPublisher

	mu      sync.Mutex
	current *domain.Customer
	cart    *domain.Cart
}

func NewDineOut(catalog Catalog, users UserDirectory, orders OrderStore, qrEncoder QRGenerator, publisher OrderPublisher) *DineOut {
	return &DineOut{
		catalog:   catalog,
		users:     users,
		orders:    orders,
		qrEncoder: qrEncoder,
		publisher: publisher,
		cart:      domain.NewCart(),
	}
}

func (s *DineOut) AddRestaurant(restaurant *domain.Restaurant) {
	s.catalog.Add(restaurant)
}

func (s *DineOut) RegisterCustomer(customer *domain.Customer) {
	s.users.Register(customer)
}

// Login scans the user directory for an exact email/password match and
// makes the matching customer the active session. A failed login leaves
// any prior session untouched.
func (s *DineOut) Login(email, password string) (*domain.Customer, error) {
	customer, err := s.users.FindByCredentials(email, password)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = customer
	s.mu.Unlock()
	return customer, nil
}

// Logout ends the active session and drops the session cart. Logging out
// with no active session is a no-op.
func (s *DineOut) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.cart.Clear()
}

func (s *DineOut) CurrentCustomer() *domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *DineOut) Restaurants() []*domain.Restaurant {
	return s.catalog.List()
}

func (s *DineOut) Restaurant(id string) (*domain.Restaurant, error) {
	return s.catalog.Get(id)
}

// SearchRestaurants returns, in catalog order, every restaurant whose
// name, cuisine or location contains the query as a case-insensitive
// substring. No match yields an empty slice, never an error.
func (s *DineOut) SearchRestaurants(query string) []*domain.Restaurant {
	q := strings.ToLower(query)
	matches := []*domain.Restaurant{}
	for _, restaurant := range s.catalog.List() {
		if strings.Contains(strings.ToLower(restaurant.Name), q) ||
			strings.Contains(strings.ToLower(restaurant.Cuisine), q) ||
			strings.Contains(strings.ToLower(restaurant.Location), q) {
			matches = append(matches, restaurant)
		}
	}
	return matches
}

// MakeReservation books a table for the active customer and appends the
// reservation to their history.
func (s *DineOut) MakeReservation(restaurantID string, year, month, day, hour, minute, guests int) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, domain.ErrNoActiveSession
	}
	restaurant, err := s.catalog.Get(restaurantID)
	if err != nil {
		return nil, err
	}
	if guests <= 0 {
		return nil, domain.ErrInvalidGuestCount
	}

	// time.Date normalizes out-of-range components, so a round-trip
	// mismatch means the caller supplied an impossible date.
	when := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	if when.Year() != year || when.Month() != time.Month(month) || when.Day() != day ||
		when.Hour() != hour || when.Minute() != minute {
		return nil, domain.ErrInvalidDate
	}

	reservation := domain.NewReservation("RES-"+uuid.NewString(), s.current, restaurant, when, guests)
	s.current.AddReservation(reservation)
	return reservation, nil
}

// AddToCart accumulates quantity onto the session cart entry for item.
func (s *DineOut) AddToCart(item domain.MenuItem, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.ErrNoActiveSession
	}
	return s.cart.Add(item, quantity)
}

func (s *DineOut) CartLines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *DineOut) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *DineOut) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// PlaceOrder turns the session cart into an order for the given
// restaurant. A cart with a zero total produces no order at all. The cart
// is deliberately left intact: clearing it after a successful payment is
// the caller's responsibility, so a cancelled payment keeps the cart for
// retry.
func (s *DineOut) PlaceOrder(ctx context.Context, restaurantID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, domain.ErrNoActiveSession
	}
	restaurant, err := s.catalog.Get(restaurantID)
	if err != nil {
		return nil, err
	}

	order := domain.NewOrder("ORD-"+uuid.NewString(), s.current, restaurant)
	for _, line := range s.cart.Lines() {
		order.AddItem(line.Item, line.Quantity)
	}
	if order.Total() <= 0 {
		return nil, domain.ErrNothingToOrder
	}

	s.current.AddOrder(order)
	s.orders.Save(order)

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			s.orders.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderPlaced(ctx, domain.OrderPlacedEvent{
			Type:         "order_placed",
			OrderID:      order.ID,
			RestaurantID: restaurant.ID,
			CustomerID:   order.Customer.ID,
			Total:        order.Total(),
			Timestamp:    time.Now(),
		})
	}

	return order, nil
}

// PayOrder dispatches the order total to the chosen payment method. There
// is no idempotency guard: paying the same order twice charges twice.
func (s *DineOut) PayOrder(order *domain.Order, method payment.Method) (payment.Result, error) {
	if order == nil {
		return payment.Result{}, domain.ErrNoOrder
	}
	return method.Process(order.Total())
}

func (s *DineOut) Order(orderID string) (*domain.Order, error) {
	return s.orders.Get(orderID)
}

// OrderQRCode returns the receipt QR for a placed order, regenerating it
// if the stored copy is missing.
func (s *DineOut) OrderQRCode(orderID string) ([]byte, error) {
	qr, err := s.orders.QRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			s.orders.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *DineOut) BookingHistory() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return "", domain.ErrNoActiveSession
	}
	return s.current.BookingHistoryText(), nil
}

func (s *DineOut) OrderHistory() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return "", domain.ErrNoActiveSession
	}
	return s.current.OrderHistoryText(), nil
}

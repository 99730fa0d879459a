package service

import (
	"context"

	"dineout/internal/domain"
	"dineout/internal/payment"
)

type Catalog interface {
	Add(restaurant *domain.Restaurant)
	List() []*domain.Restaurant
	Get(id string) (*domain.Restaurant, error)
}

type UserDirectory interface {
	Register(customer *domain.Customer)
	FindByCredentials(email, password string) (*domain.Customer, error)
}

type OrderStore interface {
	Save(order *domain.Order)
	Get(orderID string) (*domain.Order, error)
	SaveQRCode(orderID string, qr []byte)
	QRCode(orderID string) ([]byte, error)
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error
}

type DineOutInterface interface {
	AddRestaurant(restaurant *domain.Restaurant)
	RegisterCustomer(customer *domain.Customer)
	Login(email, password string) (*domain.Customer, error)
	Logout()
	CurrentCustomer() *domain.Customer
	Restaurants() []*domain.Restaurant
	Restaurant(id string) (*domain.Restaurant, error)
	SearchRestaurants(query string) []*domain.Restaurant
	MakeReservation(restaurantID string, year, month, day, hour, minute, guests int) (*domain.Reservation, error)
	AddToCart(item domain.MenuItem, quantity int) error
	CartLines() []domain.CartLine
	CartTotal() float64
	ClearCart()
	PlaceOrder(ctx context.Context, restaurantID string) (*domain.Order, error)
	PayOrder(order *domain.Order, method payment.Method) (payment.Result, error)
	Order(orderID string) (*domain.Order, error)
	OrderQRCode(orderID string) ([]byte, error)
	BookingHistory() (string, error)
	OrderHistory() (string, error)
}

var _ DineOutInterface = (*DineOut)(nil)

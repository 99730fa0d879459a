// Package storage provides the in-memory backing stores. All state lives
// for the process lifetime only; nothing survives a restart.
package storage

import (
	"sync"

	"dineout/internal/domain"
)

// MemoryCatalog keeps restaurants in registration order. Duplicate ids
// are accepted silently, matching the permissive catalog contract.
type MemoryCatalog struct {
	mu          sync.RWMutex
	restaurants []*domain.Restaurant
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{}
}

func (c *MemoryCatalog) Add(restaurant *domain.Restaurant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restaurants = append(c.restaurants, restaurant)
}

func (c *MemoryCatalog) List() []*domain.Restaurant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*domain.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

func (c *MemoryCatalog) Get(id string) (*domain.Restaurant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, restaurant := range c.restaurants {
		if restaurant.ID == id {
			return restaurant, nil
		}
	}
	return nil, domain.ErrRestaurantNotFound
}

// MemoryUserDirectory keeps registered customers in registration order.
type MemoryUserDirectory struct {
	mu        sync.RWMutex
	customers []*domain.Customer
}

func NewMemoryUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{}
}

func (d *MemoryUserDirectory) Register(customer *domain.Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers = append(d.customers, customer)
}

// FindByCredentials scans the directory for an exact email and password
// match. The first matching record wins.
func (d *MemoryUserDirectory) FindByCredentials(email, password string) (*domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, customer := range d.customers {
		if customer.Email == email && customer.Password == password {
			return customer, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// MemoryOrderStore indexes placed orders and their receipt QR codes by id
// so they can be fetched after checkout.
type MemoryOrderStore struct {
	mu      sync.RWMutex
	orders  map[string]*domain.Order
	qrCodes map[string][]byte
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{
		orders:  make(map[string]*domain.Order),
		qrCodes: make(map[string][]byte),
	}
}

func (s *MemoryOrderStore) Save(order *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
}

func (s *MemoryOrderStore) Get(orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *MemoryOrderStore) SaveQRCode(orderID string, qr []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qrCodes[orderID] = qr
}

func (s *MemoryOrderStore) QRCode(orderID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.orders[orderID]; !ok {
		return nil, domain.ErrOrderNotFound
	}
	return s.qrCodes[orderID], nil
}

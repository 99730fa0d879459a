// Package mocks contains testify mocks for the service collaborators.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dineout/internal/domain"
)

type Catalog struct {
	mock.Mock
}

func (m *Catalog) Add(restaurant *domain.Restaurant) {
	m.Called(restaurant)
}

func (m *Catalog) List() []*domain.Restaurant {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.Restaurant)
}

func (m *Catalog) Get(id string) (*domain.Restaurant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

type UserDirectory struct {
	mock.Mock
}

func (m *UserDirectory) Register(customer *domain.Customer) {
	m.Called(customer)
}

func (m *UserDirectory) FindByCredentials(email, password string) (*domain.Customer, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type OrderStore struct {
	mock.Mock
}

func (m *OrderStore) Save(order *domain.Order) {
	m.Called(order)
}

func (m *OrderStore) Get(orderID string) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderStore) SaveQRCode(orderID string, qr []byte) {
	m.Called(orderID, qr)
}

func (m *OrderStore) QRCode(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dineout/internal/domain"
)

func TestMenuIsDefensivelyCopied(t *testing.T) {
	restaurant := pizzaParadise()

	menu := restaurant.Menu()
	menu[0].Name = "Tampered"
	menu[0].Price = 0

	fresh := restaurant.Menu()
	assert.Equal(t, "Margherita Pizza", fresh[0].Name)
	assert.Equal(t, 100.0, fresh[0].Price)
}

func TestMenuTextListing(t *testing.T) {
	restaurant := pizzaParadise()

	text := restaurant.MenuText()

	assert.Contains(t, text, "--- Menu for Pizza Paradise ---")
	assert.Contains(t, text, "1. Margherita Pizza")
	assert.Contains(t, text, "2. French Fries")
	assert.Contains(t, text, "₹100.00")
}

func TestMenuTextWhenEmpty(t *testing.T) {
	restaurant := domain.NewRestaurant("R99", "Ghost Kitchen", "None", 0, "Nowhere", 0)

	assert.Equal(t, "Menu is not available for Ghost Kitchen", restaurant.MenuText())
}

func TestRestaurantSummary(t *testing.T) {
	summary := pizzaParadise().Summary()

	assert.Contains(t, summary, "Restaurant: Pizza Paradise")
	assert.Contains(t, summary, "Cuisine: Italian, Fast Food | Rating: 4.0/5.0")
	assert.Contains(t, summary, "Location: Club Road, Sangrur")
	assert.Contains(t, summary, "Avg. Cost for Two: ₹800.00")
}

func TestOrderAccumulatesAndRecalculates(t *testing.T) {
	customer := domain.NewCustomer("C001", "Paras", "paras@example.com", "pw")
	restaurant := pizzaParadise()
	order := domain.NewOrder("ORD-1", customer, restaurant)
	menu := restaurant.Menu()

	order.AddItem(menu[0], 1)
	order.AddItem(menu[0], 2)
	order.AddItem(menu[1], 1)

	lines := order.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 350.0, order.Total())
}

func TestOrderReceipt(t *testing.T) {
	customer := domain.NewCustomer("C001", "Paras", "paras@example.com", "pw")
	restaurant := pizzaParadise()
	order := domain.NewOrder("ORD-1", customer, restaurant)
	menu := restaurant.Menu()
	order.AddItem(menu[0], 2)
	order.AddItem(menu[1], 1)

	receipt := order.Receipt()

	assert.Contains(t, receipt, "Order ID: ORD-1")
	assert.Contains(t, receipt, "Restaurant: Pizza Paradise")
	assert.Contains(t, receipt, "Customer: Paras")
	assert.Contains(t, receipt, "(Qty: 2) - ₹200.00")
	assert.Contains(t, receipt, "(Qty: 1) - ₹50.00")
	assert.Contains(t, receipt, "Total Bill: ₹250.00")
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	cart := domain.NewCart()
	second := domain.MenuItem{ID: "B", Name: "Beta", Price: 10}
	first := domain.MenuItem{ID: "A", Name: "Alpha", Price: 20}

	assert.NoError(t, cart.Add(second, 1))
	assert.NoError(t, cart.Add(first, 1))
	assert.NoError(t, cart.Add(second, 2))

	lines := cart.Lines()
	assert.Equal(t, "Beta", lines[0].Item.Name)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "Alpha", lines[1].Item.Name)
	assert.Equal(t, 50.0, cart.Total())
}

func TestCustomerHistoriesAreSnapshots(t *testing.T) {
	customer := domain.NewCustomer("C001", "Paras", "paras@example.com", "pw")
	restaurant := pizzaParadise()
	reservation := domain.NewReservation("RES-1", customer, restaurant, time.Date(2026, 12, 24, 19, 30, 0, 0, time.Local), 2)
	customer.AddReservation(reservation)

	history := customer.Reservations()
	history[0] = nil

	assert.Equal(t, reservation, customer.Reservations()[0])
}

func TestBookingHistoryText(t *testing.T) {
	customer := domain.NewCustomer("C001", "Paras", "paras@example.com", "pw")
	restaurant := pizzaParadise()

	assert.Equal(t, "--- No Booking History ---", customer.BookingHistoryText())

	customer.AddReservation(domain.NewReservation("RES-1", customer, restaurant, time.Date(2026, 12, 24, 19, 30, 0, 0, time.Local), 2))
	text := customer.BookingHistoryText()

	assert.Contains(t, text, "--- Your Booking History ---")
	assert.Contains(t, text, "Reservation ID: RES-1")
	assert.Contains(t, text, "Date & Time: 2026-12-24 19:30")
	assert.Contains(t, text, "Guests: 2")
}

func TestOrderHistoryText(t *testing.T) {
	customer := domain.NewCustomer("C001", "Paras", "paras@example.com", "pw")
	restaurant := pizzaParadise()

	assert.Equal(t, "--- No Order History ---", customer.OrderHistoryText())

	order := domain.NewOrder("ORD-1", customer, restaurant)
	order.AddItem(restaurant.Menu()[0], 1)
	customer.AddOrder(order)

	text := customer.OrderHistoryText()
	assert.Contains(t, text, "--- Your Order History ---")
	assert.Contains(t, text, "Order ID: ORD-1")
	assert.Contains(t, text, "Total Bill: ₹100.00")
}

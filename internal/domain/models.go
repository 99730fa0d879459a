package domain

import "time"

// MenuItem is a single entry on a restaurant's menu. Items are plain
// values and never change after the menu is seeded.
type MenuItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Restaurant holds the identity of one restaurant plus its menu. The menu
// is append-only and only handed out as a copy.
type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Rating      float64 `json:"rating"`
	Location    string  `json:"location"`
	AverageCost float64 `json:"average_cost"`

	menu []MenuItem
}

func NewRestaurant(id, name, cuisine string, rating float64, location string, averageCost float64) *Restaurant {
	return &Restaurant{
		ID:          id,
		Name:        name,
		Cuisine:     cuisine,
		Rating:      rating,
		Location:    location,
		AverageCost: averageCost,
	}
}

func (r *Restaurant) AddMenuItem(item MenuItem) {
	r.menu = append(r.menu, item)
}

// Menu returns a snapshot of the menu in seeding order.
func (r *Restaurant) Menu() []MenuItem {
	out := make([]MenuItem, len(r.menu))
	copy(out, r.menu)
	return out
}

func (r *Restaurant) MenuItemByID(itemID string) (MenuItem, bool) {
	for _, item := range r.menu {
		if item.ID == itemID {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Customer is a registered user. Email is the login key and the password
// is stored as supplied; there is no credential hashing in this demo.
// The reservation and order histories only ever grow.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`

	reservations []*Reservation
	orders       []*Order
}

func NewCustomer(id, name, email, password string) *Customer {
	return &Customer{ID: id, Name: name, Email: email, Password: password}
}

func (c *Customer) AddReservation(res *Reservation) {
	c.reservations = append(c.reservations, res)
}

func (c *Customer) AddOrder(order *Order) {
	c.orders = append(c.orders, order)
}

// Reservations returns the booking history in insertion order.
func (c *Customer) Reservations() []*Reservation {
	out := make([]*Reservation, len(c.reservations))
	copy(out, c.reservations)
	return out
}

// Orders returns the order history in insertion order.
func (c *Customer) Orders() []*Order {
	out := make([]*Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// Reservation binds a customer to a restaurant table at a point in time.
// It is immutable once created.
type Reservation struct {
	ID         string      `json:"id"`
	Customer   *Customer   `json:"-"`
	Restaurant *Restaurant `json:"-"`
	When       time.Time   `json:"when"`
	Guests     int         `json:"guests"`
}

func NewReservation(id string, customer *Customer, restaurant *Restaurant, when time.Time, guests int) *Reservation {
	return &Reservation{
		ID:         id,
		Customer:   customer,
		Restaurant: restaurant,
		When:       when,
		Guests:     guests,
	}
}

// OrderLine is one item/quantity pair inside an order.
type OrderLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// LineTotal is the price of this line alone.
func (l OrderLine) LineTotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Order is a placed food order for one customer/restaurant pair. Lines
// keep first-add order and quantities for the same item accumulate. The
// total is recomputed from the lines on every mutation so it can never
// drift.
type Order struct {
	ID         string      `json:"id"`
	Customer   *Customer   `json:"-"`
	Restaurant *Restaurant `json:"-"`

	lines []OrderLine
	total float64
}

func NewOrder(id string, customer *Customer, restaurant *Restaurant) *Order {
	return &Order{ID: id, Customer: customer, Restaurant: restaurant}
}

func (o *Order) AddItem(item MenuItem, quantity int) {
	for i := range o.lines {
		if o.lines[i].Item.ID == item.ID {
			o.lines[i].Quantity += quantity
			o.recalculate()
			return
		}
	}
	o.lines = append(o.lines, OrderLine{Item: item, Quantity: quantity})
	o.recalculate()
}

func (o *Order) recalculate() {
	o.total = 0
	for _, line := range o.lines {
		o.total += line.LineTotal()
	}
}

// Lines returns a snapshot of the order lines in first-add order.
func (o *Order) Lines() []OrderLine {
	out := make([]OrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) Total() float64 {
	return o.total
}

// CartLine mirrors OrderLine for the pre-checkout cart.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

func (l CartLine) LineTotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Cart accumulates menu items before checkout. There is a single cart per
// active session; placing an order does not clear it, so a cancelled
// payment leaves the cart intact for retry.
type Cart struct {
	quantities map[string]int
	items      map[string]MenuItem
	keys       []string
}

func NewCart() *Cart {
	return &Cart{
		quantities: make(map[string]int),
		items:      make(map[string]MenuItem),
	}
}

// Add accumulates quantity onto any existing entry for the same item.
func (c *Cart) Add(item MenuItem, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if _, ok := c.quantities[item.ID]; !ok {
		c.keys = append(c.keys, item.ID)
		c.items[item.ID] = item
	}
	c.quantities[item.ID] += quantity
	return nil
}

// Lines returns a snapshot of the cart in first-add order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.keys))
	for _, id := range c.keys {
		out = append(out, CartLine{Item: c.items[id], Quantity: c.quantities[id]})
	}
	return out
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, id := range c.keys {
		total += c.items[id].Price * float64(c.quantities[id])
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.keys) == 0
}

// Clear empties the cart. Clearing an already empty cart is a no-op.
func (c *Cart) Clear() {
	c.quantities = make(map[string]int)
	c.items = make(map[string]MenuItem)
	c.keys = nil
}

// OrderPlacedEvent is the message published when an order is placed.
type OrderPlacedEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	CustomerID   string    `json:"customer_id"`
	Total        float64   `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}

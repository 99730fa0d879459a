package domain

import (
	"fmt"
	"strings"
)

// Text renderers consumed by the presentation layer. Callers render these
// verbatim; nothing here reaches into live internal collections.

// Summary returns the one-block restaurant description.
func (r *Restaurant) Summary() string {
	return fmt.Sprintf("Restaurant: %s\nCuisine: %s | Rating: %.1f/5.0\nLocation: %s\nAvg. Cost for Two: ₹%.2f",
		r.Name, r.Cuisine, r.Rating, r.Location, r.AverageCost)
}

// MenuText renders the menu with 1-based indexes in seeding order.
func (r *Restaurant) MenuText() string {
	if len(r.menu) == 0 {
		return "Menu is not available for " + r.Name
	}

	var sb strings.Builder
	sb.WriteString("--- Menu for " + r.Name + " ---\n")
	for i, item := range r.menu {
		sb.WriteString(fmt.Sprintf("%d. %-20s - ₹%.2f\n", i+1, item.Name, item.Price))
	}
	sb.WriteString("------------------------\n")
	return sb.String()
}

// Details renders a reservation confirmation block.
func (res *Reservation) Details() string {
	return fmt.Sprintf("Reservation ID: %s\nRestaurant: %s\nCustomer: %s\nDate & Time: %s\nGuests: %d",
		res.ID, res.Restaurant.Name, res.Customer.Name, res.When.Format("2006-01-02 15:04"), res.Guests)
}

// Receipt renders the order with one line per entry and a grand total.
func (o *Order) Receipt() string {
	var sb strings.Builder
	sb.WriteString("Order ID: " + o.ID + "\n")
	sb.WriteString("Restaurant: " + o.Restaurant.Name + "\n")
	sb.WriteString("Customer: " + o.Customer.Name + "\n")
	sb.WriteString("Items:\n")
	for _, line := range o.lines {
		sb.WriteString(fmt.Sprintf("  - %-20s (Qty: %d) - ₹%.2f\n", line.Item.Name, line.Quantity, line.LineTotal()))
	}
	sb.WriteString(fmt.Sprintf("Total Bill: ₹%.2f\n", o.total))
	return sb.String()
}

// BookingHistoryText renders all reservations in insertion order.
func (c *Customer) BookingHistoryText() string {
	if len(c.reservations) == 0 {
		return "--- No Booking History ---"
	}

	var sb strings.Builder
	sb.WriteString("--- Your Booking History ---\n")
	sb.WriteString("============================\n")
	for _, res := range c.reservations {
		sb.WriteString(res.Details())
		sb.WriteString("\n----------------------------\n")
	}
	return sb.String()
}

// OrderHistoryText renders all placed orders in insertion order.
func (c *Customer) OrderHistoryText() string {
	if len(c.orders) == 0 {
		return "--- No Order History ---"
	}

	var sb strings.Builder
	sb.WriteString("--- Your Order History ---\n")
	sb.WriteString("==========================\n")
	for _, order := range c.orders {
		sb.WriteString(order.Receipt())
		sb.WriteString("--------------------------\n")
	}
	return sb.String()
}

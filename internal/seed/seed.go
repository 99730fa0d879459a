// Package seed loads the demo catalog and customer so the service is
// usable straight after start.
package seed

import (
	"dineout/internal/domain"
	"dineout/internal/service"
)

// Apply registers the demo customer and the sample restaurants.
func Apply(sys *service.DineOut) {
	sys.RegisterCustomer(domain.NewCustomer("C001", "Paras", "parasb736@gmail.com", "paras1234"))

	r1 := domain.NewRestaurant("R01", "Sangrur Zaika", "North Indian", 4.5, "Patiala Gate, Sangrur", 1200)
	addPunjabiMenu(r1)
	sys.AddRestaurant(r1)

	r2 := domain.NewRestaurant("R02", "Royal Haveli", "Punjabi", 4.8, "Sunam Road, Sangrur", 1800)
	addPunjabiMenu(r2)
	sys.AddRestaurant(r2)

	r3 := domain.NewRestaurant("R06", "Pizza Paradise", "Italian, Fast Food", 4.0, "Club Road, Sangrur", 800)
	addFastFoodMenu(r3)
	sys.AddRestaurant(r3)

	r4 := domain.NewRestaurant("R07", "Burger Junction", "Fast Food", 3.8, "Sunami Gate, Sangrur", 500)
	addFastFoodMenu(r4)
	sys.AddRestaurant(r4)

	r5 := domain.NewRestaurant("R09", "Chinese Wok", "Chinese", 3.9, "Qila Market, Sangrur", 600)
	addFastFoodMenu(r5)
	sys.AddRestaurant(r5)

	r6 := domain.NewRestaurant("R11", "Cafe Brew", "Cafe", 4.6, "Club Road, Sangrur", 700)
	addCafeMenu(r6)
	sys.AddRestaurant(r6)

	r7 := domain.NewRestaurant("R13", "Baker's Lounge", "Bakery, Cafe", 4.4, "Nabha Road, Sangrur", 500)
	addCafeMenu(r7)
	sys.AddRestaurant(r7)

	r8 := domain.NewRestaurant("R17", "Giani's Lassi", "Street Food", 4.9, "Sunami Gate, Sangrur", 200)
	addStreetFoodMenu(r8)
	sys.AddRestaurant(r8)

	r9 := domain.NewRestaurant("R19", "Raja Dhaba", "Dhaba, North Indian", 4.0, "Nabha Road, Sangrur", 400)
	addStreetFoodMenu(r9)
	sys.AddRestaurant(r9)

	r10 := domain.NewRestaurant("R20", "South Indian Corner", "South Indian", 4.1, "Dhuri Gate, Sangrur", 500)
	addStreetFoodMenu(r10)
	sys.AddRestaurant(r10)
}

func addPunjabiMenu(r *domain.Restaurant) {
	r.AddMenuItem(domain.MenuItem{ID: "P01", Name: "Butter Chicken", Price: 450})
	r.AddMenuItem(domain.MenuItem{ID: "P02", Name: "Shahi Paneer", Price: 380})
	r.AddMenuItem(domain.MenuItem{ID: "P03", Name: "Dal Makhani", Price: 320})
	r.AddMenuItem(domain.MenuItem{ID: "P05", Name: "Tandoori Chicken", Price: 500})
	r.AddMenuItem(domain.MenuItem{ID: "P13", Name: "Butter Naan", Price: 70})
	r.AddMenuItem(domain.MenuItem{ID: "P16", Name: "Jeera Rice", Price: 180})
	r.AddMenuItem(domain.MenuItem{ID: "P18", Name: "Sweet Lassi", Price: 100})
	r.AddMenuItem(domain.MenuItem{ID: "P19", Name: "Gulab Jamun", Price: 120})
}

func addFastFoodMenu(r *domain.Restaurant) {
	r.AddMenuItem(domain.MenuItem{ID: "F01", Name: "Veggie Burger", Price: 120})
	r.AddMenuItem(domain.MenuItem{ID: "F03", Name: "French Fries", Price: 100})
	r.AddMenuItem(domain.MenuItem{ID: "F04", Name: "Margherita Pizza", Price: 250})
	r.AddMenuItem(domain.MenuItem{ID: "F05", Name: "Farmhouse Pizza", Price: 350})
	r.AddMenuItem(domain.MenuItem{ID: "F07", Name: "Veg Hakka Noodles", Price: 180})
	r.AddMenuItem(domain.MenuItem{ID: "F15", Name: "Steamed Momos", Price: 100})
	r.AddMenuItem(domain.MenuItem{ID: "F18", Name: "Coke", Price: 60})
}

func addCafeMenu(r *domain.Restaurant) {
	r.AddMenuItem(domain.MenuItem{ID: "C01", Name: "Espresso", Price: 100})
	r.AddMenuItem(domain.MenuItem{ID: "C02", Name: "Cappuccino", Price: 140})
	r.AddMenuItem(domain.MenuItem{ID: "C05", Name: "Cold Coffee", Price: 160})
	r.AddMenuItem(domain.MenuItem{ID: "C09", Name: "Veg Club Sandwich", Price: 180})
	r.AddMenuItem(domain.MenuItem{ID: "C14", Name: "Chocolate Brownie", Price: 140})
	r.AddMenuItem(domain.MenuItem{ID: "C19", Name: "Pancakes", Price: 200})
}

func addStreetFoodMenu(r *domain.Restaurant) {
	r.AddMenuItem(domain.MenuItem{ID: "S01", Name: "Chole Bhature", Price: 120})
	r.AddMenuItem(domain.MenuItem{ID: "S04", Name: "Samosa (2 pcs)", Price: 50})
	r.AddMenuItem(domain.MenuItem{ID: "S11", Name: "Masala Dosa", Price: 140})
	r.AddMenuItem(domain.MenuItem{ID: "S12", Name: "Idli Sambhar", Price: 100})
	r.AddMenuItem(domain.MenuItem{ID: "S18", Name: "Plain Lassi", Price: 80})
	r.AddMenuItem(domain.MenuItem{ID: "S20", Name: "Kulfi Falooda", Price: 130})
}

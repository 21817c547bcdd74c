package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Static reference data. The catalogs are immutable for the process
// lifetime; declaration order below is the display order.

func SeedOutlets() []Outlet {
	return []Outlet{
		{ID: "ot-1", Name: "Downtown Central", Location: "123 Main St"},
		{ID: "ot-2", Name: "Uptown Plaza", Location: "456 North Ave"},
		{ID: "ot-3", Name: "East Side Hub", Location: "789 East Blvd"},
	}
}

func SeedProducts() []Product {
	mrp := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return []Product{
		{ID: "p1", Brand: "Parle Agro", Name: "Frooti Bottle 20", MRP: mrp(20)},
		{ID: "p2", Brand: "Parle Agro", Name: "Appy fizz", MRP: mrp(20)},
		{ID: "p3", Brand: "Parle Agro", Name: "B Fizz", MRP: mrp(20)},
		{ID: "p4", Brand: "Parle Agro", Name: "Parle Smoodh Toffee Caramel", MRP: mrp(20)},
		{ID: "p5", Brand: "Parle Agro", Name: "Parle Agro Smoodh Chocolate Mil", MRP: mrp(20)},
		{ID: "p6", Brand: "Parle Agro", Name: "Smoodh choco hasel nut", MRP: mrp(20)},
		{ID: "p7", Brand: "Parle Agro", Name: "Smoodh Lassi", MRP: mrp(20)},

		{ID: "p8", Brand: "PepsiCo- Beverages", Name: "Pepsi Pet bottle", MRP: mrp(20)},
		{ID: "p9", Brand: "PepsiCo- Beverages", Name: "Tropicana", MRP: mrp(20)},
		{ID: "p10", Brand: "PepsiCo- Beverages", Name: "Mountain Dew Can", MRP: mrp(60)},
		{ID: "p11", Brand: "PepsiCo- Beverages", Name: "7uP", MRP: mrp(20)},

		{ID: "p12", Brand: "Cadbury", Name: "Perk (Rs 20)", MRP: mrp(20)},
		{ID: "p13", Brand: "Cadbury", Name: "Cadbury Fuse", MRP: mrp(50)},
		{ID: "p14", Brand: "Cadbury", Name: "Crispello Chocolate", MRP: mrp(45)},
		{ID: "p15", Brand: "Cadbury", Name: "Five star oreo", MRP: mrp(50)},
		{ID: "p16", Brand: "Cadbury", Name: "Oreo Biscuit", MRP: mrp(30)},

		{ID: "p17", Brand: "Britannia", Name: "Good Day Cashew", MRP: mrp(25)},
		{ID: "p18", Brand: "Britannia", Name: "Good Day Choco", MRP: mrp(30)},
		{ID: "p19", Brand: "Britannia", Name: "Cake Gobbles 15", MRP: mrp(15)},
		{ID: "p20", Brand: "Britannia", Name: "Swiss Roll", MRP: mrp(10)},
	}
}

func SeedUsers() []User {
	return []User{
		{ID: "u-1", Name: "Admin User", Email: "admin@system.com", Role: RoleAdmin},
		{ID: "u-2", Name: "John Refiller", Email: "john@system.com", Role: RoleRefiller, OutletID: "ot-1"},
	}
}

// SeedStockEntries returns the initial entry history. CreatedAt is stamped
// at call time; it is informational only.
func SeedStockEntries() []StockEntry {
	now := time.Now().UTC()
	return []StockEntry{
		{
			ID:        "s-init-1",
			OutletID:  "ot-1",
			ProductID: "p1",
			Quantity:  120,
			Amount:    decimal.RequireFromString("1920.58"),
			EntryDate: "2025-06-30",
			EnteredBy: "u-2",
			CreatedAt: now,
		},
		{
			ID:        "s-init-2",
			OutletID:  "ot-1",
			ProductID: "p2",
			Quantity:  120,
			Amount:    decimal.RequireFromString("1920.24"),
			EntryDate: "2025-06-30",
			EnteredBy: "u-2",
			CreatedAt: now,
		},
		{
			ID:        "s-init-3",
			OutletID:  "ot-1",
			ProductID: "p8",
			Quantity:  120,
			Amount:    decimal.RequireFromString("2040.16"),
			EntryDate: "2025-06-26",
			EnteredBy: "u-2",
			CreatedAt: now,
		},
	}
}

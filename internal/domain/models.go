package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role distinguishes the two account types. Admins see consolidated
// analytics across every outlet; refillers record stock intake for the
// single outlet they are assigned to.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleRefiller Role = "REFILLER"
)

// Outlet is a physical retail location that receives stock.
type Outlet struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Product is a catalog item. MRP is the fixed per-unit reference selling
// price used to compute theoretical revenue. Brand is the grouping key for
// both the entry form and the pivot report; catalog declaration order is
// the display order and is preserved everywhere.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Brand string          `json:"brand"`
	MRP   decimal.Decimal `json:"mrp"`
}

// User is an account in the static directory. OutletID is set only for
// refillers; admins are not bound to an outlet.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	OutletID string `json:"outlet_id,omitempty"`
}

// StockEntry is the atomic fact: a quantity of one product received at one
// outlet on one date, and the total purchase cost paid for that quantity
// (not a per-unit price). Entries are append-only and never mutated.
// CreatedAt is informational only.
type StockEntry struct {
	ID        string          `json:"id"`
	OutletID  string          `json:"outlet_id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	EntryDate string          `json:"entry_date"`
	EnteredBy string          `json:"entered_by"`
	CreatedAt time.Time       `json:"created_at"`
}

// EnrichedStockEntry is a StockEntry joined with its catalog references and
// the derived financial metrics. It is a computed view, never stored.
type EnrichedStockEntry struct {
	StockEntry
	ProductName     string          `json:"product_name"`
	Brand           string          `json:"brand"`
	OutletName      string          `json:"outlet_name"`
	MRP             decimal.Decimal `json:"mrp"`
	Revenue         decimal.Decimal `json:"revenue"`
	Profit          decimal.Decimal `json:"profit"`
	Margin          decimal.Decimal `json:"margin"`
	MarginPerBottle decimal.Decimal `json:"margin_per_bottle"`
}

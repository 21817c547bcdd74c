package analytics

import (
	"github.com/incial/stockflow/internal/domain"
	"github.com/shopspring/decimal"
)

// Catalog is the reference-data surface the engine needs. The memory
// catalog repository satisfies it.
type Catalog interface {
	Products() []domain.Product
	Outlets() []domain.Outlet
	ProductByID(id string) (domain.Product, bool)
	OutletByID(id string) (domain.Outlet, bool)
}

var hundred = decimal.NewFromInt(100)

// Enrich joins a stock entry with its catalog references and derives the
// financial metrics:
//
//	revenue         = mrp × quantity
//	profit          = revenue − amount (negative on a loss)
//	margin          = profit / revenue × 100, or 0 when revenue is 0
//	marginPerBottle = profit / quantity,     or 0 when quantity is 0
//
// Enrich is pure: same inputs, same output, no side effects. A missing
// product or outlet reference yields a *domain.ReferenceNotFoundError.
func Enrich(entry domain.StockEntry, catalog Catalog) (domain.EnrichedStockEntry, error) {
	product, ok := catalog.ProductByID(entry.ProductID)
	if !ok {
		return domain.EnrichedStockEntry{}, &domain.ReferenceNotFoundError{Kind: "product", ID: entry.ProductID}
	}
	outlet, ok := catalog.OutletByID(entry.OutletID)
	if !ok {
		return domain.EnrichedStockEntry{}, &domain.ReferenceNotFoundError{Kind: "outlet", ID: entry.OutletID}
	}

	quantity := decimal.NewFromInt(entry.Quantity)
	revenue := product.MRP.Mul(quantity)
	profit := revenue.Sub(entry.Amount)

	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Div(revenue).Mul(hundred)
	}

	marginPerBottle := decimal.Zero
	if entry.Quantity > 0 {
		marginPerBottle = profit.Div(quantity)
	}

	return domain.EnrichedStockEntry{
		StockEntry:      entry,
		ProductName:     product.Name,
		Brand:           product.Brand,
		OutletName:      outlet.Name,
		MRP:             product.MRP,
		Revenue:         revenue,
		Profit:          profit,
		Margin:          margin,
		MarginPerBottle: marginPerBottle,
	}, nil
}

package domain

import "github.com/shopspring/decimal"

// ReportFilter narrows report computations. An empty field means no
// filtering on that dimension. Date scopes the pivot to a single day and
// suppresses brand sections that have no entry on it.
type ReportFilter struct {
	OutletID string `json:"outlet_id,omitempty"`
	Date     string `json:"date,omitempty"`
}

// BrandTotal is the per-brand, per-date roll-up shown under a brand section.
// It sums the pivot matrix cells of that brand's products, so on duplicate
// (date, product) keys it follows the matrix overwrite, not the full record
// list.
type BrandTotal struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}

// BrandSection is one brand block of the pivot report: the brand's products
// in catalog order plus a roll-up per date.
type BrandSection struct {
	Brand    string                `json:"brand"`
	Products []Product             `json:"products"`
	Totals   map[string]BrandTotal `json:"totals"`
}

// PivotReport is the date × product matrix consumed by the report grid.
// Dates are sorted descending (ISO date strings, so lexicographic order is
// chronological); LatestDate is Dates[0] when any entries exist. Matrix is
// keyed by entry date, then product id; when several entries share a
// (date, product) key the last one in input order wins.
type PivotReport struct {
	Dates      []string                                 `json:"dates"`
	LatestDate string                                   `json:"latest_date,omitempty"`
	Matrix     map[string]map[string]EnrichedStockEntry `json:"matrix"`
	Brands     []BrandSection                           `json:"brands"`
}

// Summary carries the global KPI roll-ups over the filtered entry set.
// Unlike the pivot matrix, these sum every record, duplicates included.
type Summary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	AvgMargin    decimal.Decimal `json:"avg_margin"`
	TotalUnits   int64           `json:"total_units"`
}

// TrendPoint is one day of the revenue/profit trend series, dates ascending.
type TrendPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// OutletProfit is the profit contribution of one outlet, in catalog order.
type OutletProfit struct {
	OutletID   string          `json:"outlet_id"`
	OutletName string          `json:"outlet_name"`
	Profit     decimal.Decimal `json:"profit"`
}

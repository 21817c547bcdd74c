package analytics

import (
	"sort"

	"github.com/incial/stockflow/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// filterEntries applies the report filter before any grouping. Entries for
// other outlets or dates are excluded entirely.
func filterEntries(entries []domain.StockEntry, filter domain.ReportFilter) []domain.StockEntry {
	if filter.OutletID == "" && filter.Date == "" {
		return entries
	}
	kept := make([]domain.StockEntry, 0, len(entries))
	for _, e := range entries {
		if filter.OutletID != "" && e.OutletID != filter.OutletID {
			continue
		}
		if filter.Date != "" && e.EntryDate != filter.Date {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// enrichAll enriches the filtered entries in order. Records with broken
// catalog references are skipped with a diagnostic instead of failing the
// whole report.
func enrichAll(entries []domain.StockEntry, filter domain.ReportFilter, catalog Catalog) []domain.EnrichedStockEntry {
	filtered := filterEntries(entries, filter)
	enriched := make([]domain.EnrichedStockEntry, 0, len(filtered))
	for _, e := range filtered {
		m, err := Enrich(e, catalog)
		if err != nil {
			log.Warn().Err(err).Str("entry_id", e.ID).Msg("skipping entry with broken reference")
			continue
		}
		enriched = append(enriched, m)
	}
	return enriched
}

// brandGroups partitions the product catalog into brand buckets, first-seen
// order. Grouping comes from the catalog, not from the entries, so every
// brand and product gets a row even with no entries.
func brandGroups(catalog Catalog) []domain.BrandSection {
	var sections []domain.BrandSection
	index := make(map[string]int)
	for _, p := range catalog.Products() {
		i, ok := index[p.Brand]
		if !ok {
			i = len(sections)
			index[p.Brand] = i
			sections = append(sections, domain.BrandSection{Brand: p.Brand})
		}
		sections[i].Products = append(sections[i].Products, p)
	}
	return sections
}

// BuildPivot reshapes the entry list into the date × product matrix backing
// the report grid. When several entries share a (date, product) key the
// last one in input order overwrites the earlier ones in the matrix; the
// KPI roll-ups in Summarize still sum every record. That split matches the
// historical report exactly and is deliberate.
func BuildPivot(entries []domain.StockEntry, filter domain.ReportFilter, catalog Catalog) *domain.PivotReport {
	enriched := enrichAll(entries, filter, catalog)

	matrix := make(map[string]map[string]domain.EnrichedStockEntry)
	dateSet := make(map[string]struct{})
	for _, m := range enriched {
		dateSet[m.EntryDate] = struct{}{}
		row, ok := matrix[m.EntryDate]
		if !ok {
			row = make(map[string]domain.EnrichedStockEntry)
			matrix[m.EntryDate] = row
		}
		row[m.ProductID] = m
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	// ISO dates, so lexicographic descending is newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	brands := brandGroups(catalog)
	for i := range brands {
		brands[i].Totals = make(map[string]domain.BrandTotal, len(dates))
		for _, date := range dates {
			total := domain.BrandTotal{TotalAmount: decimal.Zero, TotalProfit: decimal.Zero}
			for _, p := range brands[i].Products {
				cell, ok := matrix[date][p.ID]
				if !ok {
					continue
				}
				total.TotalAmount = total.TotalAmount.Add(cell.Amount)
				total.TotalProfit = total.TotalProfit.Add(cell.Profit)
			}
			brands[i].Totals[date] = total
		}
	}

	// A date-scoped report drops brand sections with no entry on that day.
	if filter.Date != "" {
		kept := brands[:0]
		for _, b := range brands {
			hasEntry := false
			for _, p := range b.Products {
				if _, ok := matrix[filter.Date][p.ID]; ok {
					hasEntry = true
					break
				}
			}
			if hasEntry {
				kept = append(kept, b)
			}
		}
		brands = kept
	}

	report := &domain.PivotReport{
		Dates:  dates,
		Matrix: matrix,
		Brands: brands,
	}
	if len(dates) > 0 {
		report.LatestDate = dates[0]
	}
	return report
}

// Summarize computes the global KPI roll-ups over the filtered set. Every
// record contributes, including duplicates collapsed by the pivot matrix.
// AvgMargin is totalProfit/totalRevenue×100, or 0 when there is no revenue.
func Summarize(entries []domain.StockEntry, filter domain.ReportFilter, catalog Catalog) domain.Summary {
	enriched := enrichAll(entries, filter, catalog)

	summary := domain.Summary{
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
		AvgMargin:    decimal.Zero,
	}
	for _, m := range enriched {
		summary.TotalRevenue = summary.TotalRevenue.Add(m.Revenue)
		summary.TotalProfit = summary.TotalProfit.Add(m.Profit)
		summary.TotalUnits += m.Quantity
	}
	if summary.TotalRevenue.IsPositive() {
		summary.AvgMargin = summary.TotalProfit.Div(summary.TotalRevenue).Mul(hundred)
	}
	return summary
}

// Trend returns the per-date revenue/profit sums, dates ascending, for the
// trend chart.
func Trend(entries []domain.StockEntry, filter domain.ReportFilter, catalog Catalog) []domain.TrendPoint {
	enriched := enrichAll(entries, filter, catalog)

	byDate := make(map[string]*domain.TrendPoint)
	for _, m := range enriched {
		point, ok := byDate[m.EntryDate]
		if !ok {
			point = &domain.TrendPoint{Date: m.EntryDate, Revenue: decimal.Zero, Profit: decimal.Zero}
			byDate[m.EntryDate] = point
		}
		point.Revenue = point.Revenue.Add(m.Revenue)
		point.Profit = point.Profit.Add(m.Profit)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	points := make([]domain.TrendPoint, 0, len(dates))
	for _, d := range dates {
		points = append(points, *byDate[d])
	}
	return points
}

// ProfitByOutlet sums profit per outlet for the outlet chart. Outlets with
// no entries are omitted; the rest follow catalog order.
func ProfitByOutlet(entries []domain.StockEntry, filter domain.ReportFilter, catalog Catalog) []domain.OutletProfit {
	enriched := enrichAll(entries, filter, catalog)

	byOutlet := make(map[string]decimal.Decimal)
	for _, m := range enriched {
		byOutlet[m.OutletID] = byOutlet[m.OutletID].Add(m.Profit)
	}

	results := make([]domain.OutletProfit, 0, len(byOutlet))
	for _, o := range catalog.Outlets() {
		profit, ok := byOutlet[o.ID]
		if !ok {
			continue
		}
		results = append(results, domain.OutletProfit{OutletID: o.ID, OutletName: o.Name, Profit: profit})
	}
	return results
}

// AvailableDates returns the distinct entry dates, newest first, ignoring
// the filter's date bound.
func AvailableDates(entries []domain.StockEntry) []string {
	dateSet := make(map[string]struct{})
	for _, e := range entries {
		dateSet[e.EntryDate] = struct{}{}
	}
	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

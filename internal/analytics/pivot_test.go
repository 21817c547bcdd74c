package analytics_test

import (
	"reflect"
	"testing"

	"github.com/incial/stockflow/internal/analytics"
	"github.com/incial/stockflow/internal/domain"
	"github.com/shopspring/decimal"
)

func TestBuildPivot_DateOrdering(t *testing.T) {
	catalog := testCatalog()
	entries := []domain.StockEntry{
		entry("s1", "ot-1", "p1", 10, "100", "2025-06-26"),
		entry("s2", "ot-1", "p1", 10, "100", "2025-06-30"),
		entry("s3", "ot-1", "p1", 10, "100", "2025-06-28"),
	}

	report := analytics.BuildPivot(entries, domain.ReportFilter{}, catalog)

	want := []string{"2025-06-30", "2025-06-28", "2025-06-26"}
	if !reflect.DeepEqual(report.Dates, want) {
		t.Errorf("dates = %v, want %v", report.Dates, want)
	}
	if report.LatestDate != "2025-06-30" {
		t.Errorf("latest date = %s, want 2025-06-30", report.LatestDate)
	}
}

func TestBuildPivot_DuplicateKeyOverwrites(t *testing.T) {
	catalog := testCatalog()
	entries := []domain.StockEntry{
		entry("s1", "ot-1", "p1", 10, "100", "2025-06-30"),
		entry("s2", "ot-1", "p1", 77, "700", "2025-06-30"),
	}

	report := analytics.BuildPivot(entries, domain.ReportFilter{}, catalog)

	cell, ok := report.Matrix["2025-06-30"]["p1"]
	if !ok {
		t.Fatal("expected a matrix cell for (2025-06-30, p1)")
	}
	if cell.Quantity != 77 || cell.ID != "s2" {
		t.Errorf("matrix kept entry %s qty=%d, want the later entry s2 qty=77", cell.ID, cell.Quantity)
	}

	// The KPI roll-up still sums every record.
	summary := analytics.Summarize(entries, domain.ReportFilter{}, catalog)
	wantRevenue := decimal.NewFromInt(20 * (10 + 77))
	if !summary.TotalRevenue.Equal(wantRevenue) {
		t.Errorf("summary revenue = %s, want %s", summary.TotalRevenue, wantRevenue)
	}
	if summary.TotalUnits != 87 {
		t.Errorf("summary units = %d, want 87", summary.TotalUnits)
	}
}

func TestBuildPivot_BrandTotals(t *testing.T) {
	catalog := testCatalog()
	entries := []domain.StockEntry{
		entry("s1", "ot-1", "p1", 10, "150", "2025-06-30"), // profit 50
		entry("s2", "ot-1", "p2", 5, "80", "2025-06-30"),   // profit 20
		entry("s3", "ot-1", "p10", 2, "100", "2025-06-30"), // profit 20
	}

	report := analytics.BuildPivot(entries, domain.ReportFilter{}, catalog)

	if len(report.Brands) != 3 {
		t.Fatalf("brand sections = %d, want every catalog brand (3)", len(report.Brands))
	}
	wantOrder := []string{"Parle Agro", "PepsiCo- Beverages", "Britannia"}
	for i, b := range report.Brands {
		if b.Brand != wantOrder[i] {
			t.Errorf("brand[%d] = %s, want %s (catalog order)", i, b.Brand, wantOrder[i])
		}
	}

	parle := report.Brands[0].Totals["2025-06-30"]
	if !parle.TotalAmount.Equal(decimal.NewFromInt(230)) {
		t.Errorf("parle amount = %s, want 230", parle.TotalAmount)
	}
	if !parle.TotalProfit.Equal(decimal.NewFromInt(70)) {
		t.Errorf("parle profit = %s, want 70", parle.TotalProfit)
	}

	// A brand with no entry on the date rolls up to zero, not missing.
	britannia, ok := report.Brands[2].Totals["2025-06-30"]
	if !ok {
		t.Fatal("expected a totals record for Britannia on 2025-06-30")
	}
	if !britannia.TotalAmount.IsZero() || !britannia.TotalProfit.IsZero() {
		t.Errorf("britannia totals = %s/%s, want 0/0", britannia.TotalAmount, britannia.TotalProfit)
	}
}

func TestBuildPivot_BrandTotalsFollowMatrixOverwrite(t *testing.T) {
	catalog := testCatalog()
	entries := []domain.StockEntry{
		entry("s1", "ot-1", "p1", 10, "100", "2025-06-30"),
		entry("s2", "ot-1", "p1", 20, "300", "2025-06-30"),
	}

	report := analytics.BuildPivot(entries, domain.ReportFilter{}, catalog)

	// Totals sum the displayed cells, so only the surviving entry counts.
	total := report.Brands[0].Totals["2025-06-30"]
	if !total.TotalAmount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("brand amount = %s, want 300 (last entry only)", total.TotalAmount)
	}
}

func TestBuildPivot_OutletFilter(t *testing.T) {
	catalog := testCatalog()
	entries := []domain.StockEntry{
		entry("s1", "ot-1", "p1", 10, "100", "2025-06-30"),
		entry("s2", "ot-2", "p2", 5, "50", "2025-06-30"),
	}

	report := analytics.BuildPivot(entries, domain.ReportFilter{OutletID: "ot-1"}, catalog)

	if _, ok := report.Matrix["2025-06-30"]["p2"]; ok {
		t.Error("entries for other outlets must be excluded before grouping")
	}
	if _, ok := report.Matrix["2025-06-30"]["p1"]; !ok {
		t.Error("entries for the filtered outlet must be kept")
	}

	summary := analytics.Summarize(entries, domain.ReportFilter{OutletID: "ot-1"}, catalog)
	if summary.TotalUnits != 10 {
		t.Errorf("filtered units = %d, want 10", summary.TotalUnits)
	}
}

func TestBuildPivot_DateScopedSuppressesEmptyBrands(t *testing.T) {
	catalog := testCatalog()
	entries := []domain.StockEntry{
		entry("s1", "ot-1", "p1", 10, "100", "2025-06-30"),
		entry("s2", "ot-1", "p10", 5, "200", "2025-06-28"),
	}

	report := analytics.BuildPivot(entries, domain.ReportFilter{Date: "2025-06-30"}, catalog)

	if len(report.Brands) != 1 || report.Brands[0].Brand != "Parle Agro" {
		names := make([]string, 0, len(report.Brands))
		for _, b := range report.Brands {
			names = append(names, b.Brand)
		}
		t.Errorf("date-scoped brands = %v, want [Parle Agro] only", names)
	}
	if len(report.Dates) != 1 || report.Dates[0] != "2025-06-30" {
		t.Errorf("date-scoped dates = %v, want [2025-06-30]", report.Dates)
	}
}

func TestBuildPivot_SkipsBrokenReferences(t *testing.T) {
	catalog := testCatalog()
	entries := []domain.StockEntry{
		entry("s1", "ot-1", "p1", 10, "100", "2025-06-30"),
		entry("s2", "ot-1", "p99", 5, "50", "2025-06-30"),
	}

	report := analytics.BuildPivot(entries, domain.ReportFilter{}, catalog)
	if _, ok := report.Matrix["2025-06-30"]["p99"]; ok {
		t.Error("entry with a missing product must be skipped, not crash")
	}

	summary := analytics.Summarize(entries, domain.ReportFilter{}, catalog)
	if summary.TotalUnits != 10 {
		t.Errorf("summary units = %d, want 10 (broken entry skipped)", summary.TotalUnits)
	}
}

func TestSummarize_Empty(t *testing.T) {
	catalog := testCatalog()
	summary := analytics.Summarize(nil, domain.ReportFilter{}, catalog)

	if !summary.TotalRevenue.IsZero() || !summary.TotalProfit.IsZero() || !summary.AvgMargin.IsZero() || summary.TotalUnits != 0 {
		t.Errorf("empty summary = %+v, want all zeros", summary)
	}
}

func TestSummarize_AvgMargin(t *testing.T) {
	catalog := testCatalog()
	entries := []domain.StockEntry{
		entry("s1", "ot-1", "p1", 10, "150", "2025-06-30"), // revenue 200, profit 50
		entry("s2", "ot-2", "p2", 10, "190", "2025-06-29"), // revenue 200, profit 10
	}

	summary := analytics.Summarize(entries, domain.ReportFilter{}, catalog)

	// 60 profit over 400 revenue = 15%.
	if !summary.AvgMargin.Equal(decimal.NewFromInt(15)) {
		t.Errorf("avg margin = %s, want 15", summary.AvgMargin)
	}
}

func TestTrend_AscendingSums(t *testing.T) {
	catalog := testCatalog()
	entries := []domain.StockEntry{
		entry("s1", "ot-1", "p1", 10, "150", "2025-06-30"),
		entry("s2", "ot-1", "p2", 5, "80", "2025-06-28"),
		entry("s3", "ot-2", "p1", 10, "180", "2025-06-30"),
	}

	points := analytics.Trend(entries, domain.ReportFilter{}, catalog)

	if len(points) != 2 {
		t.Fatalf("trend points = %d, want 2", len(points))
	}
	if points[0].Date != "2025-06-28" || points[1].Date != "2025-06-30" {
		t.Errorf("trend order = [%s %s], want ascending dates", points[0].Date, points[1].Date)
	}
	if !points[1].Revenue.Equal(decimal.NewFromInt(400)) {
		t.Errorf("2025-06-30 revenue = %s, want 400", points[1].Revenue)
	}
	if !points[1].Profit.Equal(decimal.NewFromInt(70)) {
		t.Errorf("2025-06-30 profit = %s, want 70", points[1].Profit)
	}
}

func TestProfitByOutlet(t *testing.T) {
	catalog := testCatalog()
	entries := []domain.StockEntry{
		entry("s1", "ot-2", "p1", 10, "150", "2025-06-30"), // profit 50
		entry("s2", "ot-1", "p2", 5, "80", "2025-06-30"),   // profit 20
		entry("s3", "ot-1", "p1", 10, "180", "2025-06-29"), // profit 20
	}

	results := analytics.ProfitByOutlet(entries, domain.ReportFilter{}, catalog)

	if len(results) != 2 {
		t.Fatalf("outlet results = %d, want 2", len(results))
	}
	// Catalog order, not entry order.
	if results[0].OutletID != "ot-1" || results[1].OutletID != "ot-2" {
		t.Errorf("outlet order = [%s %s], want catalog order [ot-1 ot-2]", results[0].OutletID, results[1].OutletID)
	}
	if !results[0].Profit.Equal(decimal.NewFromInt(40)) {
		t.Errorf("ot-1 profit = %s, want 40", results[0].Profit)
	}
	if !results[1].Profit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("ot-2 profit = %s, want 50", results[1].Profit)
	}
}

func TestAvailableDates(t *testing.T) {
	entries := []domain.StockEntry{
		entry("s1", "ot-1", "p1", 1, "1", "2025-06-26"),
		entry("s2", "ot-1", "p1", 1, "1", "2025-06-30"),
		entry("s3", "ot-1", "p1", 1, "1", "2025-06-28"),
		entry("s4", "ot-1", "p2", 1, "1", "2025-06-30"),
	}

	got := analytics.AvailableDates(entries)
	want := []string{"2025-06-30", "2025-06-28", "2025-06-26"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dates = %v, want %v", got, want)
	}
}

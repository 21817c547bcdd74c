package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/repository/memory"
	"github.com/incial/stockflow/internal/service"
	"github.com/shopspring/decimal"
)

// recordingCache is an in-process ReportCache used to observe revision
// keying without a redis instance.
type recordingCache struct {
	pivots    map[string]*domain.PivotReport
	summaries map[string]domain.Summary
	pivotHits int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{
		pivots:    make(map[string]*domain.PivotReport),
		summaries: make(map[string]domain.Summary),
	}
}

func cacheKey(revision uint64, filter domain.ReportFilter) string {
	return fmt.Sprintf("%d|%s|%s", revision, filter.OutletID, filter.Date)
}

func (c *recordingCache) GetPivot(ctx context.Context, revision uint64, filter domain.ReportFilter) (*domain.PivotReport, bool, error) {
	report, ok := c.pivots[cacheKey(revision, filter)]
	if ok {
		c.pivotHits++
	}
	return report, ok, nil
}

func (c *recordingCache) SetPivot(ctx context.Context, revision uint64, filter domain.ReportFilter, report *domain.PivotReport) error {
	c.pivots[cacheKey(revision, filter)] = report
	return nil
}

func (c *recordingCache) GetSummary(ctx context.Context, revision uint64, filter domain.ReportFilter) (*domain.Summary, bool, error) {
	summary, ok := c.summaries[cacheKey(revision, filter)]
	if !ok {
		return nil, false, nil
	}
	return &summary, true, nil
}

func (c *recordingCache) SetSummary(ctx context.Context, revision uint64, filter domain.ReportFilter, summary domain.Summary) error {
	c.summaries[cacheKey(revision, filter)] = summary
	return nil
}

func (c *recordingCache) InvalidateAll(ctx context.Context) error {
	c.pivots = make(map[string]*domain.PivotReport)
	c.summaries = make(map[string]domain.Summary)
	return nil
}

func TestReportService_SeedNumbers(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEntryRepository(domain.SeedStockEntries())
	catalog := memory.NewSeedCatalogRepository()
	reports := service.NewReportService(repo, catalog, nil)

	summary, err := reports.Summary(ctx, domain.ReportFilter{})
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}

	// Seed: 3 entries of 120 units, MRP 20 each = 7200 revenue;
	// costs 1920.58 + 1920.24 + 2040.16 = 5880.98.
	if !summary.TotalRevenue.Equal(decimal.NewFromInt(7200)) {
		t.Errorf("seed revenue = %s, want 7200", summary.TotalRevenue)
	}
	if !summary.TotalProfit.Equal(decimal.RequireFromString("1319.02")) {
		t.Errorf("seed profit = %s, want 1319.02", summary.TotalProfit)
	}
	if summary.TotalUnits != 360 {
		t.Errorf("seed units = %d, want 360", summary.TotalUnits)
	}

	pivot, err := reports.Pivot(ctx, domain.ReportFilter{})
	if err != nil {
		t.Fatalf("Pivot returned error: %v", err)
	}
	if len(pivot.Dates) != 2 || pivot.Dates[0] != "2025-06-30" || pivot.Dates[1] != "2025-06-26" {
		t.Errorf("seed dates = %v, want [2025-06-30 2025-06-26]", pivot.Dates)
	}
}

func TestReportService_CacheKeyedOnRevision(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEntryRepository(domain.SeedStockEntries())
	catalog := memory.NewSeedCatalogRepository()
	rc := newRecordingCache()
	reports := service.NewReportService(repo, catalog, rc)
	entries := service.NewEntryService(repo, catalog, rc)

	if _, err := reports.Pivot(ctx, domain.ReportFilter{}); err != nil {
		t.Fatalf("Pivot returned error: %v", err)
	}
	if _, err := reports.Pivot(ctx, domain.ReportFilter{}); err != nil {
		t.Fatalf("Pivot returned error: %v", err)
	}
	if rc.pivotHits != 1 {
		t.Errorf("cache hits = %d, want 1 (second call served from cache)", rc.pivotHits)
	}

	// A different filter misses.
	if _, err := reports.Pivot(ctx, domain.ReportFilter{OutletID: "ot-1"}); err != nil {
		t.Fatalf("Pivot returned error: %v", err)
	}
	if rc.pivotHits != 1 {
		t.Errorf("cache hits = %d, want 1 (different filter cannot share an entry)", rc.pivotHits)
	}

	// Appending bumps the revision, so the fresh history is recomputed
	// even though the old cache entries were invalidated anyway.
	if _, err := entries.SubmitBatch(ctx, refiller(), "2025-07-01", map[string]service.Draft{
		"p1": {Qty: "10", Amt: "100"},
	}); err != nil {
		t.Fatalf("SubmitBatch returned error: %v", err)
	}

	pivot, err := reports.Pivot(ctx, domain.ReportFilter{})
	if err != nil {
		t.Fatalf("Pivot returned error: %v", err)
	}
	if _, ok := pivot.Matrix["2025-07-01"]["p1"]; !ok {
		t.Error("pivot after submission must include the new entry")
	}
}

func TestReportService_EnrichedEntriesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEntryRepository(domain.SeedStockEntries())
	catalog := memory.NewSeedCatalogRepository()
	reports := service.NewReportService(repo, catalog, nil)
	entries := service.NewEntryService(repo, catalog, nil)

	created, err := entries.SubmitBatch(ctx, refiller(), "2025-07-03", map[string]service.Draft{
		"p4": {Qty: "6", Amt: "66.60"},
	})
	if err != nil {
		t.Fatalf("SubmitBatch returned error: %v", err)
	}

	enriched, err := reports.EnrichedEntries(ctx)
	if err != nil {
		t.Fatalf("EnrichedEntries returned error: %v", err)
	}
	if len(enriched) != 4 {
		t.Fatalf("enriched entries = %d, want 4", len(enriched))
	}
	if enriched[0].ID != created[0].ID {
		t.Errorf("first enriched entry = %s, want the newest %s", enriched[0].ID, created[0].ID)
	}
	if enriched[0].ProductName != "Parle Smoodh Toffee Caramel" {
		t.Errorf("enriched product name = %s, want catalog name", enriched[0].ProductName)
	}
}

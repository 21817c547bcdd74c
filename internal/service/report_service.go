package service

import (
	"context"
	"fmt"

	"github.com/incial/stockflow/internal/analytics"
	"github.com/incial/stockflow/internal/cache"
	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/repository"
	"github.com/rs/zerolog/log"
)

// ReportService computes the report views over the entry store. Pivot and
// summary results are memoized in the report cache, keyed on the store
// revision and the filter, so the cache can never serve numbers computed
// from an older history.
type ReportService struct {
	entries repository.EntryRepository
	catalog repository.CatalogRepository
	cache   cache.ReportCache
}

func NewReportService(entries repository.EntryRepository, catalog repository.CatalogRepository, cacheImpl cache.ReportCache) *ReportService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopReportCache()
	}
	return &ReportService{entries: entries, catalog: catalog, cache: cacheImpl}
}

func (s *ReportService) snapshot(ctx context.Context) ([]domain.StockEntry, uint64, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}
	revision, err := s.entries.Revision(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("read store revision: %w", err)
	}
	return entries, revision, nil
}

// Pivot returns the date × product matrix report for the filter.
func (s *ReportService) Pivot(ctx context.Context, filter domain.ReportFilter) (*domain.PivotReport, error) {
	entries, revision, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if report, ok, err := s.cache.GetPivot(ctx, revision, filter); err == nil && ok {
		return report, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("report: pivot cache get failed")
	}

	report := analytics.BuildPivot(entries, filter, s.catalog)

	if err := s.cache.SetPivot(ctx, revision, filter, report); err != nil {
		log.Warn().Err(err).Msg("report: pivot cache set failed")
	}
	return report, nil
}

// Summary returns the global KPI roll-ups for the filter.
func (s *ReportService) Summary(ctx context.Context, filter domain.ReportFilter) (domain.Summary, error) {
	entries, revision, err := s.snapshot(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	if summary, ok, err := s.cache.GetSummary(ctx, revision, filter); err == nil && ok {
		return *summary, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("report: summary cache get failed")
	}

	summary := analytics.Summarize(entries, filter, s.catalog)

	if err := s.cache.SetSummary(ctx, revision, filter, summary); err != nil {
		log.Warn().Err(err).Msg("report: summary cache set failed")
	}
	return summary, nil
}

// Trend returns the per-date revenue/profit series, dates ascending.
func (s *ReportService) Trend(ctx context.Context, filter domain.ReportFilter) ([]domain.TrendPoint, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return analytics.Trend(entries, filter, s.catalog), nil
}

// ProfitByOutlet returns the per-outlet profit contributions.
func (s *ReportService) ProfitByOutlet(ctx context.Context, filter domain.ReportFilter) ([]domain.OutletProfit, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return analytics.ProfitByOutlet(entries, filter, s.catalog), nil
}

// AvailableDates returns the distinct entry dates, newest first.
func (s *ReportService) AvailableDates(ctx context.Context) ([]string, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return analytics.AvailableDates(entries), nil
}

// EnrichedEntries returns the full history, newest first, with derived
// metrics. Entries with broken references are skipped with a diagnostic.
func (s *ReportService) EnrichedEntries(ctx context.Context) ([]domain.EnrichedStockEntry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	enriched := make([]domain.EnrichedStockEntry, 0, len(entries))
	for _, e := range entries {
		m, err := analytics.Enrich(e, s.catalog)
		if err != nil {
			log.Warn().Err(err).Str("entry_id", e.ID).Msg("skipping entry with broken reference")
			continue
		}
		enriched = append(enriched, m)
	}
	return enriched, nil
}

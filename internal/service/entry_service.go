package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/incial/stockflow/internal/cache"
	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Draft is one product row of the entry form: raw quantity and amount
// strings, either of which may still be empty.
type Draft struct {
	Qty string `json:"qty"`
	Amt string `json:"amt"`
}

// EntryService turns draft batches into stock entries and appends them to
// the shared history.
type EntryService struct {
	entries repository.EntryRepository
	catalog repository.CatalogRepository
	cache   cache.ReportCache
}

func NewEntryService(entries repository.EntryRepository, catalog repository.CatalogRepository, cacheImpl cache.ReportCache) *EntryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopReportCache()
	}
	return &EntryService{entries: entries, catalog: catalog, cache: cacheImpl}
}

// SubmitBatch converts the drafts with both fields filled and parseable
// into new stock entries for the user's outlet and prepends them to the
// history in one append. Partially-filled or unparseable drafts are
// dropped silently; if nothing survives, domain.ErrEmptySubmission is
// returned and no records are created. Iteration follows catalog order so
// the created batch is deterministic.
func (s *EntryService) SubmitBatch(ctx context.Context, user domain.User, entryDate string, drafts map[string]Draft) ([]domain.StockEntry, error) {
	if user.OutletID == "" {
		return nil, fmt.Errorf("user %s has no assigned outlet", user.ID)
	}
	if _, err := time.Parse("2006-01-02", entryDate); err != nil {
		return nil, fmt.Errorf("invalid entry date %q: %w", entryDate, err)
	}

	now := time.Now().UTC()
	newEntries := make([]domain.StockEntry, 0, len(drafts))
	for _, product := range s.catalog.Products() {
		draft, ok := drafts[product.ID]
		if !ok || draft.Qty == "" || draft.Amt == "" {
			continue
		}

		quantity, err := strconv.ParseInt(draft.Qty, 10, 64)
		if err != nil || quantity < 0 {
			log.Warn().Str("product_id", product.ID).Str("qty", draft.Qty).Msg("dropping draft with invalid quantity")
			continue
		}
		amount, err := decimal.NewFromString(draft.Amt)
		if err != nil || amount.IsNegative() {
			log.Warn().Str("product_id", product.ID).Str("amt", draft.Amt).Msg("dropping draft with invalid amount")
			continue
		}

		newEntries = append(newEntries, domain.StockEntry{
			ID:        "s-" + uuid.NewString(),
			OutletID:  user.OutletID,
			ProductID: product.ID,
			Quantity:  quantity,
			Amount:    amount,
			EntryDate: entryDate,
			EnteredBy: user.ID,
			CreatedAt: now,
		})
	}

	if len(newEntries) == 0 {
		return nil, domain.ErrEmptySubmission
	}

	if err := s.entries.Append(ctx, newEntries); err != nil {
		return nil, fmt.Errorf("append entries: %w", err)
	}

	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("entry submit: report cache invalidation failed")
	}

	log.Info().Int("count", len(newEntries)).Str("entry_date", entryDate).Str("outlet_id", user.OutletID).Msg("stock entries recorded")
	return newEntries, nil
}

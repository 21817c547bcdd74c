package memory

import (
	"context"
	"sync"

	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/repository"
)

type entryRepository struct {
	mu       sync.RWMutex
	entries  []domain.StockEntry
	revision uint64
}

// NewEntryRepository builds the in-memory entry store, optionally seeded.
// Seed entries count as revision 0 so caches warmed before the first
// submission stay valid.
func NewEntryRepository(seed []domain.StockEntry) repository.EntryRepository {
	return &entryRepository{
		entries: append([]domain.StockEntry(nil), seed...),
	}
}

func (r *entryRepository) Append(ctx context.Context, entries []domain.StockEntry) error {
	if len(entries) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.StockEntry, 0, len(entries)+len(r.entries))
	next = append(next, entries...)
	next = append(next, r.entries...)
	r.entries = next
	r.revision++
	return nil
}

func (r *entryRepository) List(ctx context.Context) ([]domain.StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.StockEntry(nil), r.entries...), nil
}

func (r *entryRepository) Revision(ctx context.Context) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision, nil
}

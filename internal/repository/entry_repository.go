package repository

import (
	"context"

	"github.com/incial/stockflow/internal/domain"
)

// EntryRepository owns the append-only stock entry history. Entries are
// prepended so List always returns newest-first; nothing is ever mutated
// or deleted.
type EntryRepository interface {
	// Append prepends the batch to the visible history in the given order.
	Append(ctx context.Context, entries []domain.StockEntry) error
	// List returns a copy of the full history, newest first.
	List(ctx context.Context) ([]domain.StockEntry, error)
	// Revision is a monotonic counter bumped on every Append. Report caches
	// key on it so stale results can never be served.
	Revision(ctx context.Context) (uint64, error)
}

// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never driver rows or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConstraint, etc.)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotestagram/internal/domain"
)

// QuoteRepository is the data-access contract for quotes.
// Implementations live in internal/adapters/storage.
type QuoteRepository interface {
	// FindAll returns every quote joined with its genre, ordered by ascending id.
	// An empty table yields an empty slice and no error.
	FindAll(ctx context.Context) ([]domain.Quote, error)

	// FindByID returns the single quote-with-genre matching id.
	// Returns domain.ErrNotFound if zero or more than one row matches.
	FindByID(ctx context.Context, id string) (*domain.Quote, error)

	// Save coerces the genre reference, inserts a new row and returns the
	// inserted record including its generated id.
	// Returns domain.ErrConstraint on coercion failure or constraint violation.
	Save(ctx context.Context, in domain.QuoteInput) (*domain.Quote, error)

	// Update replaces content, author and genre of the row identified by in.ID
	// and returns the updated row.
	// Returns domain.ErrNotFound if no row matches, domain.ErrConstraint on
	// coercion failure or constraint violation.
	Update(ctx context.Context, in domain.QuoteInput) (*domain.Quote, error)

	// Destroy deletes the row with the given id. Deleting an absent row is
	// not an error.
	Destroy(ctx context.Context, id string) error
}

// QuoteStore is a QuoteRepository backed by a closable connection pool that
// reports its own health.
type QuoteStore interface {
	QuoteRepository
	HealthChecker

	// Close releases the underlying connection pool.
	Close()
}

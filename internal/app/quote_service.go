// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotestagram/internal/domain"
	"github.com/jsamuelsen/quotestagram/internal/platform/logging"
	"github.com/jsamuelsen/quotestagram/internal/ports"
)

// QuoteService orchestrates the quote use cases on top of a repository.
// Errors from the repository are returned unchanged so callers can classify
// them with the domain helpers.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service. It panics without a
// repository since no use case can run.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: NewQuoteService requires a Repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger.With(slog.String("component", "app.QuoteService")),
	}
}

func (s *QuoteService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// ListQuotes returns every quote ordered by id.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to list quotes", slog.Any("error", err))
		return nil, err
	}

	s.log(ctx).DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// GetQuote returns the quote with the given id.
func (s *QuoteService) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log(ctx).DebugContext(ctx, "quote lookup failed",
			slog.String("quote_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return quote, nil
}

// CreateQuote stores a new quote.
func (s *QuoteService) CreateQuote(ctx context.Context, in domain.QuoteInput) (*domain.Quote, error) {
	quote, err := s.repo.Save(ctx, in)
	if err != nil {
		s.log(ctx).WarnContext(ctx, "failed to create quote",
			slog.String("author", in.Author),
			slog.String("genre_id", in.GenreID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "created quote",
		slog.Int64("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return quote, nil
}

// UpdateQuote replaces the quote identified by in.ID.
func (s *QuoteService) UpdateQuote(ctx context.Context, in domain.QuoteInput) (*domain.Quote, error) {
	quote, err := s.repo.Update(ctx, in)
	if err != nil {
		s.log(ctx).WarnContext(ctx, "failed to update quote",
			slog.String("quote_id", in.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "updated quote", slog.Int64("quote_id", quote.ID))

	return quote, nil
}

// DeleteQuote removes the quote with the given id. Deleting an absent quote
// succeeds.
func (s *QuoteService) DeleteQuote(ctx context.Context, id string) error {
	if err := s.repo.Destroy(ctx, id); err != nil {
		s.log(ctx).WarnContext(ctx, "failed to delete quote",
			slog.String("quote_id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.log(ctx).InfoContext(ctx, "deleted quote", slog.String("quote_id", id))

	return nil
}

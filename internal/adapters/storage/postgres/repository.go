// Package postgres implements the quote store on PostgreSQL using pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen/quotestagram/internal/adapters/storage"
	"github.com/jsamuelsen/quotestagram/internal/domain"
	"github.com/jsamuelsen/quotestagram/internal/platform/logging"
	"github.com/jsamuelsen/quotestagram/internal/ports"
)

// DriverName labels spans, metrics and the health check.
const DriverName = "postgresql"

const (
	findAllSQL = `SELECT q.id, COALESCE(q.content, ''), COALESCE(q.author, ''), q.genre_id, g.genre
FROM quotes q
JOIN genres g ON g.id = q.genre_id
ORDER BY q.id`

	findByIDSQL = `SELECT q.id, COALESCE(q.content, ''), COALESCE(q.author, ''), q.genre_id, g.genre
FROM quotes q
JOIN genres g ON g.id = q.genre_id
WHERE q.id = $1`

	insertSQL = `INSERT INTO quotes (content, author, genre_id)
VALUES ($1, $2, $3)
RETURNING id, COALESCE(content, ''), COALESCE(author, ''), genre_id`

	updateSQL = `UPDATE quotes
SET content = $2, author = $3, genre_id = $4
WHERE id = $1
RETURNING id, COALESCE(content, ''), COALESCE(author, ''), genre_id`

	deleteSQL = `DELETE FROM quotes WHERE id = $1`
)

// SQLSTATE classes mapped to domain.ConstraintError.
const (
	classIntegrityViolation = "23"
	classDataException      = "22"
)

// DB is the subset of *pgxpool.Pool used by the repository.
// pgxmock.PgxPoolIface satisfies it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

// Config tunes the connection pool.
type Config struct {
	URL             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	ConnectTimeout  time.Duration
}

// Repository is a ports.QuoteStore backed by PostgreSQL.
type Repository struct {
	db DB
}

// Compile-time interface check.
var _ ports.QuoteStore = (*Repository)(nil)

// New wraps an existing pool.
func New(db DB) *Repository {
	return &Repository{db: db}
}

// Open creates a pool from cfg and verifies it with a ping.
func Open(ctx context.Context, cfg *Config, logger *slog.Logger) (*Repository, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}

	poolConfig.MinConns = cfg.MinConns

	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	}

	if cfg.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	if cfg.ConnectTimeout > 0 {
		poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info("database connection established",
		slog.String("driver", DriverName),
		slog.String("host", poolConfig.ConnConfig.Host),
		slog.String("database", poolConfig.ConnConfig.Database),
		slog.Int("max_conns", int(poolConfig.MaxConns)),
		slog.Int("min_conns", int(poolConfig.MinConns)),
	)

	return New(pool), nil
}

// FindAll returns every quote with its genre label, ordered by id.
func (r *Repository) FindAll(ctx context.Context) (quotes []domain.Quote, err error) {
	ctx, done := storage.Instrument(ctx, DriverName, "find_all")
	defer func() { done(err) }()

	trace(ctx, "find_all")

	rows, err := r.db.Query(ctx, findAllSQL)
	if err != nil {
		return nil, mapError("listing quotes", "", err)
	}

	quotes, err = pgx.CollectRows(rows, scanQuoteWithGenre)
	if err != nil {
		return nil, mapError("listing quotes", "", err)
	}

	return quotes, nil
}

// FindByID returns the quote with the given id.
func (r *Repository) FindByID(ctx context.Context, id string) (quote *domain.Quote, err error) {
	ctx, done := storage.Instrument(ctx, DriverName, "find_by_id")
	defer func() { done(err) }()

	key, err := storage.ParseID(id)
	if err != nil {
		return nil, err
	}

	trace(ctx, "find_by_id", slog.Int64("quote_id", key))

	rows, err := r.db.Query(ctx, findByIDSQL, key)
	if err != nil {
		return nil, mapError("finding quote", id, err)
	}

	q, err := pgx.CollectExactlyOneRow(rows, scanQuoteWithGenre)
	if err != nil {
		return nil, mapError("finding quote", id, err)
	}

	return &q, nil
}

// Save inserts a new quote and returns the stored row.
func (r *Repository) Save(ctx context.Context, in domain.QuoteInput) (quote *domain.Quote, err error) {
	ctx, done := storage.Instrument(ctx, DriverName, "save")
	defer func() { done(err) }()

	genreID, err := domain.CoerceGenreID(in.GenreID)
	if err != nil {
		return nil, err
	}

	trace(ctx, "save", slog.Int64("genre_id", genreID))

	rows, err := r.db.Query(ctx, insertSQL, in.Content, in.Author, genreID)
	if err != nil {
		return nil, mapError("inserting quote", "", err)
	}

	q, err := pgx.CollectExactlyOneRow(rows, scanQuote)
	if err != nil {
		return nil, mapError("inserting quote", "", err)
	}

	return &q, nil
}

// Update replaces content, author and genre of the quote identified by in.ID.
func (r *Repository) Update(ctx context.Context, in domain.QuoteInput) (quote *domain.Quote, err error) {
	ctx, done := storage.Instrument(ctx, DriverName, "update")
	defer func() { done(err) }()

	key, err := storage.ParseID(in.ID)
	if err != nil {
		return nil, err
	}

	genreID, err := domain.CoerceGenreID(in.GenreID)
	if err != nil {
		return nil, err
	}

	trace(ctx, "update", slog.Int64("quote_id", key), slog.Int64("genre_id", genreID))

	rows, err := r.db.Query(ctx, updateSQL, key, in.Content, in.Author, genreID)
	if err != nil {
		return nil, mapError("updating quote", in.ID, err)
	}

	q, err := pgx.CollectExactlyOneRow(rows, scanQuote)
	if err != nil {
		return nil, mapError("updating quote", in.ID, err)
	}

	return &q, nil
}

// Destroy deletes the quote with the given id. A missing row is not an error.
func (r *Repository) Destroy(ctx context.Context, id string) (err error) {
	ctx, done := storage.Instrument(ctx, DriverName, "destroy")
	defer func() { done(err) }()

	key, err := storage.ParseID(id)
	if err != nil {
		return err
	}

	trace(ctx, "destroy", slog.Int64("quote_id", key))

	tag, err := r.db.Exec(ctx, deleteSQL, key)
	if err != nil {
		return mapError("deleting quote", id, err)
	}

	logging.FromContext(ctx).DebugContext(ctx, "quote deleted",
		slog.Int64("quote_id", key),
		slog.Int64("rows_affected", tag.RowsAffected()),
	)

	return nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return DriverName
}

// Check implements ports.HealthChecker by pinging the pool.
func (r *Repository) Check(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return domain.NewUnavailableError(DriverName, err.Error())
	}

	return nil
}

// Close releases the pool.
func (r *Repository) Close() {
	r.db.Close()
}

func scanQuote(row pgx.CollectableRow) (domain.Quote, error) {
	var q domain.Quote
	err := row.Scan(&q.ID, &q.Content, &q.Author, &q.GenreID)

	return q, err
}

func scanQuoteWithGenre(row pgx.CollectableRow) (domain.Quote, error) {
	var q domain.Quote
	err := row.Scan(&q.ID, &q.Content, &q.Author, &q.GenreID, &q.Genre)

	return q, err
}

func trace(ctx context.Context, operation string, attrs ...any) {
	logger := logging.FromContext(ctx)
	if !logger.Enabled(ctx, logging.LevelTrace) {
		return
	}

	logger.Log(ctx, logging.LevelTrace, "executing statement",
		append([]any{slog.String("driver", DriverName), slog.String("operation", operation)}, attrs...)...)
}

// mapError translates driver errors into the domain taxonomy.
func mapError(action, id string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.NewNotFoundError("quote", id)
	case errors.Is(err, pgx.ErrTooManyRows):
		return domain.NewAmbiguousError("quote", id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case classIntegrityViolation, classDataException:
			return domain.WrapConstraintError(constraintField(pgErr), pgErr.Message, err)
		}
	}

	return fmt.Errorf("%s: %w", action, err)
}

// constraintField names what rejected the write, preferring the column.
func constraintField(pgErr *pgconn.PgError) string {
	switch {
	case pgErr.ColumnName != "":
		return pgErr.ColumnName
	case pgErr.ConstraintName != "":
		return pgErr.ConstraintName
	default:
		return "sqlstate " + strconv.Quote(pgErr.Code)
	}
}

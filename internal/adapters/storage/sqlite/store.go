// Package sqlite implements the quote store on an embedded SQLite file,
// used for local development and tests that need a real engine.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen/quotestagram/internal/adapters/storage"
	"github.com/jsamuelsen/quotestagram/internal/domain"
	"github.com/jsamuelsen/quotestagram/internal/platform/logging"
	"github.com/jsamuelsen/quotestagram/internal/ports"
)

// DriverName labels spans, metrics and the health check.
const DriverName = "sqlite"

const (
	findAllSQL = `SELECT q.id, COALESCE(q.content, ''), COALESCE(q.author, ''), q.genre_id, g.genre
FROM quotes q
JOIN genres g ON g.id = q.genre_id
ORDER BY q.id`

	findByIDSQL = `SELECT q.id, COALESCE(q.content, ''), COALESCE(q.author, ''), q.genre_id, g.genre
FROM quotes q
JOIN genres g ON g.id = q.genre_id
WHERE q.id = ?`

	insertSQL = `INSERT INTO quotes (content, author, genre_id)
VALUES (?, ?, ?)
RETURNING id, COALESCE(content, ''), COALESCE(author, ''), genre_id`

	updateSQL = `UPDATE quotes
SET content = ?, author = ?, genre_id = ?
WHERE id = ?
RETURNING id, COALESCE(content, ''), COALESCE(author, ''), genre_id`

	deleteSQL = `DELETE FROM quotes WHERE id = ?`
)

// Config describes the database file and pool limits.
type Config struct {
	Path            string
	MaxConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration

	// Genres are inserted when the genres table is empty.
	Genres []domain.Genre
}

// Store is a ports.QuoteStore backed by SQLite.
type Store struct {
	db *sql.DB
}

// Compile-time interface check.
var _ ports.QuoteStore = (*Store)(nil)

// Open opens (creating if needed) the database file, enables foreign keys on
// every connection and bootstraps the schema.
func Open(ctx context.Context, cfg *Config, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}

	db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)

	if err := bootstrap(ctx, db, cfg.Genres); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database connection established",
		slog.String("driver", DriverName),
		slog.String("path", cfg.Path),
		slog.Int("max_conns", cfg.MaxConns),
	)

	return &Store{db: db}, nil
}

func dsn(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func bootstrap(ctx context.Context, db *sql.DB, genres []domain.Genre) error {
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if len(genres) == 0 {
		return nil
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return fmt.Errorf("counting genres: %w", err)
	}

	if count > 0 {
		return nil
	}

	for _, genre := range genres {
		if _, err := db.ExecContext(ctx, `INSERT INTO genres (id, genre) VALUES (?, ?)`, genre.ID, genre.Genre); err != nil {
			return fmt.Errorf("seeding genre %q: %w", genre.Genre, err)
		}
	}

	return nil
}

// FindAll returns every quote with its genre label, ordered by id.
func (s *Store) FindAll(ctx context.Context) (quotes []domain.Quote, err error) {
	ctx, done := storage.Instrument(ctx, DriverName, "find_all")
	defer func() { done(err) }()

	trace(ctx, "find_all")

	rows, err := s.db.QueryContext(ctx, findAllSQL)
	if err != nil {
		return nil, mapError("listing quotes", "", err)
	}

	quotes, err = collectQuotes(rows)
	if err != nil {
		return nil, mapError("listing quotes", "", err)
	}

	return quotes, nil
}

// FindByID returns the quote with the given id.
func (s *Store) FindByID(ctx context.Context, id string) (quote *domain.Quote, err error) {
	ctx, done := storage.Instrument(ctx, DriverName, "find_by_id")
	defer func() { done(err) }()

	key, err := storage.ParseID(id)
	if err != nil {
		return nil, err
	}

	trace(ctx, "find_by_id", slog.Int64("quote_id", key))

	rows, err := s.db.QueryContext(ctx, findByIDSQL, key)
	if err != nil {
		return nil, mapError("finding quote", id, err)
	}

	quotes, err := collectQuotes(rows)
	if err != nil {
		return nil, mapError("finding quote", id, err)
	}

	switch len(quotes) {
	case 0:
		return nil, domain.NewNotFoundError("quote", id)
	case 1:
		return &quotes[0], nil
	default:
		return nil, domain.NewAmbiguousError("quote", id)
	}
}

// Save inserts a new quote and returns the stored row.
func (s *Store) Save(ctx context.Context, in domain.QuoteInput) (quote *domain.Quote, err error) {
	ctx, done := storage.Instrument(ctx, DriverName, "save")
	defer func() { done(err) }()

	genreID, err := domain.CoerceGenreID(in.GenreID)
	if err != nil {
		return nil, err
	}

	trace(ctx, "save", slog.Int64("genre_id", genreID))

	var q domain.Quote

	err = s.db.QueryRowContext(ctx, insertSQL, in.Content, in.Author, genreID).
		Scan(&q.ID, &q.Content, &q.Author, &q.GenreID)
	if err != nil {
		return nil, mapError("inserting quote", "", err)
	}

	return &q, nil
}

// Update replaces content, author and genre of the quote identified by in.ID.
func (s *Store) Update(ctx context.Context, in domain.QuoteInput) (quote *domain.Quote, err error) {
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

	var q domain.Quote

	err = s.db.QueryRowContext(ctx, updateSQL, in.Content, in.Author, genreID, key).
		Scan(&q.ID, &q.Content, &q.Author, &q.GenreID)
	if err != nil {
		return nil, mapError("updating quote", in.ID, err)
	}

	return &q, nil
}

// Destroy deletes the quote with the given id. A missing row is not an error.
func (s *Store) Destroy(ctx context.Context, id string) (err error) {
	ctx, done := storage.Instrument(ctx, DriverName, "destroy")
	defer func() { done(err) }()

	key, err := storage.ParseID(id)
	if err != nil {
		return err
	}

	trace(ctx, "destroy", slog.Int64("quote_id", key))

	res, err := s.db.ExecContext(ctx, deleteSQL, key)
	if err != nil {
		return mapError("deleting quote", id, err)
	}

	affected, _ := res.RowsAffected()
	logging.FromContext(ctx).DebugContext(ctx, "quote deleted",
		slog.Int64("quote_id", key),
		slog.Int64("rows_affected", affected),
	)

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return DriverName
}

// Check implements ports.HealthChecker by pinging the database.
func (s *Store) Check(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return domain.NewUnavailableError(DriverName, err.Error())
	}

	return nil
}

// Close closes the database.
func (s *Store) Close() {
	_ = s.db.Close()
}

func collectQuotes(rows *sql.Rows) ([]domain.Quote, error) {
	defer rows.Close()

	quotes := []domain.Quote{}

	for rows.Next() {
		var q domain.Quote
		if err := rows.Scan(&q.ID, &q.Content, &q.Author, &q.GenreID, &q.Genre); err != nil {
			return nil, err
		}

		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
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
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError("quote", id)
	}

	if errors.Is(err, sql.ErrConnDone) {
		return domain.NewUnavailableError(DriverName, err.Error())
	}

	var sqliteErr *sqlitedriver.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_CONSTRAINT, sqlite3.SQLITE_MISMATCH:
			return domain.WrapConstraintError(constraintField(sqliteErr.Code(), sqliteErr.Error()), "rejected by sqlite", err)
		}
	}

	return fmt.Errorf("%s: %w", action, err)
}

// constraintField names the column behind a constraint failure. The driver
// prefixes the engine message, as in
// "constraint failed: NOT NULL constraint failed: quotes.genre_id (1299)",
// so the column follows the last marker. Foreign key failures carry no
// column; genre_id is the only reference in the schema.
func constraintField(code int, msg string) string {
	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return "genre_id"
	}

	const marker = "constraint failed: "

	i := strings.LastIndex(msg, marker)
	if i < 0 {
		return ""
	}

	column, _, _ := strings.Cut(msg[i+len(marker):], " ")
	if _, name, ok := strings.Cut(column, "."); ok {
		return name
	}

	return column
}

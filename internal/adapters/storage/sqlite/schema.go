package sqlite

import "github.com/jsamuelsen/quotestagram/internal/domain"

const (
	createGenres = `CREATE TABLE IF NOT EXISTS genres (
	id    INTEGER PRIMARY KEY,
	genre TEXT NOT NULL
)`

	createQuotes = `CREATE TABLE IF NOT EXISTS quotes (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	content  TEXT,
	author   TEXT,
	genre_id INTEGER NOT NULL REFERENCES genres(id)
)`
)

// schemaDDL lists the CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createGenres,
	createQuotes,
}

// DefaultGenres seeds an empty genres table so a fresh local database can
// accept quotes. The ids match db/schema.sql.
var DefaultGenres = []domain.Genre{
	{ID: 1, Genre: "philosophy"},
	{ID: 2, Genre: "humor"},
	{ID: 3, Genre: "inspiration"},
	{ID: 4, Genre: "literature"},
}

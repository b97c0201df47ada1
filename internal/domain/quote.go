// Package domain contains core business entities and rules.
package domain

// Quote represents a quotation with its author and genre.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the database-generated identifier.
	ID int64

	// Content is the text of the quote.
	Content string

	// Author is who said or wrote the quote.
	Author string

	// GenreID references the genre this quote belongs to.
	GenreID int64

	// Genre is the human-readable genre label. Only populated on reads
	// that join the genres table.
	Genre string
}

// Genre is a labeled category referenced by quotes.
// Genres are managed outside this service. Only the sqlite store seeds
// them, into an empty table.
type Genre struct {
	ID    int64
	Genre string
}

// QuoteInput is the raw, uncoerced data of a create or update request.
// GenreID stays a string until the data-access layer coerces it.
type QuoteInput struct {
	ID      string
	Content string
	Author  string
	GenreID string
}

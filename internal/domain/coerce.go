package domain

import (
	"strconv"
	"strings"
)

// CoerceGenreID converts a genre reference received as text into an integer.
//
// Parsing is lenient in the way HTML form values usually are: leading
// whitespace is skipped, an optional sign is accepted and only the leading
// run of digits is used, so "12abc" becomes 12. Input without any leading
// digit cannot reference a genre and yields a ConstraintError.
func CoerceGenreID(raw string) (int64, error) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, NewConstraintErrorWithValue("genre_id", "not an integer", raw)
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, NewConstraintErrorWithValue("genre_id", "out of range", raw)
	}

	return id, nil
}

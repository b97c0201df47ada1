package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen/quotestagram/internal/domain"
)

// QuoteForm is the body of a create or update request. It binds from an
// urlencoded form or from JSON.
type QuoteForm struct {
	// ID is accepted for symmetry with the edit form; the path id replaces it.
	ID      string     `form:"id"       json:"id"`
	Content string     `form:"content"  json:"content"`
	Author  string     `form:"author"   json:"author"`
	GenreID FlexString `form:"genre_id" json:"genre_id" validate:"required"`
}

// ToInput converts the form into repository input. A non-empty id
// overrides whatever the body carried.
func (f QuoteForm) ToInput(id string) domain.QuoteInput {
	if id == "" {
		id = f.ID
	}

	return domain.QuoteInput{
		ID:      id,
		Content: f.Content,
		Author:  f.Author,
		GenreID: string(f.GenreID),
	}
}

// FlexString is a string that also accepts a bare JSON number, so
// {"genre_id": 2} and {"genre_id": "2"} bind the same way.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}

	*s = FlexString(num.String())

	return nil
}

// UnmarshalParam lets gin's form binding set the value directly.
func (s *FlexString) UnmarshalParam(param string) error {
	*s = FlexString(param)
	return nil
}

// String returns the raw value.
func (s FlexString) String() string {
	return string(s)
}

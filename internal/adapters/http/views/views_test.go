package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotestagram/internal/domain"
)

func render(t *testing.T, name string, data map[string]any) string {
	t.Helper()

	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))

	return buf.String()
}

func TestTemplates_Defined(t *testing.T) {
	tmpl := MustTemplates()

	for _, name := range []string{Home, QuoteIndex, QuoteShow, QuoteAdd, QuoteEdit} {
		assert.NotNil(t, tmpl.Lookup(name), "template %q", name)
	}
}

func TestHome(t *testing.T) {
	out := render(t, Home, map[string]any{
		"title":   "quote-sta-gram",
		"message": "Words worth keeping.",
		"authors": []string{"Maya Angelou", "Mark Twain"},
	})

	assert.Contains(t, out, "<title>quote-sta-gram</title>")
	assert.Contains(t, out, "Words worth keeping.")
	assert.Contains(t, out, "<li>Maya Angelou</li>")
	assert.Contains(t, out, "<li>Mark Twain</li>")
}

func TestQuoteIndex(t *testing.T) {
	t.Run("lists quotes", func(t *testing.T) {
		out := render(t, QuoteIndex, map[string]any{
			"title": "quotes",
			"data": []domain.Quote{
				{ID: 1, Content: "Be water.", Author: "Bruce Lee", GenreID: 1, Genre: "philosophy"},
				{ID: 2, Content: "<script>", Author: "Anon", GenreID: 7},
			},
		})

		assert.Contains(t, out, `href="/quotes/1"`)
		assert.Contains(t, out, "philosophy")
		assert.Contains(t, out, "genre #7")
		assert.Contains(t, out, "&lt;script&gt;")
		assert.NotContains(t, out, "No quotes yet.")
	})

	t.Run("empty", func(t *testing.T) {
		out := render(t, QuoteIndex, map[string]any{"title": "quotes", "data": []domain.Quote{}})
		assert.Contains(t, out, "No quotes yet.")
	})
}

func TestQuoteShow(t *testing.T) {
	out := render(t, QuoteShow, map[string]any{
		"title": "quotes",
		"data":  &domain.Quote{ID: 5, Content: "Be water.", Author: "Bruce Lee", GenreID: 1, Genre: "philosophy"},
	})

	assert.Contains(t, out, "<blockquote>Be water.</blockquote>")
	assert.Contains(t, out, `href="/quotes/5/edit"`)
	assert.Contains(t, out, `action="/quotes/5?_method=DELETE"`)
}

func TestQuoteForms(t *testing.T) {
	t.Run("blank add form", func(t *testing.T) {
		out := render(t, QuoteAdd, map[string]any{"title": "quotes", "data": &domain.Quote{}})

		assert.Contains(t, out, `action="/quotes" method="POST"`)
		assert.Contains(t, out, `name="genre_id" type="number" min="1" value=""`)
	})

	t.Run("prefilled edit form", func(t *testing.T) {
		out := render(t, QuoteEdit, map[string]any{
			"title": "quotes",
			"data":  &domain.Quote{ID: 5, Content: "Be water.", Author: "Bruce Lee", GenreID: 2},
		})

		assert.Contains(t, out, `action="/quotes/5?_method=PUT"`)
		assert.Contains(t, out, ">Be water.</textarea>")
		assert.Contains(t, out, `value="Bruce Lee"`)
		assert.Contains(t, out, `value="2"`)
	})
}

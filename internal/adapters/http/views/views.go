// Package views holds the HTML templates rendered by the quote routes.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
)

// Template names as passed to gin's c.HTML.
const (
	Home       = "index"
	QuoteIndex = "quotes-index"
	QuoteShow  = "quotes-single"
	QuoteAdd   = "quote-add"
	QuoteEdit  = "quote-edit"
)

//go:embed templates/*.tmpl
var files embed.FS

var funcs = template.FuncMap{
	"genre": func(label string, id int64) string {
		if label != "" {
			return label
		}
		if id == 0 {
			return "uncategorized"
		}

		return "genre #" + strconv.FormatInt(id, 10)
	},
	// optionalID renders a zero id as an empty field so the blank form
	// does not prefill "0".
	"optionalID": func(id int64) string {
		if id == 0 {
			return ""
		}

		return strconv.FormatInt(id, 10)
	},
}

// Templates parses every embedded template into one set.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("quotestagram").Funcs(funcs).ParseFS(files, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return tmpl, nil
}

// MustTemplates is like Templates but panics on error. The templates are
// compiled into the binary, so a failure is a build defect.
func MustTemplates() *template.Template {
	tmpl, err := Templates()
	if err != nil {
		panic(err)
	}

	return tmpl
}

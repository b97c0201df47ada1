package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotestagram/internal/adapters/http/views"
	"github.com/jsamuelsen/quotestagram/internal/domain"
	"github.com/jsamuelsen/quotestagram/internal/platform/config"
	"github.com/jsamuelsen/quotestagram/internal/ports"
)

func benchContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// BenchmarkLiveness measures the liveness check, which must stay cheap.
func BenchmarkLiveness(b *testing.B) {
	handler := NewHealthHandler(ports.NewHealthRegistry(), NewBuildInfo("1.0.0", "abc123", "2026-01-01T00:00:00Z"))
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		handler.Liveness(benchContext(httptest.NewRecorder(), req))
	}
}

// BenchmarkChainDispatch measures one controller/view round trip without
// template rendering.
func BenchmarkChainDispatch(b *testing.B) {
	quote := &domain.Quote{ID: 1, Content: "Be water.", Author: "Bruce Lee", GenreID: 1}
	chain := Chain{
		Controller: func(_ *gin.Context, l Locals) Result { return OK(l.WithQuote(quote)) },
		View:       func(c *gin.Context, l Locals) { c.Status(http.StatusOK) },
	}.HandlerFunc()
	req := httptest.NewRequest(http.MethodGet, "/quotes/1", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		chain(benchContext(httptest.NewRecorder(), req))
	}
}

// BenchmarkShowQuotes measures rendering the index page for a hundred quotes.
func BenchmarkShowQuotes(b *testing.B) {
	quotes := make([]domain.Quote, 100)
	for i := range quotes {
		quotes[i] = domain.Quote{ID: int64(i + 1), Content: "Be water.", Author: "Bruce Lee", GenreID: 1, Genre: "philosophy"}
	}

	engine := gin.New()
	engine.SetHTMLTemplate(views.MustTemplates())
	v := NewQuoteViews(config.ViewsConfig{Title: "bench"})
	locals := Locals{}.WithQuotes(quotes)
	req := httptest.NewRequest(http.MethodGet, "/quotes", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := gin.CreateTestContextOnly(w, engine)
		c.Request = req
		v.ShowQuotes(c, locals)
	}
}

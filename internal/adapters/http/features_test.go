package http

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/quotestagram/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotestagram/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/quotestagram/internal/app"
	"github.com/jsamuelsen/quotestagram/internal/domain"
	"github.com/jsamuelsen/quotestagram/internal/platform/config"
	"github.com/jsamuelsen/quotestagram/internal/ports"
)

// featureContext holds state shared across step definitions within a
// scenario. Every scenario gets its own database file.
type featureContext struct {
	t       *testing.T
	path    string
	store   *sqlite.Store
	handler http.Handler
	resp    *httptest.ResponseRecorder
}

func (fc *featureContext) start(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
	fc.path = filepath.Join(fc.t.TempDir(), "quotes.db")

	store, err := sqlite.Open(ctx, &sqlite.Config{
		Path:     fc.path,
		MaxConns: 1,
		Genres:   sqlite.DefaultGenres,
	}, discardLogger())
	if err != nil {
		return ctx, fmt.Errorf("open store: %w", err)
	}

	fc.store = store
	fc.resp = nil

	srv := New(testServerConfig(0), discardLogger())
	SetupRouter(srv.Engine(), RouterConfig{
		Logger:        discardLogger(),
		ServiceName:   "quotestagram-features",
		HealthHandler: handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{}),
		Quotes: handlers.NewQuoteController(app.NewQuoteService(app.QuoteServiceConfig{
			Repository: store,
			Logger:     discardLogger(),
		})),
		Views: handlers.NewQuoteViews(config.ViewsConfig{Title: "quote-sta-gram"}),
	})
	fc.handler = srv.Handler()

	return ctx, nil
}

func (fc *featureContext) stop(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
	if fc.store != nil {
		fc.store.Close()
		fc.store = nil
	}

	return ctx, err
}

// aQuoteExists inserts a row with an explicit id behind the store's back,
// the way an operator seeding the table would.
func (fc *featureContext) aQuoteExists(id int64, content, author string, genreID int64) error {
	db, err := sql.Open(sqlite.DriverName, fc.path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`INSERT INTO quotes (id, content, author, genre_id) VALUES (?, ?, ?, ?)`,
		id, content, author, genreID)

	return err
}

func (fc *featureContext) do(method, target, contentType string, body io.Reader) {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	fc.resp = httptest.NewRecorder()
	fc.handler.ServeHTTP(fc.resp, req)
}

func (fc *featureContext) iRequest(method, target string) error {
	fc.do(method, target, "", nil)
	return nil
}

func (fc *featureContext) iSubmitForm(method, target string, table *godog.Table) error {
	form := url.Values{}
	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("form rows need a field and a value, got %d cells", len(row.Cells))
		}
		form.Set(row.Cells[0].Value, row.Cells[1].Value)
	}

	fc.do(method, target, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))

	return nil
}

func (fc *featureContext) iSubmitJSON(method, target string, doc *godog.DocString) error {
	fc.do(method, target, "application/json", bytes.NewBufferString(doc.Content))
	return nil
}

func (fc *featureContext) theResponseStatusShouldBe(expected int) error {
	if fc.resp == nil {
		return fmt.Errorf("no response received")
	}

	if fc.resp.Code != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, fc.resp.Code, fc.resp.Body.String())
	}

	return nil
}

func (fc *featureContext) iShouldBeRedirectedTo(location string) error {
	if got := fc.resp.Header().Get("Location"); got != location {
		return fmt.Errorf("expected redirect to %q, got %q", location, got)
	}

	return nil
}

func (fc *featureContext) theResponseBodyShouldBeEmpty() error {
	if fc.resp.Body.Len() != 0 {
		return fmt.Errorf("expected empty body, got %q", fc.resp.Body.String())
	}

	return nil
}

func (fc *featureContext) theResponseShouldContain(text string) error {
	if body := fc.resp.Body.String(); !strings.Contains(body, text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, body)
	}

	return nil
}

func (fc *featureContext) quoteShouldRead(id, content, author, genre string) error {
	q, err := fc.store.FindByID(context.Background(), id)
	if err != nil {
		return fmt.Errorf("quote %s: %w", id, err)
	}

	if q.Content != content || q.Author != author || q.Genre != genre {
		return fmt.Errorf("quote %s is %q by %q in %q", id, q.Content, q.Author, q.Genre)
	}

	return nil
}

func (fc *featureContext) quoteShouldNotExist(id string) error {
	_, err := fc.store.FindByID(context.Background(), id)
	if !domain.IsNotFound(err) {
		return fmt.Errorf("expected quote %s to be missing, got err=%v", id, err)
	}

	return nil
}

func (fc *featureContext) thereShouldBeQuotes(n int) error {
	quotes, err := fc.store.FindAll(context.Background())
	if err != nil {
		return err
	}

	if len(quotes) != n {
		return fmt.Errorf("expected %d quotes, got %d", n, len(quotes))
	}

	return nil
}

func initializeScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(sc *godog.ScenarioContext) {
		fc := &featureContext{t: t}

		sc.Before(fc.start)
		sc.After(fc.stop)

		sc.Step(`^a quote (\d+) "([^"]*)" by "([^"]*)" in genre (\d+)$`, fc.aQuoteExists)
		sc.Step(`^I (GET|POST|PUT|DELETE) "([^"]*)"$`, fc.iRequest)
		sc.Step(`^I (POST|PUT) "([^"]*)" with form:$`, fc.iSubmitForm)
		sc.Step(`^I (POST|PUT) "([^"]*)" with JSON:$`, fc.iSubmitJSON)
		sc.Step(`^the response status should be (\d+)$`, fc.theResponseStatusShouldBe)
		sc.Step(`^I should be redirected to "([^"]*)"$`, fc.iShouldBeRedirectedTo)
		sc.Step(`^the response body should be empty$`, fc.theResponseBodyShouldBeEmpty)
		sc.Step(`^the response should contain "([^"]*)"$`, fc.theResponseShouldContain)
		sc.Step(`^quote (\d+) should read "([^"]*)" by "([^"]*)" in genre "([^"]*)"$`, fc.quoteShouldRead)
		sc.Step(`^quote (\d+) should not exist$`, fc.quoteShouldNotExist)
		sc.Step(`^there should be (\d+) quotes?$`, fc.thereShouldBeQuotes)
	}
}

// TestFeatures runs the quote feature files against the full router and a
// real sqlite database.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotestagram/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotestagram/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotestagram/internal/adapters/http/views"
	"github.com/jsamuelsen/quotestagram/internal/platform/telemetry"
)

// RouterConfig contains the dependencies of the route table.
type RouterConfig struct {
	// Logger is the base of every request-scoped logger.
	Logger *slog.Logger

	// ServiceName names the otel server spans.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	Quotes        *handlers.QuoteController
	Views         *handlers.QuoteViews
}

// SetupRouter installs templates, global middleware and all routes.
// Middleware order (first to last):
//  1. Request logger seeded from cfg.Logger
//  2. Recovery
//  3. Request ID
//  4. Correlation ID
//  5. OpenTelemetry tracing, then HTTP metrics and trace id enrichment
//  6. Request logging (skips /-/ paths)
//
// Method override is not gin middleware; see Server.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.SetHTMLTemplate(views.MustTemplates())

	engine.Use(
		middleware.RequestLogger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Tracing(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	registerQuoteRoutes(engine, cfg.Quotes, cfg.Views)
}

// registerQuoteRoutes mounts the quote resource. Each route is one Chain:
// controller stage, view stage, error fallback.
func registerQuoteRoutes(engine *gin.Engine, qc *handlers.QuoteController, v *handlers.QuoteViews) {
	quotes := engine.Group("/quotes")

	quotes.GET("/:id/edit", handlers.Chain{Controller: qc.GetOne, View: v.ShowEditForm, Fallback: v.Show404}.HandlerFunc())
	quotes.GET("/new", handlers.Chain{Controller: qc.MakeBlankQuote, View: v.ShowAddForm}.HandlerFunc())
	quotes.GET("/:id", handlers.Chain{Controller: qc.GetOne, View: v.ShowOne, Fallback: v.Show404}.HandlerFunc())
	quotes.PUT("/:id", handlers.Chain{Controller: qc.Update, View: v.HandleUpdate, Fallback: v.Show406}.HandlerFunc())
	quotes.DELETE("/:id", handlers.Chain{Controller: qc.Destroy, View: v.HandleDelete, Fallback: v.Show404}.HandlerFunc())
	quotes.GET("", handlers.Chain{Controller: qc.Index, View: v.ShowQuotes, Fallback: v.Show404}.HandlerFunc())
	quotes.POST("", handlers.Chain{Controller: qc.Create, View: v.HandleCreate, Fallback: v.Show406}.HandlerFunc())

	engine.GET("/", handlers.Chain{View: v.ShowHome}.HandlerFunc())
}

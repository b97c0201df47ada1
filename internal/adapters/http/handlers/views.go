package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotestagram/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotestagram/internal/adapters/http/views"
	"github.com/jsamuelsen/quotestagram/internal/domain"
	"github.com/jsamuelsen/quotestagram/internal/platform/config"
	"github.com/jsamuelsen/quotestagram/internal/platform/logging"
)

// QuoteViews renders controller results. View methods write the response
// for a successful stage; Show404 and Show406 are the fallbacks for a
// failed one.
type QuoteViews struct {
	title   string
	message string
	authors []string
}

// NewQuoteViews creates the view stages using the page settings in cfg.
func NewQuoteViews(cfg config.ViewsConfig) *QuoteViews {
	return &QuoteViews{
		title:   cfg.Title,
		message: cfg.Message,
		authors: cfg.Authors,
	}
}

func (v *QuoteViews) page(data any) gin.H {
	return gin.H{"title": v.title, "data": data}
}

// Show404 answers a failed read or delete with a bare 404. A missing quote
// is routine; an unreachable store is logged as an error.
func (v *QuoteViews) Show404(c *gin.Context, err error) {
	ctx := c.Request.Context()

	level, msg := slog.LevelDebug, "quote not found"
	if domain.IsUnavailable(err) {
		level, msg = slog.LevelError, "quote store unavailable"
	}

	logging.FromContext(ctx).Log(ctx, level, msg,
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err),
	)

	c.AbortWithStatus(http.StatusNotFound)
}

// Show406 answers a failed write with a bare 406 and logs the cause.
func (v *QuoteViews) Show406(c *gin.Context, err error) {
	ctx := c.Request.Context()

	msg := "quote write rejected"
	if domain.IsUnavailable(err) {
		msg = "quote store unavailable"
	}

	attrs := []any{
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err),
	}
	if fields := dto.ValidationErrors(err); len(fields) > 0 {
		attrs = append(attrs, slog.Any("fields", fields))
	}

	logging.FromContext(ctx).ErrorContext(ctx, msg, attrs...)

	c.AbortWithStatus(http.StatusNotAcceptable)
}

// ShowQuotes renders the quote list.
func (v *QuoteViews) ShowQuotes(c *gin.Context, locals Locals) {
	c.HTML(http.StatusOK, views.QuoteIndex, v.page(locals.Quotes()))
}

// ShowOne renders a single quote.
func (v *QuoteViews) ShowOne(c *gin.Context, locals Locals) {
	c.HTML(http.StatusOK, views.QuoteShow, v.page(locals.Quote()))
}

// ShowAddForm renders the empty add form.
func (v *QuoteViews) ShowAddForm(c *gin.Context, locals Locals) {
	quote := locals.Quote()
	if quote == nil {
		quote = &domain.Quote{}
	}

	c.HTML(http.StatusOK, views.QuoteAdd, v.page(quote))
}

// ShowEditForm renders the edit form filled with the loaded quote.
func (v *QuoteViews) ShowEditForm(c *gin.Context, locals Locals) {
	c.HTML(http.StatusOK, views.QuoteEdit, v.page(locals.Quote()))
}

// HandleCreate redirects to the list after a create.
func (v *QuoteViews) HandleCreate(c *gin.Context, _ Locals) {
	c.Redirect(http.StatusFound, "/quotes")
}

// HandleUpdate redirects to the updated quote, using the path id.
func (v *QuoteViews) HandleUpdate(c *gin.Context, _ Locals) {
	c.Redirect(http.StatusFound, "/quotes/"+c.Param("id"))
}

// HandleDelete redirects to the list after a delete.
func (v *QuoteViews) HandleDelete(c *gin.Context, _ Locals) {
	c.Redirect(http.StatusFound, "/quotes")
}

// ShowHome renders the landing page.
func (v *QuoteViews) ShowHome(c *gin.Context, _ Locals) {
	c.HTML(http.StatusOK, views.Home, gin.H{
		"title":   v.title,
		"message": v.message,
		"authors": v.authors,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotestagram/internal/domain"
	"github.com/jsamuelsen/quotestagram/internal/platform/logging"
)

// Locals is the per-request state handed from a controller stage to its
// view. It is a value: the With methods return extended copies and never
// modify the receiver.
type Locals struct {
	quote  *domain.Quote
	quotes []domain.Quote
}

// WithQuote returns a copy of l carrying q.
func (l Locals) WithQuote(q *domain.Quote) Locals {
	l.quote = q
	return l
}

// WithQuotes returns a copy of l carrying qs.
func (l Locals) WithQuotes(qs []domain.Quote) Locals {
	l.quotes = qs
	return l
}

// Quote returns the single quote set by a controller, if any.
func (l Locals) Quote() *domain.Quote {
	return l.quote
}

// Quotes returns the quote list set by a controller, if any.
func (l Locals) Quotes() []domain.Quote {
	return l.quotes
}

// Result is what a controller stage produces: either Locals for the view
// or an error for the fallback, never both.
type Result struct {
	Locals Locals
	Err    error
}

// OK wraps locals in a successful Result.
func OK(locals Locals) Result {
	return Result{Locals: locals}
}

// Fail wraps err in a failed Result.
func Fail(err error) Result {
	return Result{Err: err}
}

// Controller adapts request input into repository calls.
type Controller func(c *gin.Context, in Locals) Result

// View writes the response for a successful controller stage.
type View func(c *gin.Context, locals Locals)

// Fallback writes the response for a failed controller stage.
type Fallback func(c *gin.Context, err error)

// Chain is one route's pipeline. Controller and Fallback are optional.
type Chain struct {
	Controller Controller
	View       View
	Fallback   Fallback
}

// Handle runs the chain for one request. It is the only place where a
// request moves from pending to rendering or to an error status.
func (ch Chain) Handle(c *gin.Context) {
	result := OK(Locals{})
	if ch.Controller != nil {
		result = ch.Controller(c, Locals{})
	}

	if result.Err != nil {
		_ = c.Error(result.Err)

		if ch.Fallback != nil {
			ch.Fallback(c, result.Err)
			return
		}

		ctx := c.Request.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "unhandled controller error", "error", result.Err)
		c.AbortWithStatus(http.StatusInternalServerError)

		return
	}

	ch.View(c, result.Locals)
}

// HandlerFunc returns the chain as a gin handler.
func (ch Chain) HandlerFunc() gin.HandlerFunc {
	return ch.Handle
}

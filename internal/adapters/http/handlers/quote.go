package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotestagram/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotestagram/internal/app"
	"github.com/jsamuelsen/quotestagram/internal/domain"
)

// QuoteController turns requests into quote service calls. Every method is
// a Controller stage: it reads the request, calls the service once and
// returns the outcome as a Result. Errors are passed through as-is.
type QuoteController struct {
	service *app.QuoteService
}

// NewQuoteController creates a new quote controller.
func NewQuoteController(service *app.QuoteService) *QuoteController {
	return &QuoteController{service: service}
}

// MakeBlankQuote seeds the add form with an empty quote.
func (qc *QuoteController) MakeBlankQuote(_ *gin.Context, in Locals) Result {
	return OK(in.WithQuote(&domain.Quote{}))
}

// Index loads every quote.
func (qc *QuoteController) Index(c *gin.Context, in Locals) Result {
	quotes, err := qc.service.ListQuotes(c.Request.Context())
	if err != nil {
		return Fail(err)
	}

	return OK(in.WithQuotes(quotes))
}

// GetOne loads the quote named by the :id path parameter.
func (qc *QuoteController) GetOne(c *gin.Context, in Locals) Result {
	quote, err := qc.service.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		return Fail(err)
	}

	return OK(in.WithQuote(quote))
}

// Create stores the quote in the request body.
func (qc *QuoteController) Create(c *gin.Context, in Locals) Result {
	var form dto.QuoteForm
	if err := dto.BindBodyAndValidate(c, &form); err != nil {
		return Fail(err)
	}

	quote, err := qc.service.CreateQuote(c.Request.Context(), form.ToInput(""))
	if err != nil {
		return Fail(err)
	}

	return OK(in.WithQuote(quote))
}

// Update replaces the quote named by :id with the request body. The path
// id always wins over an id in the body.
func (qc *QuoteController) Update(c *gin.Context, in Locals) Result {
	var form dto.QuoteForm
	if err := dto.BindBodyAndValidate(c, &form); err != nil {
		return Fail(err)
	}

	quote, err := qc.service.UpdateQuote(c.Request.Context(), form.ToInput(c.Param("id")))
	if err != nil {
		return Fail(err)
	}

	return OK(in.WithQuote(quote))
}

// Destroy removes the quote named by :id.
func (qc *QuoteController) Destroy(c *gin.Context, in Locals) Result {
	if err := qc.service.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		return Fail(err)
	}

	return OK(in)
}

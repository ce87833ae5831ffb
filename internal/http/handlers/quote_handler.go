// README: Quote endpoint handler.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetquote/internal/modules/quote"
)

type QuoteHandler struct {
	quote *quote.Service
}

func NewQuoteHandler(svc *quote.Service) *QuoteHandler {
	return &QuoteHandler{quote: svc}
}

// Quote returns 200 for every well-formed request: either the grouped result
// or an error payload. Callers (a chat frontend) always get a body they can
// render; only an unreadable request body is a protocol-level 400.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req quote.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	// An unexpected computation fault must surface as a structured payload,
	// not a 500.
	defer func() {
		if r := recover(); r != nil {
			writeJSON(c, http.StatusOK, errorResponse{Error: fmt.Sprintf("%v", r)})
		}
	}()

	res, err := h.quote.Quote(c.Request.Context(), req)
	if err != nil {
		writeJSON(c, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(c, http.StatusOK, res)
}

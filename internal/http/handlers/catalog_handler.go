// README: Catalog diagnostics handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetquote/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

func (h *CatalogHandler) Stats(c *gin.Context) {
	rows, cols := h.catalog.Stats()
	writeJSON(c, http.StatusOK, map[string]any{"rows": rows, "cols": cols})
}

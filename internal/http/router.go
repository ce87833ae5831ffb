// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fleetquote/internal/http/handlers"
	"fleetquote/internal/http/middleware"
	"fleetquote/internal/modules/catalog"
	"fleetquote/internal/modules/quote"
)

type RouterDeps struct {
	Quote       *quote.Service
	Catalog     *catalog.Service
	Logger      *zap.Logger
	CORSOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	quoteHandler := handlers.NewQuoteHandler(deps.Quote)
	r.POST("/api/quote", quoteHandler.Quote)

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	r.GET("/api/catalog/stats", catalogHandler.Stats)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

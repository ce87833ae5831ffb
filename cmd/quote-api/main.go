// README: Entry point; loads config and catalog, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fleetquote/internal/config"
	httptransport "fleetquote/internal/http"
	"fleetquote/internal/infra"
	"fleetquote/internal/logger"
	"fleetquote/internal/modules/catalog"
	"fleetquote/internal/modules/quote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source catalog.Source
	if cfg.Catalog.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.Catalog.DSN)
		if err != nil {
			zlog.Fatal("postgres init", zap.Error(err))
		}
		defer dbPool.Close()
		source = catalog.NewPostgresSource(dbPool)
	} else {
		source = catalog.NewFileSource(cfg.Catalog.Path, cfg.Catalog.Delimiter)
	}

	catalogSvc, err := catalog.NewService(ctx, source)
	if err != nil {
		zlog.Fatal("catalog load", zap.Error(err))
	}
	rows, cols := catalogSvc.Stats()
	zlog.Info("catalog loaded", zap.Int("rows", rows), zap.Int("cols", cols))

	var cache quote.ResultCache
	if cfg.Cache.Addr != "" {
		redisClient := infra.NewRedis(cfg.Cache.Addr)
		cache = quote.NewCache(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	}
	quoteSvc := quote.NewService(catalogSvc, cache)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Quote:       quoteSvc,
		Catalog:     catalogSvc,
		Logger:      zlog,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zlog.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("server", zap.Error(err))
	}
}

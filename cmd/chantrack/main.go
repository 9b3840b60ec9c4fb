package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/rbelkadi/chantrack/internal/config"
	"github.com/rbelkadi/chantrack/internal/logging"
	"github.com/rbelkadi/chantrack/internal/service"
	"github.com/rbelkadi/chantrack/internal/store"
	"github.com/rbelkadi/chantrack/internal/tabular"
	"github.com/rbelkadi/chantrack/internal/web"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	ts, err := tabular.NewStore(cfg.DataDir, logger)
	if err != nil {
		logger.Error("failed to open data directory", "dir", cfg.DataDir, "error", err)
		return
	}

	reg := store.Open(ts)
	sites := service.NewSiteService(reg, logger)
	stock := service.NewStockService(reg, logger)
	server := web.NewServer(reg, sites, stock, logger)

	logger.Info("collections loaded",
		"sites", reg.Sites.Len(),
		"clients", reg.Clients.Len(),
		"invoices", reg.Invoices.Len(),
		"quotes", reg.Quotes.Len(),
		"stock_items", reg.Stock.Len(),
	)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

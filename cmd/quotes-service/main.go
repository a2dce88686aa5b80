package main

import (
	"fmt"
	"os"

	"github.com/tssco/quotes-service/internal/config"
	"github.com/tssco/quotes-service/internal/db"
	"github.com/tssco/quotes-service/internal/excel"
	httphandler "github.com/tssco/quotes-service/internal/http"
	"github.com/tssco/quotes-service/internal/logger"
	"github.com/tssco/quotes-service/internal/pdf"
	"github.com/tssco/quotes-service/internal/repository"
	"github.com/tssco/quotes-service/internal/service"
	"github.com/tssco/quotes-service/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	fileStore, err := storage.NewFileStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init upload storage")
	}

	quoteRepo := repository.NewQuoteRepository(database)
	companyRepo := repository.NewCompanyRepository(database)

	companyService := service.NewCompanyService(companyRepo, fileStore)
	quoteService := service.NewQuoteService(
		quoteRepo,
		companyService,
		excel.NewGenerator(),
		pdf.NewGenerator(),
		cfg,
	)

	handler := httphandler.NewHandler(quoteService, companyService, log)
	router := httphandler.NewRouter(handler, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting quotes service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

package main

import (
	"context"
	"log"

	"notebook-share-be/internal/bootstrap"
	"notebook-share-be/internal/config"
	"notebook-share-be/internal/repository/sheets"
	"notebook-share-be/internal/repository/unitofwork"
	"notebook-share-be/internal/server"
	"notebook-share-be/internal/tracer"
	"notebook-share-be/pkg/database"
	"notebook-share-be/pkg/sheetsclient"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	// A store that cannot be reached at startup is fatal; there is no
	// degraded mode.
	var uowFactory unitofwork.RepositoryFactory
	switch cfg.Store.Driver {
	case "sheets":
		srv, err := sheetsclient.New(context.Background(), sheetsclient.Credentials{
			File:       cfg.Store.CredentialsFile,
			JSONBase64: cfg.Store.CredentialsJSON,
		})
		if err != nil {
			log.Panicf("Unable to create Sheets client: %v", err)
		}
		store := sheets.NewStore(
			sheets.NewGoogleValues(srv, cfg.Store.SpreadsheetID),
			cfg.Store.CacheTTL,
		)
		if err := store.Ping(context.Background()); err != nil {
			log.Panicf("Unable to reach spreadsheet %s: %v", cfg.Store.SpreadsheetID, err)
		}
		uowFactory = unitofwork.NewSheetsRepositoryFactory(store)
	default:
		gormDB, err := database.NewGormDBFromDSN(cfg.Store.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		uowFactory = unitofwork.NewRepositoryFactory(gormDB)
	}

	container := bootstrap.NewContainer(uowFactory, cfg)

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}

package main

import (
	"log"

	"notebook-share-be/internal/config"
	"notebook-share-be/internal/model"
	"notebook-share-be/pkg/database"
)

// Creates the notebooks, permissions and system_admin tables on the
// relational backend. The sheets backend is provisioned by hand.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Store.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Notebook{},
		&model.Permission{},
		&model.AdminAccount{},
	); err != nil {
		log.Panicf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}

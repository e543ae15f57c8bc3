package main

import (
	"log"

	"github.com/techspire-labs/academy-api/config"
	"github.com/techspire-labs/academy-api/database"
	"gorm.io/gorm"
)

// Standalone seeder: creates the admin user and starter catalog without
// starting the API server.
func main() {
	if err := config.LoadENV(); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	if err := database.NewSeeder(db).SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

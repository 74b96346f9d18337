package main

import (
	"log"

	"gps-tracking-be/internal/config"
	"gps-tracking-be/internal/model"
	"gps-tracking-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Printf("Running AutoMigrate for %d tables (%s)...", len(model.All()), cfg.Database.Driver)
	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}

package main

import (
	"log"

	"gps-tracking-be/internal/config"
	"gps-tracking-be/internal/model"
	"gps-tracking-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
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
	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	color.Cyan("Seeding subscription durations...")
	seedDurations(db)

	color.Cyan("Seeding payment methods...")
	seedPaymentMethods(db)

	color.Cyan("Seeding intervention types...")
	seedInterventionTypes(db)

	color.Green("✅ Seeding completed!")
}

func seedDurations(db *gorm.DB) {
	durations := []model.SubscriptionDuration{
		{Name: "3 Mois", Months: 3, Price: decimal.NewFromInt(300), Description: "Abonnement trimestriel"},
		{Name: "6 Mois", Months: 6, Price: decimal.NewFromInt(500), Description: "Abonnement semestriel"},
		{Name: "12 Mois", Months: 12, Price: decimal.NewFromInt(900), Description: "Abonnement annuel"},
	}

	for _, d := range durations {
		var existing model.SubscriptionDuration
		if err := db.Where("months = ?", d.Months).First(&existing).Error; err == nil {
			color.Yellow("Duration '%s' already exists, skipping...", d.Name)
			continue
		}

		d.Id = uuid.New()
		if err := db.Create(&d).Error; err != nil {
			color.Red("Error creating duration '%s': %v", d.Name, err)
		} else {
			color.Green("Created duration: %s (%s)", d.Name, d.Price.StringFixed(2))
		}
	}
}

func seedPaymentMethods(db *gorm.DB) {
	methods := []model.PaymentMethod{
		{Name: "Espèces", Description: "Paiement en espèces"},
		{Name: "Virement", Description: "Virement bancaire"},
		{Name: "Chèque", Description: "Paiement par chèque"},
	}

	for _, m := range methods {
		var existing model.PaymentMethod
		if err := db.Where("name = ?", m.Name).First(&existing).Error; err == nil {
			color.Yellow("Payment method '%s' already exists, skipping...", m.Name)
			continue
		}

		m.Id = uuid.New()
		if err := db.Create(&m).Error; err != nil {
			color.Red("Error creating payment method '%s': %v", m.Name, err)
		} else {
			color.Green("Created payment method: %s", m.Name)
		}
	}
}

func seedInterventionTypes(db *gorm.DB) {
	types := []model.InterventionType{
		{Name: "Installation", Description: "Pose d'un boîtier GPS", DurationMinutes: 90, Price: decimal.NewFromInt(250)},
		{Name: "Vérification", Description: "Contrôle du boîtier et du câblage", DurationMinutes: 30, Price: decimal.NewFromInt(100)},
		{Name: "Désinstallation", Description: "Dépose du boîtier", DurationMinutes: 45, Price: decimal.NewFromInt(150)},
	}

	for _, it := range types {
		var existing model.InterventionType
		if err := db.Where("name = ?", it.Name).First(&existing).Error; err == nil {
			color.Yellow("Intervention type '%s' already exists, skipping...", it.Name)
			continue
		}

		it.Id = uuid.New()
		it.Status = "active"
		if err := db.Create(&it).Error; err != nil {
			color.Red("Error creating intervention type '%s': %v", it.Name, err)
		} else {
			color.Green("Created intervention type: %s (%s)", it.Name, it.Price.StringFixed(2))
		}
	}
}

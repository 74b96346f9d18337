package model

import "gorm.io/gorm"

// All lists every persisted model in dependency order.
func All() []interface{} {
	return []interface{}{
		&Client{},
		&Car{},
		&PaymentMethod{},
		&SubscriptionDuration{},
		&Subscription{},
		&Payment{},
		&Invoice{},
		&Device{},
		&Installer{},
		&Installation{},
		&InterventionType{},
		&Intervention{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

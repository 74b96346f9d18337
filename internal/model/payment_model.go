package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

type Payment struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date           time.Time       `gorm:"not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MethodId       uuid.UUID       `gorm:"type:uuid;not null"`
	ClientId       uuid.UUID       `gorm:"type:uuid;not null;index"`
	SubscriptionId *uuid.UUID      `gorm:"type:uuid;index"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	Reference      string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}

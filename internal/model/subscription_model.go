package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionDuration struct {
	Id          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Months      int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

func (SubscriptionDuration) TableName() string {
	return "subscription_durations"
}

type Subscription struct {
	Id              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientId        uuid.UUID       `gorm:"type:uuid;not null;index"`
	DurationId      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CarId           *uuid.UUID      `gorm:"type:uuid;index"`
	StartDate       time.Time       `gorm:"not null"`
	EndDate         time.Time       `gorm:"not null;index"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	PaymentStatus   string          `gorm:"type:varchar(20);not null"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

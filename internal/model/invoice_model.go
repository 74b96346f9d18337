package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InvoiceItem is the JSON shape of one line stored in Invoice.Items.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type Invoice struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	ClientId       uuid.UUID       `gorm:"type:uuid;not null;index"`
	SubscriptionId *uuid.UUID      `gorm:"type:uuid;index"`
	Date           time.Time       `gorm:"not null"`
	DueDate        time.Time       `gorm:"not null"`
	Items          datatypes.JSON  `gorm:"not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	Notes          string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (Invoice) TableName() string {
	return "invoices"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPartial, InvoiceStatusPaid:
		return true
	}
	return false
}

type InvoiceItem struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

type Invoice struct {
	Id             uuid.UUID
	Number         string
	ClientId       uuid.UUID
	SubscriptionId *uuid.UUID
	Date           time.Time
	DueDate        time.Time
	Items          []InvoiceItem
	TotalAmount    decimal.Decimal
	Status         InvoiceStatus
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled:
		return true
	}
	return false
}

// ReceiptFile describes an uploaded payment receipt. Only the metadata is kept and
// it is never written to storage.
type ReceiptFile struct {
	FileName    string
	Size        int64
	ContentType string
}

type Payment struct {
	Id             uuid.UUID
	Date           time.Time
	Amount         decimal.Decimal
	MethodId       uuid.UUID
	ClientId       uuid.UUID
	SubscriptionId *uuid.UUID
	Status         PaymentStatus
	Reference      string
	Receipt        *ReceiptFile
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PaymentFilter selects payments; every set field must match.
type PaymentFilter struct {
	SubscriptionId *uuid.UUID
	ClientId       *uuid.UUID
	Status         *PaymentStatus
	From           *time.Time
	To             *time.Time
}

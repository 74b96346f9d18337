package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionStatus string
type SubscriptionPaymentStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"

	SubscriptionPaymentUnpaid  SubscriptionPaymentStatus = "unpaid"
	SubscriptionPaymentPartial SubscriptionPaymentStatus = "partial"
	SubscriptionPaymentPaid    SubscriptionPaymentStatus = "paid"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusExpired, SubscriptionStatusCancelled:
		return true
	}
	return false
}

func (s SubscriptionPaymentStatus) Valid() bool {
	switch s {
	case SubscriptionPaymentUnpaid, SubscriptionPaymentPartial, SubscriptionPaymentPaid:
		return true
	}
	return false
}

// SubscriptionDuration is the price list entry a subscription is sold against.
type SubscriptionDuration struct {
	Id          uuid.UUID
	Name        string
	Months      int
	Price       decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Subscription struct {
	Id         uuid.UUID
	ClientId   uuid.UUID
	DurationId uuid.UUID
	CarId      *uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Status     SubscriptionStatus
	// PaymentStatus and RemainingAmount are copies of the balance calculator output,
	// rewritten in the same transaction as any payment touching this subscription.
	PaymentStatus   SubscriptionPaymentStatus
	RemainingAmount decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

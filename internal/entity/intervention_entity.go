package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InterventionTypeStatus string
type InterventionStatus string

const (
	InterventionTypeActive   InterventionTypeStatus = "active"
	InterventionTypeInactive InterventionTypeStatus = "inactive"

	InterventionStatusPending    InterventionStatus = "pending"
	InterventionStatusInProgress InterventionStatus = "in_progress"
	InterventionStatusCompleted  InterventionStatus = "completed"
	InterventionStatusCancelled  InterventionStatus = "cancelled"
)

func (s InterventionTypeStatus) Valid() bool {
	return s == InterventionTypeActive || s == InterventionTypeInactive
}

func (s InterventionStatus) Valid() bool {
	switch s {
	case InterventionStatusPending, InterventionStatusInProgress, InterventionStatusCompleted, InterventionStatusCancelled:
		return true
	}
	return false
}

// InterventionType is a priced service an installer performs on a car.
type InterventionType struct {
	Id              uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	Price           decimal.Decimal
	Status          InterventionTypeStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Intervention struct {
	Id          uuid.UUID
	CarId       uuid.UUID
	TypeId      uuid.UUID
	InstallerId uuid.UUID
	Date        time.Time
	Status      InterventionStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type CarStatus string

const (
	CarStatusActive   CarStatus = "active"
	CarStatusInactive CarStatus = "inactive"
)

func (s CarStatus) Valid() bool {
	return s == CarStatusActive || s == CarStatusInactive
}

// Car is a tracked vehicle owned by a client.
type Car struct {
	Id           uuid.UUID
	ClientId     uuid.UUID
	Brand        string
	Model        string
	LicensePlate string
	Status       CarStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

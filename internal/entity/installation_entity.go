package entity

import (
	"time"

	"github.com/google/uuid"
)

type InstallationStatus string

const (
	InstallationStatusPending   InstallationStatus = "pending"
	InstallationStatusCompleted InstallationStatus = "completed"
	InstallationStatusCancelled InstallationStatus = "cancelled"
)

func (s InstallationStatus) Valid() bool {
	switch s {
	case InstallationStatusPending, InstallationStatusCompleted, InstallationStatusCancelled:
		return true
	}
	return false
}

type Installer struct {
	Id        uuid.UUID
	Name      string
	City      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Installation puts a device in a client's vehicle. A device holds at most one
// installation that is not cancelled.
type Installation struct {
	Id          uuid.UUID
	ClientId    uuid.UUID
	InstallerId uuid.UUID
	DeviceId    uuid.UUID
	CarId       *uuid.UUID
	Date        time.Time
	Status      InstallationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

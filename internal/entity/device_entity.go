package entity

import (
	"time"

	"github.com/google/uuid"
)

type DeviceStatus string

const (
	DeviceStatusActive   DeviceStatus = "active"
	DeviceStatusInactive DeviceStatus = "inactive"
)

func (s DeviceStatus) Valid() bool {
	return s == DeviceStatusActive || s == DeviceStatusInactive
}

// Device is a GPS tracker unit, identified by its IMEI.
type Device struct {
	Id        uuid.UUID
	Imei      string
	Model     string
	Provider  string
	Status    DeviceStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Device struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Imei      string    `gorm:"type:varchar(15);not null;uniqueIndex"`
	Model     string    `gorm:"type:varchar(100)"`
	Provider  string    `gorm:"type:varchar(100)"`
	Status    string    `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Device) TableName() string {
	return "devices"
}

type Installer struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	City      string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Installer) TableName() string {
	return "installers"
}

type Installation struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	InstallerId uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeviceId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CarId       *uuid.UUID `gorm:"type:uuid;index"`
	Date        time.Time  `gorm:"not null"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Installation) TableName() string {
	return "installations"
}

type InterventionType struct {
	Id              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Description     string          `gorm:"type:text"`
	DurationMinutes int             `gorm:"not null"`
	Price           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

func (InterventionType) TableName() string {
	return "intervention_types"
}

type Intervention struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarId       uuid.UUID `gorm:"type:uuid;not null;index"`
	TypeId      uuid.UUID `gorm:"type:uuid;not null;index"`
	InstallerId uuid.UUID `gorm:"type:uuid;not null;index"`
	Date        time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	Notes       string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Intervention) TableName() string {
	return "interventions"
}
